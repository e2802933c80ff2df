package ast

import (
	"github.com/funvibe/stlc/internal/token"
	"github.com/funvibe/stlc/internal/typesystem"
)

// Variable is an identifier occurrence, e.g. x
type Variable struct {
	Token token.Token // the IDENT token
	Name  string
}

func (v *Variable) Accept(vis Visitor)    { vis.VisitVariable(v) }
func (v *Variable) termNode()             {}
func (v *Variable) TokenLiteral() string  { return v.Token.Lexeme }
func (v *Variable) GetToken() token.Token { return v.Token }

// Constant is a boolean literal, true or false.
type Constant struct {
	Token token.Token
	Value bool
}

func (c *Constant) Accept(v Visitor)      { v.VisitConstant(c) }
func (c *Constant) termNode()             {}
func (c *Constant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Constant) GetToken() token.Token { return c.Token }

// Application is function application, e.g. f x
type Application struct {
	Token    token.Token // first token of the function term
	Function Term
	Argument Term
}

func (a *Application) Accept(v Visitor)      { v.VisitApplication(a) }
func (a *Application) termNode()             {}
func (a *Application) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Application) GetToken() token.Token { return a.Token }

// Abstraction is a function literal, e.g. \x:bool.x
// Param is in scope inside Body only.
type Abstraction struct {
	Token     token.Token // the '\' token
	Param     string
	ParamType typesystem.Type
	Body      Term
}

func (a *Abstraction) Accept(v Visitor)      { v.VisitAbstraction(a) }
func (a *Abstraction) termNode()             {}
func (a *Abstraction) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Abstraction) GetToken() token.Token { return a.Token }

// Conditional is if c then t else e
type Conditional struct {
	Token       token.Token // the 'if' token
	Condition   Term
	Consequence Term
	Alternative Term
}

func (c *Conditional) Accept(v Visitor)      { v.VisitConditional(c) }
func (c *Conditional) termNode()             {}
func (c *Conditional) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Conditional) GetToken() token.Token { return c.Token }

// Constructors for building terms in code. Tokens are left zero.

func Var(name string) *Variable { return &Variable{Name: name} }

func Bool(value bool) *Constant { return &Constant{Value: value} }

func True() *Constant { return Bool(true) }

func False() *Constant { return Bool(false) }

// App builds a left-nested application: App(f, a, b) is (f a) b.
func App(fn Term, args ...Term) Term {
	for _, arg := range args {
		fn = &Application{Token: fn.GetToken(), Function: fn, Argument: arg}
	}
	return fn
}

func Lam(param string, paramType typesystem.Type, body Term) *Abstraction {
	return &Abstraction{Param: param, ParamType: paramType, Body: body}
}

func If(cond, then, els Term) *Conditional {
	return &Conditional{Condition: cond, Consequence: then, Alternative: els}
}
