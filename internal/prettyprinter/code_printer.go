package prettyprinter

import (
	"bytes"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/typesystem"
)

// --- Code Printer (Output looks like source code) ---

// CodePrinter renders a term in concrete syntax that parses back to an
// equal tree. Every compound subterm is wrapped in parentheses; the term
// passed to Accept first is not.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// Term renders t canonically.
func Term(t ast.Term) string {
	if t == nil {
		return "<nil>"
	}
	p := NewCodePrinter()
	t.Accept(p)
	return p.String()
}

// Type renders t with right-associated arrows and a parenthesized function domain.
func Type(t typesystem.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// sub prints a child term, parenthesized unless it is atomic.
func (p *CodePrinter) sub(t ast.Term) {
	switch t.(type) {
	case *ast.Variable, *ast.Constant:
		t.Accept(p)
		return
	}
	p.buf.WriteByte('(')
	t.Accept(p)
	p.buf.WriteByte(')')
}

func (p *CodePrinter) VisitVariable(v *ast.Variable) {
	p.buf.WriteString(v.Name)
}

func (p *CodePrinter) VisitConstant(c *ast.Constant) {
	if c.Value {
		p.buf.WriteString("true")
	} else {
		p.buf.WriteString("false")
	}
}

func (p *CodePrinter) VisitApplication(a *ast.Application) {
	p.sub(a.Function)
	p.buf.WriteByte(' ')
	p.sub(a.Argument)
}

func (p *CodePrinter) VisitAbstraction(a *ast.Abstraction) {
	p.buf.WriteByte('\\')
	p.buf.WriteString(a.Param)
	p.buf.WriteByte(':')
	p.buf.WriteString(Type(a.ParamType))
	p.buf.WriteByte('.')
	p.sub(a.Body)
}

func (p *CodePrinter) VisitConditional(c *ast.Conditional) {
	p.buf.WriteString("if ")
	p.sub(c.Condition)
	p.buf.WriteString(" then ")
	p.sub(c.Consequence)
	p.buf.WriteString(" else ")
	p.sub(c.Alternative)
}
