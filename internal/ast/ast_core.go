package ast

import (
	"github.com/funvibe/stlc/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Term is an expression of the object language. Terms are immutable once
// built; transformations return new trees and may share unchanged subtrees.
type Term interface {
	Node
	TokenProvider
	termNode()
}

// Visitor walks terms without a type switch.
type Visitor interface {
	VisitVariable(v *Variable)
	VisitConstant(c *Constant)
	VisitApplication(a *Application)
	VisitAbstraction(a *Abstraction)
	VisitConditional(c *Conditional)
}

// IsValue reports whether t needs no further reduction at the top level:
// constants, variables (possibly free) and abstractions.
func IsValue(t Term) bool {
	switch t.(type) {
	case *Constant, *Variable, *Abstraction:
		return true
	}
	return false
}
