package ast

import (
	"strconv"

	"github.com/funvibe/stlc/internal/typesystem"
)

// Equal compares two terms structurally, ignoring tokens. Bound names
// must match exactly; use AlphaEqual to compare up to renaming.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Value == y.Value
	case *Application:
		y, ok := b.(*Application)
		return ok && Equal(x.Function, y.Function) && Equal(x.Argument, y.Argument)
	case *Abstraction:
		y, ok := b.(*Abstraction)
		return ok && x.Param == y.Param &&
			typesystem.Equal(x.ParamType, y.ParamType) &&
			Equal(x.Body, y.Body)
	case *Conditional:
		y, ok := b.(*Conditional)
		return ok && Equal(x.Condition, y.Condition) &&
			Equal(x.Consequence, y.Consequence) &&
			Equal(x.Alternative, y.Alternative)
	}
	return a == nil && b == nil
}

// Canonical renames every binder to #0, #1, ... in binding order.
// The names cannot be written in source, so they never collide with a
// free variable. Two terms are alpha-equivalent iff their canonical forms
// are Equal.
func Canonical(t Term) Term {
	bindings := make(map[string]string)
	idx := 0
	var walk func(Term) Term
	walk = func(t Term) Term {
		switch n := t.(type) {
		case *Variable:
			if name, ok := bindings[n.Name]; ok {
				return &Variable{Token: n.Token, Name: name}
			}
			return n
		case *Constant:
			return n
		case *Application:
			return &Application{Token: n.Token, Function: walk(n.Function), Argument: walk(n.Argument)}
		case *Abstraction:
			canon := "#" + strconv.Itoa(idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[n.Param]
			bindings[n.Param] = canon
			body := walk(n.Body)
			if had {
				bindings[n.Param] = old
			} else {
				delete(bindings, n.Param)
			}
			return &Abstraction{Token: n.Token, Param: canon, ParamType: n.ParamType, Body: body}
		case *Conditional:
			return &Conditional{
				Token:       n.Token,
				Condition:   walk(n.Condition),
				Consequence: walk(n.Consequence),
				Alternative: walk(n.Alternative),
			}
		}
		return t
	}
	return walk(t)
}

// AlphaEqual compares terms up to consistent renaming of bound variables.
func AlphaEqual(a, b Term) bool {
	return Equal(Canonical(a), Canonical(b))
}

// Size counts the nodes of t.
func Size(t Term) int {
	switch n := t.(type) {
	case *Application:
		return 1 + Size(n.Function) + Size(n.Argument)
	case *Abstraction:
		return 1 + Size(n.Body)
	case *Conditional:
		return 1 + Size(n.Condition) + Size(n.Consequence) + Size(n.Alternative)
	case nil:
		return 0
	}
	return 1
}
