package evaluator

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/token"
)

// Substitute replaces the free occurrences of name in term with
// replacement. Binders in term that would capture a free variable of
// replacement are renamed first. The input tree is never modified;
// untouched subtrees are shared with the result.
func Substitute(term ast.Term, name string, replacement ast.Term) ast.Term {
	return substitute(term, name, replacement, ast.FreeVariables(replacement))
}

// substitute carries FV(replacement), which is fixed for one Substitute call.
func substitute(term ast.Term, name string, replacement ast.Term, replFree *set.Set[string]) ast.Term {
	switch n := term.(type) {
	case *ast.Variable:
		if n.Name == name {
			return replacement
		}
		return n

	case *ast.Constant:
		return n

	case *ast.Application:
		fn := substitute(n.Function, name, replacement, replFree)
		arg := substitute(n.Argument, name, replacement, replFree)
		if fn == n.Function && arg == n.Argument {
			return n
		}
		return &ast.Application{Token: n.Token, Function: fn, Argument: arg}

	case *ast.Conditional:
		cond := substitute(n.Condition, name, replacement, replFree)
		then := substitute(n.Consequence, name, replacement, replFree)
		els := substitute(n.Alternative, name, replacement, replFree)
		if cond == n.Condition && then == n.Consequence && els == n.Alternative {
			return n
		}
		return &ast.Conditional{Token: n.Token, Condition: cond, Consequence: then, Alternative: els}

	case *ast.Abstraction:
		// name is shadowed below this binder.
		if n.Param == name {
			return n
		}
		if !replFree.Contains(n.Param) {
			body := substitute(n.Body, name, replacement, replFree)
			if body == n.Body {
				return n
			}
			return &ast.Abstraction{Token: n.Token, Param: n.Param, ParamType: n.ParamType, Body: body}
		}

		// The binder would capture a free variable of replacement: rename it.
		avoid := set.New[string](replFree.Size() + 8)
		avoid.InsertSlice(replFree.Slice())
		avoid.InsertSlice(ast.FreeVariables(n.Body).Slice())
		avoid.Insert(name)
		fresh := FreshName(n.Param, avoid)

		freshTok := token.Token{Type: token.IDENT, Lexeme: fresh, Literal: fresh, Line: n.Token.Line, Column: n.Token.Column}
		renamed := Substitute(n.Body, n.Param, &ast.Variable{Token: freshTok, Name: fresh})
		body := substitute(renamed, name, replacement, replFree)
		return &ast.Abstraction{Token: n.Token, Param: fresh, ParamType: n.ParamType, Body: body}
	}
	return term
}

// FreshName returns base1, base2, ... whichever comes first outside avoid.
func FreshName(base string, avoid *set.Set[string]) string {
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !avoid.Contains(candidate) {
			return candidate
		}
	}
}
