package ast

import (
	"github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/slices"
)

// FreeVariables returns the names occurring free in t. The set is freshly
// computed on every call.
func FreeVariables(t Term) *set.Set[string] {
	fv := set.New[string](4)
	collectFree(t, fv, make(map[string]int))
	return fv
}

// collectFree walks t; bound counts how many enclosing binders hide each name.
func collectFree(t Term, fv *set.Set[string], bound map[string]int) {
	switch n := t.(type) {
	case *Variable:
		if bound[n.Name] == 0 {
			fv.Insert(n.Name)
		}
	case *Constant:
	case *Application:
		collectFree(n.Function, fv, bound)
		collectFree(n.Argument, fv, bound)
	case *Abstraction:
		bound[n.Param]++
		collectFree(n.Body, fv, bound)
		bound[n.Param]--
	case *Conditional:
		collectFree(n.Condition, fv, bound)
		collectFree(n.Consequence, fv, bound)
		collectFree(n.Alternative, fv, bound)
	}
}

// IsFree reports whether name occurs free in t.
func IsFree(name string, t Term) bool {
	return FreeVariables(t).Contains(name)
}

// IsClosed reports whether t has no free variables.
func IsClosed(t Term) bool {
	return FreeVariables(t).Size() == 0
}

// SortedNames lists the members of a name set in lexical order.
func SortedNames(names *set.Set[string]) []string {
	out := names.Slice()
	slices.Sort(out)
	return out
}
