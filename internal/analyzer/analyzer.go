package analyzer

import (
	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/prettyprinter"
	"github.com/funvibe/stlc/internal/typesystem"
)

// Check types a closed term.
func Check(t ast.Term) (typesystem.Type, error) {
	return TypeOf(t, typesystem.NewContext())
}

// TypeOf computes the type of t under ctx. Bindings added while checking
// abstractions are removed again on every return path, so ctx is left as
// it was found.
func TypeOf(t ast.Term, ctx *typesystem.Context) (typesystem.Type, error) {
	if ctx == nil {
		ctx = typesystem.NewContext()
	}
	ty, err := typeOf(t, ctx)
	if err != nil {
		return nil, err
	}
	return ty, nil
}

func typeOf(t ast.Term, ctx *typesystem.Context) (typesystem.Type, *diagnostics.DiagnosticError) {
	switch n := t.(type) {
	case *ast.Variable:
		ty, ok := ctx.Lookup(n.Name)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrA001, n.Token, "unbound variable %s", n.Name)
		}
		return ty, nil

	case *ast.Constant:
		return typesystem.Bool, nil

	case *ast.Application:
		fnType, err := typeOf(n.Function, ctx)
		if err != nil {
			return nil, err
		}
		fn, ok := fnType.(typesystem.TFunc)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrA002, n.Function.GetToken(),
				"cannot apply %s of type %s: not a function", prettyprinter.Term(n.Function), fnType)
		}
		argType, err := typeOf(n.Argument, ctx)
		if err != nil {
			return nil, err
		}
		if !typesystem.Equal(fn.Param, argType) {
			return nil, diagnostics.NewError(diagnostics.ErrA003, n.Argument.GetToken(),
				"argument %s has type %s, but %s expects %s",
				prettyprinter.Term(n.Argument), argType, prettyprinter.Term(n.Function), fn.Param)
		}
		return fn.Result, nil

	case *ast.Abstraction:
		restore := ctx.Bind(n.Param, n.ParamType)
		defer restore()
		bodyType, err := typeOf(n.Body, ctx)
		if err != nil {
			return nil, err
		}
		return typesystem.TFunc{Param: n.ParamType, Result: bodyType}, nil

	case *ast.Conditional:
		condType, err := typeOf(n.Condition, ctx)
		if err != nil {
			return nil, err
		}
		if !typesystem.Equal(condType, typesystem.Bool) {
			return nil, diagnostics.NewError(diagnostics.ErrA004, n.Condition.GetToken(),
				"condition %s has type %s, expected bool", prettyprinter.Term(n.Condition), condType)
		}
		thenType, err := typeOf(n.Consequence, ctx)
		if err != nil {
			return nil, err
		}
		elseType, err := typeOf(n.Alternative, ctx)
		if err != nil {
			return nil, err
		}
		if !typesystem.Equal(thenType, elseType) {
			return nil, diagnostics.NewError(diagnostics.ErrA005, n.Token,
				"branches of %s have different types: %s and %s", prettyprinter.Term(n), thenType, elseType)
		}
		return thenType, nil
	}
	return nil, diagnostics.NewError(diagnostics.ErrA001, t.GetToken(), "unknown term %T", t)
}
