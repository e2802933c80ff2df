package evaluator

import (
	"fmt"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/config"
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/prettyprinter"
)

// Strategy selects when an application's argument is reduced.
type Strategy int

const (
	// CallByValue reduces the argument to a value before substituting it.
	CallByValue Strategy = iota
	// CallByName substitutes the argument unevaluated.
	CallByName
)

func (s Strategy) String() string {
	switch s {
	case CallByValue:
		return "call-by-value"
	case CallByName:
		return "call-by-name"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Short is the flag and config spelling of s.
func (s Strategy) Short() string {
	if s == CallByName {
		return config.StrategyCallByName
	}
	return config.StrategyCallByValue
}

// ParseStrategy accepts the short names and the long forms printed by String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case config.StrategyCallByValue, "call-by-value", "value":
		return CallByValue, nil
	case config.StrategyCallByName, "call-by-name", "name":
		return CallByName, nil
	}
	return CallByValue, fmt.Errorf("unknown strategy %q (want %s or %s)",
		name, config.StrategyCallByValue, config.StrategyCallByName)
}

// Evaluate reduces t to a value using big-step rules. It fails with
// StuckTerm when no rule applies to a non-value, and does not return
// when t diverges. Beta steps in tail position loop instead of
// recursing, so divergence does not grow the stack.
func Evaluate(t ast.Term, strategy Strategy) (ast.Term, error) {
	for {
		switch n := t.(type) {
		case *ast.Application:
			fn := n.Function
			if !ast.IsValue(fn) {
				v, err := Evaluate(fn, strategy)
				if err != nil {
					return nil, err
				}
				fn = v
			}
			arg := n.Argument
			if strategy == CallByValue && !ast.IsValue(arg) {
				v, err := Evaluate(arg, strategy)
				if err != nil {
					return nil, err
				}
				arg = v
			}
			abs, ok := fn.(*ast.Abstraction)
			if !ok {
				return nil, stuckApplication(fn, arg)
			}
			t = Substitute(abs.Body, abs.Param, arg)

		case *ast.Conditional:
			cond := n.Condition
			if !ast.IsValue(cond) {
				v, err := Evaluate(cond, strategy)
				if err != nil {
					return nil, err
				}
				cond = v
			}
			c, ok := cond.(*ast.Constant)
			if !ok {
				return nil, stuckCondition(cond)
			}
			if c.Value {
				t = n.Consequence
			} else {
				t = n.Alternative
			}

		default:
			return t, nil
		}
	}
}

func stuckApplication(fn, arg ast.Term) *diagnostics.DiagnosticError {
	return diagnostics.NewError(diagnostics.ErrR001, fn.GetToken(),
		"cannot apply %s to %s: not a function", prettyprinter.Term(fn), prettyprinter.Term(arg))
}

func stuckCondition(cond ast.Term) *diagnostics.DiagnosticError {
	return diagnostics.NewError(diagnostics.ErrR001, cond.GetToken(),
		"condition %s is not a boolean", prettyprinter.Term(cond))
}
