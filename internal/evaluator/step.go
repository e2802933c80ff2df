package evaluator

import (
	"github.com/funvibe/stlc/internal/ast"
)

// Step performs one reduction of t, in the same order Evaluate uses.
// progressed is false when t is already a value. A non-value with no
// applicable rule fails with StuckTerm.
func Step(t ast.Term, strategy Strategy) (next ast.Term, progressed bool, err error) {
	next, rule, err := step(t, strategy)
	if err != nil {
		return nil, false, err
	}
	return next, rule != RuleNone, nil
}

func step(t ast.Term, strategy Strategy) (ast.Term, Rule, error) {
	switch n := t.(type) {
	case *ast.Application:
		if !ast.IsValue(n.Function) {
			fn, rule, err := step(n.Function, strategy)
			if err != nil {
				return nil, RuleNone, err
			}
			return &ast.Application{Token: n.Token, Function: fn, Argument: n.Argument}, rule, nil
		}
		if strategy == CallByValue && !ast.IsValue(n.Argument) {
			arg, rule, err := step(n.Argument, strategy)
			if err != nil {
				return nil, RuleNone, err
			}
			return &ast.Application{Token: n.Token, Function: n.Function, Argument: arg}, rule, nil
		}
		abs, ok := n.Function.(*ast.Abstraction)
		if !ok {
			return nil, RuleNone, stuckApplication(n.Function, n.Argument)
		}
		return Substitute(abs.Body, abs.Param, n.Argument), RuleBeta, nil

	case *ast.Conditional:
		if !ast.IsValue(n.Condition) {
			cond, rule, err := step(n.Condition, strategy)
			if err != nil {
				return nil, RuleNone, err
			}
			return &ast.Conditional{Token: n.Token, Condition: cond, Consequence: n.Consequence, Alternative: n.Alternative}, rule, nil
		}
		c, ok := n.Condition.(*ast.Constant)
		if !ok {
			return nil, RuleNone, stuckCondition(n.Condition)
		}
		if c.Value {
			return n.Consequence, RuleIfTrue, nil
		}
		return n.Alternative, RuleIfFalse, nil
	}
	return t, RuleNone, nil
}
