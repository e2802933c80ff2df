package evaluator

import (
	"context"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/diagnostics"
)

// Machine drives Step to a value, with an optional step bound and trace.
type Machine struct {
	strategy Strategy
	maxSteps int
	trace    *Trace
}

type Option func(*Machine)

func WithStrategy(s Strategy) Option {
	return func(m *Machine) { m.strategy = s }
}

// WithMaxSteps bounds the number of reductions. 0 means unbounded.
func WithMaxSteps(n int) Option {
	return func(m *Machine) {
		if n < 0 {
			n = 0
		}
		m.maxSteps = n
	}
}

func WithTrace(t *Trace) Option {
	return func(m *Machine) { m.trace = t }
}

// New returns a call-by-value machine with no step bound unless opts say otherwise.
func New(opts ...Option) *Machine {
	m := &Machine{strategy: CallByValue}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run reduces t until it is a value and reports how many steps that took.
// ctx is checked before every step.
func (m *Machine) Run(ctx context.Context, t ast.Term) (ast.Term, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	steps := 0
	for {
		select {
		case <-ctx.Done():
			return nil, steps, diagnostics.NewError(diagnostics.ErrR003, t.GetToken(),
				"evaluation cancelled after %d steps: %v", steps, ctx.Err())
		default:
		}

		next, rule, err := step(t, m.strategy)
		if err != nil {
			return nil, steps, err
		}
		if rule == RuleNone {
			return t, steps, nil
		}
		if m.maxSteps > 0 && steps >= m.maxSteps {
			return nil, steps, diagnostics.NewError(diagnostics.ErrR002, t.GetToken(),
				"no value after %d steps", m.maxSteps)
		}
		steps++
		m.trace.record(steps, rule, next)
		t = next
	}
}
