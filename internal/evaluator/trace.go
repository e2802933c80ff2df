package evaluator

import (
	"fmt"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/prettyprinter"
)

type Rule int

const (
	RuleNone Rule = iota
	RuleBeta
	RuleIfTrue
	RuleIfFalse
)

func (r Rule) String() string {
	switch r {
	case RuleBeta:
		return "beta"
	case RuleIfTrue:
		return "if-true"
	case RuleIfFalse:
		return "if-false"
	}
	return "none"
}

// TraceEvent is one reduction: the rule fired and the term it produced.
type TraceEvent struct {
	Step int
	Rule Rule
	Term ast.Term
}

func (e TraceEvent) String() string {
	return fmt.Sprintf("%4d  %-8s [%d] %s", e.Step, e.Rule, ast.Size(e.Term), prettyprinter.Term(e.Term))
}

// Trace records the first capacity reductions of a run. Later events are
// counted but not stored. A nil *Trace records nothing.
type Trace struct {
	events   []TraceEvent
	capacity int
	total    int
}

func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = 1
	}
	return &Trace{events: make([]TraceEvent, 0, capacity), capacity: capacity}
}

func (t *Trace) record(step int, rule Rule, term ast.Term) {
	if t == nil {
		return
	}
	t.total++
	if len(t.events) >= t.capacity {
		return
	}
	t.events = append(t.events, TraceEvent{Step: step, Rule: rule, Term: term})
}

// Snapshot returns a copy of the stored events.
func (t *Trace) Snapshot() []TraceEvent {
	if t == nil {
		return nil
	}
	res := make([]TraceEvent, len(t.events))
	copy(res, t.events)
	return res
}

// Total counts every recorded reduction, stored or not.
func (t *Trace) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Dropped counts the reductions past capacity.
func (t *Trace) Dropped() int {
	if t == nil {
		return 0
	}
	return t.total - len(t.events)
}

func (t *Trace) Reset() {
	if t == nil {
		return
	}
	t.events = t.events[:0]
	t.total = 0
}
