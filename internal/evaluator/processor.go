package evaluator

import (
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/pipeline"
	"github.com/funvibe/stlc/internal/token"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	// An empty name means the default.
	strategy := CallByValue
	if ctx.Strategy != "" {
		s, err := ParseStrategy(ctx.Strategy)
		if err != nil {
			ctx.AddError(diagnostics.NewError(diagnostics.ErrR004, token.Token{}, err.Error()))
			return ctx
		}
		strategy = s
	}

	opts := []Option{WithStrategy(strategy), WithMaxSteps(ctx.MaxSteps)}
	if trace, ok := ctx.Trace.(*Trace); ok {
		opts = append(opts, WithTrace(trace))
	}

	result, steps, err := New(opts...).Run(ctx.Context, ctx.AstRoot)
	ctx.Steps = steps
	if err != nil {
		if de, ok := err.(*diagnostics.DiagnosticError); ok {
			ctx.AddError(de)
		} else {
			ctx.AddError(diagnostics.NewError(diagnostics.ErrR001, ctx.AstRoot.GetToken(), err.Error()))
		}
		return ctx
	}
	ctx.Result = result
	return ctx
}
