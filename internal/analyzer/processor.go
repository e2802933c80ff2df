package analyzer

import (
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/pipeline"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() || ctx.SkipTypeCheck {
		return ctx
	}

	ty, err := Check(ctx.AstRoot)
	if err != nil {
		ctx.AddError(err.(*diagnostics.DiagnosticError))
		return ctx
	}
	ctx.Type = ty
	return ctx
}
