package pipeline

import (
	"context"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/token"
	"github.com/funvibe/stlc/internal/typesystem"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the buffered scanner output consumed by the parser.
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
}

// PipelineContext carries one input through every stage.
type PipelineContext struct {
	SourceCode string
	FilePath   string
	Context    context.Context

	TokenStream TokenStream
	AstRoot     ast.Term
	Type        typesystem.Type // nil when the type gate was skipped
	Result      ast.Term
	Steps       int

	Strategy      string // "cbv" or "cbn"
	SkipTypeCheck bool
	MaxSteps      int         // 0 means unbounded
	Trace         interface{} // *evaluator.Trace, typed loosely to avoid an import cycle

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		SourceCode: sourceCode,
		Context:    context.Background(),
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// Failed reports whether any stage has recorded an error.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}

// AddError records err, stamping it with the file being processed.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}

// FirstError returns the earliest recorded error, or nil.
func (ctx *PipelineContext) FirstError() error {
	if len(ctx.Errors) == 0 {
		return nil
	}
	return ctx.Errors[0]
}
