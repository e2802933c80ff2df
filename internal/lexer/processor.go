package lexer

import (
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	stream := NewTokenStream(New(ctx.SourceCode))
	if bad, ok := stream.Illegal(); ok {
		msg := "invalid character " + bad.String()
		if bad.Lexeme == "-" {
			msg = "expected '>' after '-'"
		}
		ctx.AddError(diagnostics.NewError(diagnostics.ErrS001, bad, msg))
		return ctx
	}
	ctx.TokenStream = stream
	return ctx
}
