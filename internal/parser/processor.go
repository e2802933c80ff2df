package parser

import (
	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/lexer"
	"github.com/funvibe/stlc/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// Scan errors leave TokenStream unset.
	if ctx.TokenStream == nil || ctx.Failed() {
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	if root := parser.ParseTerm(); root != nil {
		ctx.AstRoot = root
	}
	return ctx
}

// ParseString scans and parses src on its own, returning the first error.
func ParseString(src string) (ast.Term, error) {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &ParserProcessor{}).Run(pipeline.NewPipelineContext(src))
	if err := ctx.FirstError(); err != nil {
		return nil, err
	}
	return ctx.AstRoot, nil
}
