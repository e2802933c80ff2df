package parser

import (
	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/pipeline"
	"github.com/funvibe/stlc/internal/token"
	"github.com/funvibe/stlc/internal/typesystem"
)

// Parser is a recursive-descent parser over a buffered token stream.
// It stops at the first error; the error is recorded in ctx.Errors.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext
	failed bool
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	return &Parser{stream: stream, ctx: ctx}
}

// ParseTerm parses the whole stream as exactly one term. It returns nil
// on error.
func (p *Parser) ParseTerm() ast.Term {
	if p.curTokenIs(token.EOF) {
		p.errorAt(diagnostics.ErrP003, p.cur(), "empty input")
		return nil
	}
	t := p.parseTerm()
	if t == nil {
		return nil
	}
	if !p.curTokenIs(token.EOF) {
		tok := p.cur()
		p.errorAt(diagnostics.ErrP004, tok, "unexpected %s after a complete term", tok)
		return nil
	}
	return t
}

func (p *Parser) cur() token.Token {
	return p.stream.Peek(1)[0]
}

func (p *Parser) advance() token.Token {
	return p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.cur().Type == t
}

// expect consumes a token of type t or records P002.
func (p *Parser) expect(t token.TokenType) (token.Token, bool) {
	tok := p.cur()
	if tok.Type != t {
		p.errorAt(diagnostics.ErrP002, tok, "expected %s, got %s", token.Describe(t), tok)
		return tok, false
	}
	return p.advance(), true
}

func (p *Parser) errorAt(code diagnostics.ErrorCode, tok token.Token, msg string, args ...interface{}) {
	if p.failed {
		return
	}
	p.failed = true
	p.ctx.AddError(diagnostics.NewError(code, tok, msg, args...))
}

// term := "\" IDENT ":" type "." term | "if" term "then" term "else" term | applic
func (p *Parser) parseTerm() ast.Term {
	switch p.cur().Type {
	case token.LAMBDA:
		return p.parseAbstraction()
	case token.IF:
		return p.parseConditional()
	}
	return p.parseApplication()
}

func (p *Parser) parseAbstraction() ast.Term {
	lambda := p.advance()
	name, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.COLON); !ok {
		return nil
	}
	paramType := p.parseType()
	if paramType == nil {
		return nil
	}
	if _, ok := p.expect(token.DOT); !ok {
		return nil
	}
	body := p.parseTerm()
	if body == nil {
		return nil
	}
	return &ast.Abstraction{Token: lambda, Param: name.Lexeme, ParamType: paramType, Body: body}
}

func (p *Parser) parseConditional() ast.Term {
	ifTok := p.advance()
	cond := p.parseTerm()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.THEN); !ok {
		return nil
	}
	then := p.parseTerm()
	if then == nil {
		return nil
	}
	if _, ok := p.expect(token.ELSE); !ok {
		return nil
	}
	els := p.parseTerm()
	if els == nil {
		return nil
	}
	return &ast.Conditional{Token: ifTok, Condition: cond, Consequence: then, Alternative: els}
}

// applic := atom { atom } [ abstraction | conditional ]
func (p *Parser) parseApplication() ast.Term {
	fn := p.parseAtom()
	if fn == nil {
		return nil
	}
	for startsAtom(p.cur().Type) {
		arg := p.parseAtom()
		if arg == nil {
			return nil
		}
		fn = ast.App(fn, arg)
	}
	// A trailing abstraction or conditional is the last argument.
	if p.curTokenIs(token.LAMBDA) || p.curTokenIs(token.IF) {
		arg := p.parseTerm()
		if arg == nil {
			return nil
		}
		fn = ast.App(fn, arg)
	}
	return fn
}

func startsAtom(t token.TokenType) bool {
	switch t {
	case token.IDENT, token.TRUE, token.FALSE, token.LPAREN:
		return true
	}
	return false
}

// atom := IDENT | "true" | "false" | "(" term ")"
func (p *Parser) parseAtom() ast.Term {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT:
		p.advance()
		return &ast.Variable{Token: tok, Name: tok.Lexeme}
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.Constant{Token: tok, Value: tok.Type == token.TRUE}
	case token.LPAREN:
		p.advance()
		inner := p.parseTerm()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(token.RPAREN); !ok {
			return nil
		}
		return inner
	}
	p.errorAt(diagnostics.ErrP001, tok, "unexpected %s", tok)
	return nil
}

// type := atom_type [ "->" type ]
func (p *Parser) parseType() typesystem.Type {
	param := p.parseAtomType()
	if param == nil {
		return nil
	}
	if !p.curTokenIs(token.ARROW) {
		return param
	}
	p.advance()
	result := p.parseType()
	if result == nil {
		return nil
	}
	return typesystem.TFunc{Param: param, Result: result}
}

// atom_type := "bool" | "(" type ")"
func (p *Parser) parseAtomType() typesystem.Type {
	tok := p.cur()
	switch tok.Type {
	case token.BOOL:
		p.advance()
		return typesystem.Bool
	case token.LPAREN:
		p.advance()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(token.RPAREN); !ok {
			return nil
		}
		return inner
	}
	p.errorAt(diagnostics.ErrP002, tok, "expected a type, got %s", tok)
	return nil
}
