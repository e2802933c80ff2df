package lexer

import (
	"github.com/samber/lo"

	"github.com/funvibe/stlc/internal/token"
)

// TokenStream buffers the whole token sequence of one input, ending with EOF.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

func NewTokenStream(l *Lexer) *TokenStream {
	ts := &TokenStream{}
	for {
		tok := l.NextToken()
		ts.tokens = append(ts.tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return ts
}

// Next consumes one token. Past the end it keeps returning EOF.
func (ts *TokenStream) Next() token.Token {
	tok := ts.tokens[ts.pos]
	if ts.pos < len(ts.tokens)-1 {
		ts.pos++
	}
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (ts *TokenStream) Peek(n int) []token.Token {
	end := ts.pos + n
	if end > len(ts.tokens) {
		end = len(ts.tokens)
	}
	return ts.tokens[ts.pos:end]
}

// Tokens returns every buffered token, EOF included.
func (ts *TokenStream) Tokens() []token.Token {
	return ts.tokens
}

// Illegal returns the first ILLEGAL token, if any.
func (ts *TokenStream) Illegal() (token.Token, bool) {
	return lo.Find(ts.tokens, func(t token.Token) bool { return t.Type == token.ILLEGAL })
}
