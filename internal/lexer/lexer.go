package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/stlc/internal/token"
)

// Lexer scans one source string. Positions are 1-based and count runes,
// so a λ advances the column by one.
type Lexer struct {
	input        string
	position     int // byte offset of ch
	readPosition int // byte offset of the rune after ch
	ch           rune
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	if l.atEnd() {
		tok.Type = token.EOF
		tok.Line = l.line
		tok.Column = l.column
		return tok
	}

	switch l.ch {
	case '\\', 'λ':
		tok = newToken(token.LAMBDA, l.ch, l.line, l.column)
	case '.':
		tok = newToken(token.DOT, l.ch, l.line, l.column)
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '-':
		if l.peekChar() == '>' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: line, Column: col}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	default:
		if isLetter(l.ch) {
			startLine, startCol := l.line, l.column
			lexeme := l.readIdentifier()
			tok.Lexeme = lexeme
			tok.Type = token.LookupIdent(lexeme)
			switch tok.Type {
			case token.TRUE:
				tok.Literal = true
			case token.FALSE:
				tok.Literal = false
			default:
				tok.Literal = lexeme
			}
			tok.Line = startLine
			tok.Column = startCol
			return tok
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

// atEnd tells end of input apart from a NUL rune in it, which is illegal.
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '\'' {
		l.readChar()
	}
	return l.input[position:l.position]
}

// isLetter excludes λ, which is an alias for the backslash.
func isLetter(ch rune) bool {
	if ch == 'λ' {
		return false
	}
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

// skipWhitespace also skips '#' comments running to the end of the line.
func (l *Lexer) skipWhitespace() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}
		if l.ch == '#' {
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
			continue
		}
		break
	}
}
