package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT TokenType = "IDENT"

	LAMBDA TokenType = "\\"
	DOT    TokenType = "."
	COLON  TokenType = ":"
	ARROW  TokenType = "->"
	LPAREN TokenType = "("
	RPAREN TokenType = ")"

	// Keywords
	TRUE  TokenType = "TRUE"
	FALSE TokenType = "FALSE"
	IF    TokenType = "IF"
	THEN  TokenType = "THEN"
	ELSE  TokenType = "ELSE"
	BOOL  TokenType = "BOOL"
)

// Token is a single lexical unit. Literal holds the decoded value:
// the identifier name, a bool for true/false, or the offending text
// of an ILLEGAL token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Lexeme)
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"bool":  BOOL,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Describe names a token type the way error messages refer to it.
func Describe(t TokenType) string {
	switch t {
	case IDENT:
		return "identifier"
	case EOF:
		return "end of input"
	case TRUE:
		return "'true'"
	case FALSE:
		return "'false'"
	case IF:
		return "'if'"
	case THEN:
		return "'then'"
	case ELSE:
		return "'else'"
	case BOOL:
		return "'bool'"
	case ILLEGAL:
		return "illegal token"
	}
	return "'" + string(t) + "'"
}
