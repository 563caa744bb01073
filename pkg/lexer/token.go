package lexer

import "fmt"

// TokenType classifies a lexical token. The grammar has no infix
// operators and no keyword set distinct from identifiers — every
// reserved operator glyph lexes as an ordinary IDENT and is recognized
// as an operator later, when the parser builds a Sym node and checks
// it against value.GlyphOp.
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_IDENT

	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_QUOTE // the "'" that prefixes a Q-expression's opening "("
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_STRING:  "STRING",
	TOKEN_IDENT:   "IDENT",
	TOKEN_LPAREN:  "LPAREN",
	TOKEN_RPAREN:  "RPAREN",
	TOKEN_QUOTE:   "QUOTE",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a complete lexical unit: its classification, literal text,
// and 1-based line / 1-based column position for error reporting.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// isDelimiter reports whether r ends both an identifier/operator run
// and a number run.
func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '(', ')', '\'', '"', ';':
		return true
	default:
		return false
	}
}
