package lexer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/devlisp/devlisp/internal/value"
)

// Lexer is a single-pass scanner turning Devanagari source text into
// tokens. Unlike a byte-oriented scanner, it reads the input as runes
// throughout — required because the Devanagari reserved glyphs and most
// identifiers are multi-byte UTF-8.
type Lexer struct {
	input        []rune
	position     int
	readPosition int
	ch           rune // 0 for EOF
	line         int
	column       int
}

// New creates a lexer over input, priming it to read the first rune.
// input is first normalized to NFC: Devanagari text admits multiple
// Unicode encodings of visually-identical glyphs (precomposed versus
// combining-mark sequences), and two source files differing only in
// which encoding they used would otherwise lex to different identifier
// text for the same written word.
func New(input string) *Lexer {
	l := &Lexer{input: []rune(norm.NFC.String(input)), line: 1}
	l.readChar()

	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment consumes a ";" line comment through end of line or EOF.
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readString reads a double-quoted string literal. There is no escape
// grammar: the content runs verbatim until the next '"' or EOF.
func (l *Lexer) readString() string {
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == '"' || l.ch == 0 {
			break
		}
	}

	return string(l.input[position:l.position])
}

// readNumber reads an optionally-signed run of Devanagari digits.
func (l *Lexer) readNumber() string {
	position := l.position
	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}
	for value.IsDevanagariDigit(l.ch) {
		l.readChar()
	}

	return string(l.input[position:l.position])
}

// readSymbol reads a maximal run of non-delimiter runes: this covers
// both free-form identifiers and every reserved operator glyph, ASCII
// or Devanagari. Which one it is gets decided later, when the parser
// checks the text against value.GlyphOp.
func (l *Lexer) readSymbol() string {
	position := l.position
	for l.ch != 0 && !isDelimiter(l.ch) {
		l.readChar()
	}

	return string(l.input[position:l.position])
}

// startsNumber reports whether the current position begins a number
// literal: a bare digit, or a sign immediately followed by a digit
// with no separating whitespace.
func (l *Lexer) startsNumber() bool {
	if value.IsDevanagariDigit(l.ch) {
		return true
	}

	return (l.ch == '+' || l.ch == '-') && value.IsDevanagariDigit(l.peekChar())
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		if l.ch == ';' {
			l.skipComment()

			continue
		}

		break
	}

	line, column := l.line, l.column

	switch {
	case l.ch == 0:
		return Token{Type: TOKEN_EOF, Line: line, Column: column}
	case l.ch == '(':
		l.readChar()

		return Token{Type: TOKEN_LPAREN, Literal: "(", Line: line, Column: column}
	case l.ch == ')':
		l.readChar()

		return Token{Type: TOKEN_RPAREN, Literal: ")", Line: line, Column: column}
	case l.ch == '\'':
		l.readChar()

		return Token{Type: TOKEN_QUOTE, Literal: "'", Line: line, Column: column}
	case l.ch == '"':
		lit := l.readString()
		if l.ch == '"' {
			l.readChar()
		}

		return Token{Type: TOKEN_STRING, Literal: lit, Line: line, Column: column}
	case l.startsNumber():
		return Token{Type: TOKEN_NUMBER, Literal: l.readNumber(), Line: line, Column: column}
	default:
		lit := l.readSymbol()
		if lit == "" {
			// A delimiter-class rune that isn't one of the recognized
			// delimiters above (shouldn't happen with isDelimiter's set).
			ill := string(l.ch)
			l.readChar()

			return Token{Type: TOKEN_ILLEGAL, Literal: ill, Line: line, Column: column}
		}

		return Token{Type: TOKEN_IDENT, Literal: lit, Line: line, Column: column}
	}
}
