// Package lexer converts Devanagari Lisp source text into a stream of
// tokens for pkg/parser to consume.
//
// Token Recognition:
//   - Numbers: an optional ASCII sign followed by Devanagari digits
//     (०-९); ASCII '-' is the only non-Devanagari character String
//     ever emits back, but the reader accepts a leading '+' too.
//   - Strings: double-quoted, no escape grammar.
//   - Symbols: any maximal run of non-delimiter runes — this single
//     rule covers free-form identifiers and every reserved operator
//     glyph (ASCII or Devanagari) alike. The lexer does not try to
//     recognize reserved glyphs itself; the parser decides, by
//     checking a symbol's text against value.GlyphOp when it builds a
//     Sym node.
//   - Delimiters: '(' ')' open and close S-expressions; a "'"
//     immediately followed by '(' opens a Q-expression.
//
// Comments start with ';' and run to end of line.
//
// Unlike a byte-oriented scanner, this lexer reads runes throughout:
// Devanagari lexemes are multi-byte UTF-8, so a byte-wise isLetter
// would split them.
package lexer
