// Package parser reads a token stream from pkg/lexer into value.Expr
// trees.
//
// There are no infix operators and no fixed keyword set — every form
// is a parenthesized list — so the parser is a plain recursive-descent
// s-expression reader rather than a Pratt parser: one rule per form
// (number, string, symbol, S-expression, Q-expression), no precedence
// table.
//
// ParseOne reads a single top-level form, the entry point the REPL and
// `devlisp eval -e` use. ParseProgram reads every top-level form until
// EOF, the entry point Import (आयात) and `devlisp run` use.
//
// Errors are recorded in a ParseErrors collection (line/column-tagged).
// Parsing stops at the first error, so the collection a caller receives
// holds that one error; later mistakes in the same input are not reported.
package parser
