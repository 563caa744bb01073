package parser

import (
	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/lexer"
)

// Parser reads a token stream into value.Expr trees. The grammar has
// no infix operators — every form is a parenthesized list — so unlike
// a Pratt parser this is a plain recursive-descent s-expression
// reader: one rule per form (number, string, symbol, S-expression,
// Q-expression), no precedence climbing.
type Parser struct {
	l      *lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	errors *ParseErrors
}

// New creates a parser over l, priming the cur/peek lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: &ParseErrors{}}
	p.advance()
	p.advance()

	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// Errors returns the parse errors accumulated so far.
func (p *Parser) Errors() *ParseErrors { return p.errors }

// ParseOne reads a single top-level form — the entry point the REPL
// and `eval -e` use, where exactly one form is expected per input.
func (p *Parser) ParseOne() (value.Expr, error) {
	expr := p.parseExpr()
	if p.errors.HasErrors() {
		return nil, p.errors
	}

	return expr, nil
}

// ParseProgram reads every top-level form until EOF, the entry point
// Import (आयात) and `run <file>` use for a whole source file.
func (p *Parser) ParseProgram() ([]value.Expr, error) {
	var forms []value.Expr
	for p.cur.Type != lexer.TOKEN_EOF {
		forms = append(forms, p.parseExpr())
		if p.errors.HasErrors() {
			return nil, p.errors
		}
	}

	return forms, nil
}

func (p *Parser) parseExpr() value.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_NUMBER:
		return p.parseNumber()
	case lexer.TOKEN_STRING:
		return p.parseString()
	case lexer.TOKEN_IDENT:
		return p.parseSymbol()
	case lexer.TOKEN_LPAREN:
		return p.parseSExpr()
	case lexer.TOKEN_QUOTE:
		return p.parseQExpr()
	default:
		p.errors.Addf(p.cur.Line, p.cur.Column, "unexpected token %s (%q)", p.cur.Type, p.cur.Literal)
		p.advance()

		return nil
	}
}

func (p *Parser) parseNumber() value.Expr {
	n, err := value.ParseNumber(p.cur.Literal)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column, "%s", err)
		p.advance()

		return nil
	}
	p.advance()

	return n
}

func (p *Parser) parseString() value.Expr {
	s := value.Str(p.cur.Literal)
	p.advance()

	return s
}

func (p *Parser) parseSymbol() value.Expr {
	name := p.cur.Literal
	p.advance()
	if op, ok := value.GlyphOp[name]; ok {
		return &value.Sym{Name: name, Op: op}
	}

	return value.NewIdent(name)
}

func (p *Parser) parseSExpr() value.Expr {
	line, column := p.cur.Line, p.cur.Column
	p.advance() // consume "("

	var children []value.Expr
	for p.cur.Type != lexer.TOKEN_RPAREN {
		if p.cur.Type == lexer.TOKEN_EOF {
			p.errors.Addf(line, column, "unterminated ( — missing closing )")

			return nil
		}
		children = append(children, p.parseExpr())
		if p.errors.HasErrors() {
			return nil
		}
	}
	p.advance() // consume ")"

	return &value.SExpr{Children: children}
}

func (p *Parser) parseQExpr() value.Expr {
	line, column := p.cur.Line, p.cur.Column
	p.advance() // consume "'"

	if p.cur.Type != lexer.TOKEN_LPAREN {
		p.errors.Addf(line, column, "expected ( after ', got %s", p.cur.Type)

		return nil
	}
	p.advance() // consume "("

	var children []value.Expr
	for p.cur.Type != lexer.TOKEN_RPAREN {
		if p.cur.Type == lexer.TOKEN_EOF {
			p.errors.Addf(line, column, "unterminated '( — missing closing )")

			return nil
		}
		children = append(children, p.parseExpr())
		if p.errors.HasErrors() {
			return nil
		}
	}
	p.advance() // consume ")"

	return &value.QExpr{Children: children}
}
