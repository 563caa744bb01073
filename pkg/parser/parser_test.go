package parser

import (
	"testing"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/lexer"
)

func parseOne(t *testing.T, input string) value.Expr {
	t.Helper()
	p := New(lexer.New(input))
	expr, err := p.ParseOne()
	if err != nil {
		t.Fatalf("ParseOne(%q) error: %v", input, err)
	}

	return expr
}

func TestParseNumberLiteral(t *testing.T) {
	expr := parseOne(t, "४२")
	n, ok := expr.(value.Number)
	if !ok {
		t.Fatalf("expected value.Number, got %T", expr)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}
}

func TestParseSExprOfOperator(t *testing.T) {
	expr := parseOne(t, "(+ १ २)")
	s, ok := expr.(*value.SExpr)
	if !ok {
		t.Fatalf("expected *value.SExpr, got %T", expr)
	}
	if len(s.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(s.Children))
	}
	sym, ok := s.Children[0].(*value.Sym)
	if !ok || sym.Op != value.OpAdd {
		t.Fatalf("expected Add operator symbol, got %#v", s.Children[0])
	}
}

func TestParseQExprLiteral(t *testing.T) {
	expr := parseOne(t, "'(क ख ग)")
	q, ok := expr.(*value.QExpr)
	if !ok {
		t.Fatalf("expected *value.QExpr, got %T", expr)
	}
	if len(q.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(q.Children))
	}
	for _, c := range q.Children {
		if _, ok := c.(*value.Sym); !ok {
			t.Fatalf("expected identifier symbols, got %#v", c)
		}
	}
}

func TestParseNestedSExpr(t *testing.T) {
	expr := parseOne(t, "(* (+ १ २) ३)")
	s := expr.(*value.SExpr)
	if len(s.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(s.Children))
	}
	if _, ok := s.Children[1].(*value.SExpr); !ok {
		t.Fatalf("expected nested *value.SExpr, got %#v", s.Children[1])
	}
}

func TestParseString(t *testing.T) {
	expr := parseOne(t, `"नमस्ते"`)
	str, ok := expr.(value.Str)
	if !ok {
		t.Fatalf("expected value.Str, got %T", expr)
	}
	if str != "नमस्ते" {
		t.Fatalf("unexpected string value: %q", str)
	}
}

func TestParseProgramMultipleForms(t *testing.T) {
	p := New(lexer.New("१ २ ३"))
	forms, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram error: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 top-level forms, got %d", len(forms))
	}
}

func TestParseUnterminatedSExprIsError(t *testing.T) {
	p := New(lexer.New("(+ १ २"))
	if _, err := p.ParseOne(); err == nil {
		t.Fatalf("expected an unterminated-expression error, got nil")
	}
}

func TestParseQuoteWithoutParenIsError(t *testing.T) {
	p := New(lexer.New("' १"))
	if _, err := p.ParseOne(); err == nil {
		t.Fatalf("expected a quote-must-be-followed-by-( error, got nil")
	}
}
