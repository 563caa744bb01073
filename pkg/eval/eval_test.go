package eval

import (
	"testing"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/lexer"
	"github.com/devlisp/devlisp/pkg/parser"
)

func testEval(t *testing.T, input string) (value.Expr, *value.Env) {
	t.Helper()

	l := lexer.New(input)
	p := parser.New(l)
	expr, err := p.ParseOne()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	env := value.NewEnv()
	RegisterBuiltins(env)

	ev := New()
	result, err := ev.Eval(env, expr)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	return result, env
}

func testNumber(t *testing.T, got value.Expr, want int32) {
	t.Helper()

	n, ok := got.(value.Number)
	if !ok {
		t.Fatalf("got %T (%s), want Number", got, got.String())
	}
	if int32(n) != want {
		t.Fatalf("got %d, want %d", int32(n), want)
	}
}

func testBool(t *testing.T, got value.Expr, want bool) {
	t.Helper()

	b, ok := got.(value.Bool)
	if !ok {
		t.Fatalf("got %T (%s), want Bool", got, got.String())
	}
	if bool(b) != want {
		t.Fatalf("got %t, want %t", bool(b), want)
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{"(+ १ २ ३)", 6},
		{"(- १० ४)", 6},
		{"(* २ ३ ४)", 24},
		{"(/ २० ४)", 5},
		{"(+ १ (* २ ३))", 7},
		{"(- ५)", 5}, // a single operand folds over nothing and returns unchanged
	}
	for _, tt := range tests {
		got, _ := testEval(t, tt.input)
		testNumber(t, got, tt.want)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	l := lexer.New("(/ १ ०)")
	p := parser.New(l)
	expr, err := p.ParseOne()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	env := value.NewEnv()
	RegisterBuiltins(env)
	ev := New()
	_, err = ev.Eval(env, expr)
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if _, ok := err.(*DivideByZeroError); !ok {
		t.Fatalf("got %T, want *DivideByZeroError", err)
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"(> ३ २)", true},
		{"(< ३ २)", false},
		{"(>= २ २)", true},
		{"(<= १ २)", true},
		{"(== ५ ५)", true},
		{"(!= ५ ६)", true},
	}
	for _, tt := range tests {
		got, _ := testEval(t, tt.input)
		testBool(t, got, tt.want)
	}
}

func TestEvalComparisonFold(t *testing.T) {
	got, _ := testEval(t, "(> ५)")
	testNumber(t, got, 5)

	l := lexer.New("(> ५ ३ १)")
	p := parser.New(l)
	expr, err := p.ParseOne()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	env := value.NewEnv()
	RegisterBuiltins(env)
	ev := New()
	_, err = ev.Eval(env, expr)
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError", err)
	}
}

func TestEvalIf(t *testing.T) {
	got, _ := testEval(t, "(यदि (> ३ २) '(१) '(२))")
	testNumber(t, got, 1)

	got, _ = testEval(t, "(यदि (< ३ २) '(१) '(२))")
	testNumber(t, got, 2)
}

func TestEvalQuoteAndListOps(t *testing.T) {
	got, _ := testEval(t, "(पहिलो '(१ २ ३))")
	first, ok := got.(*value.QExpr)
	if !ok || len(first.Children) != 1 {
		t.Fatalf("got %s, want a one-element Q-expression", got.String())
	}
	testNumber(t, first.Children[0], 1)

	got, _ = testEval(t, "(वटा '(१ २ ३))")
	testNumber(t, got, 3)

	got, _ = testEval(t, "(वटा (बाँकी '(१ २ ३)))")
	testNumber(t, got, 2)
}

func TestEvalConsAndJoin(t *testing.T) {
	got, _ := testEval(t, "(वटा (निर्माण १ '(२ ३)))")
	testNumber(t, got, 3)

	got, _ = testEval(t, "(वटा (एकत्र '(१) '(२ ३)))")
	testNumber(t, got, 3)
}

func TestEvalLambdaApplication(t *testing.T) {
	got, _ := testEval(t, "((ल्याम्बडा '(अ ब) '((+ अ ब))) १ २)")
	testNumber(t, got, 3)
}

func TestEvalLambdaPartialApplication(t *testing.T) {
	env := value.NewEnv()
	RegisterBuiltins(env)
	ev := New()

	parseOne := func(s string) value.Expr {
		p := parser.New(lexer.New(s))
		e, err := p.ParseOne()
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}

		return e
	}

	addExpr := parseOne("(ल्याम्बडा '(अ ब) '((+ अ ब)))")
	addFn, err := ev.Eval(env, addExpr)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	lambda, ok := addFn.(*value.Lambda)
	if !ok {
		t.Fatalf("got %T, want *value.Lambda", addFn)
	}

	partial, err := ev.applyLambda(env, lambda, []value.Expr{value.Number(5)})
	if err != nil {
		t.Fatalf("partial application error: %v", err)
	}
	partialLambda, ok := partial.(*value.Lambda)
	if !ok {
		t.Fatalf("got %T, want *value.Lambda after partial application", partial)
	}
	if len(partialLambda.Formals) != 1 {
		t.Fatalf("got %d remaining formals, want 1", len(partialLambda.Formals))
	}

	full, err := ev.applyLambda(env, partialLambda, []value.Expr{value.Number(7)})
	if err != nil {
		t.Fatalf("final application error: %v", err)
	}
	testNumber(t, full, 12)
}

func TestEvalRestMarker(t *testing.T) {
	got, _ := testEval(t, "((ल्याम्बडा '(अ ऽ ब) '((वटा ब))) १ २ ३ ४)")
	testNumber(t, got, 3)
}

func TestEvalDefBindsGlobally(t *testing.T) {
	_, env := testEval(t, "(नामक '(अ) १०)")
	v, ok := env.Lookup("अ")
	if !ok {
		t.Fatal("अ not bound after नामक")
	}
	testNumber(t, v, 10)
}

func TestEvalUnboundSymbol(t *testing.T) {
	l := lexer.New("अपरिभाषित")
	p := parser.New(l)
	expr, err := p.ParseOne()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	env := value.NewEnv()
	RegisterBuiltins(env)
	ev := New()
	_, err = ev.Eval(env, expr)
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if _, ok := err.(*UnboundSymbolError); !ok {
		t.Fatalf("got %T, want *UnboundSymbolError", err)
	}
}
