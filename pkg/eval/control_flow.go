package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/lexer"
	"github.com/devlisp/devlisp/pkg/parser"
)

// builtinIf implements यदि: exactly 3 unevaluated arguments (condition,
// then-branch, else-branch). The condition is evaluated and must be a
// Bool; the chosen branch is evaluated and must reduce to a
// Q-expression, which is then reinterpreted as an S-expression and
// evaluated — the same "quoted code, evaluate on demand" idiom बिस्तार
// and lambda bodies both use.
func builtinIf(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 3 {
		return nil, &ArityError{Op: value.OpIf, Expected: "३", Got: len(args)}
	}

	condVal, err := ev.Eval(env, args[0])
	if err != nil {
		return nil, err
	}
	cond, ok := condVal.(value.Bool)
	if !ok {
		return nil, &TypeError{Op: value.OpIf, Expected: "बुलियन", Got: condVal}
	}

	branch := args[2]
	if bool(cond) {
		branch = args[1]
	}

	branchVal, err := ev.Eval(env, branch)
	if err != nil {
		return nil, err
	}
	q, ok := branchVal.(*value.QExpr)
	if !ok {
		return nil, &TypeError{Op: value.OpIf, Expected: "उद्धरण अभिव्यक्ति", Got: branchVal}
	}

	return ev.Eval(env, q.AsSExpr())
}

// forceForCompare evaluates Symbol and S-expression operands before
// comparison, but leaves every other variant — including Q-expressions
// and Lambdas — as-is: a deliberate asymmetry, so quoted code compares
// structurally rather than by what it would reduce to.
func forceForCompare(ev *Evaluator, env *value.Env, e value.Expr) (value.Expr, error) {
	switch e.(type) {
	case *value.Sym, *value.SExpr:
		return ev.Eval(env, e)
	default:
		return e, nil
	}
}

func builtinEqual(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 2 {
		return nil, &ArityError{Op: value.OpEqual, Expected: "२", Got: len(args)}
	}
	a, err := forceForCompare(ev, env, args[0])
	if err != nil {
		return nil, err
	}
	b, err := forceForCompare(ev, env, args[1])
	if err != nil {
		return nil, err
	}

	return value.Bool(a.Equals(b)), nil
}

func builtinNotEqual(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 2 {
		return nil, &ArityError{Op: value.OpNotEqual, Expected: "२", Got: len(args)}
	}
	a, err := forceForCompare(ev, env, args[0])
	if err != nil {
		return nil, err
	}
	b, err := forceForCompare(ev, env, args[1])
	if err != nil {
		return nil, err
	}

	return value.Bool(!a.Equals(b)), nil
}

// builtinImport implements आयात: its one argument must be an
// identifier (not evaluated — the identifier names the file itself),
// read as "<name>.अ", parsed, and every top-level form evaluated in
// order. Import always returns an empty Q-expression; its effect is
// the bindings it leaves in env.
func builtinImport(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 1 {
		return nil, &ArityError{Op: value.OpImport, Expected: "१", Got: len(args)}
	}
	sym, ok := args[0].(*value.Sym)
	if !ok || sym.Kind() != value.SymIdentifier {
		return nil, &NotAnIdentifierError{Got: args[0]}
	}

	path := sym.Name + ".अ"
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImportError{Path: path, Cause: err}
	}

	p := parser.New(lexer.New(string(contents)))
	forms, err := p.ParseProgram()
	if err != nil {
		return nil, &ImportError{Path: path, Cause: err}
	}
	for _, form := range forms {
		if _, err := ev.Eval(env, form); err != nil {
			return nil, err
		}
	}

	return &value.QExpr{}, nil
}

// builtinPrint implements छाप: evaluates every argument, writes their
// String() forms space-joined to stdout, and returns an empty
// Q-expression.
func builtinPrint(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	parts := make([]string, len(args))
	for i, a := range args {
		v, err := ev.Eval(env, a)
		if err != nil {
			return nil, err
		}
		parts[i] = v.String()
	}
	fmt.Fprintln(os.Stdout, strings.Join(parts, " "))

	return &value.QExpr{}, nil
}

// builtinError implements समस्या: its one argument is evaluated, must
// be a string, and becomes a user-raised error.
func builtinError(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 1 {
		return nil, &ArityError{Op: value.OpError, Expected: "१", Got: len(args)}
	}
	v, err := ev.Eval(env, args[0])
	if err != nil {
		return nil, err
	}
	s, ok := v.(value.Str)
	if !ok {
		return nil, &TypeError{Op: value.OpError, Expected: "स्ट्रिङ", Got: v}
	}

	return nil, &ThrownError{Message: string(s)}
}
