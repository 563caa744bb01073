package eval

import (
	"fmt"
	"os"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/devlisp/devlisp/internal/value"
)

// builtinQuote implements उद्धरण: wraps every argument, unevaluated,
// into a single Q-expression. At least one argument is required; a
// call with none is an arity error.
func builtinQuote(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	if len(args) == 0 {
		return nil, &ArityError{Op: value.OpQuote, Expected: "कम्तिमा १", Got: 0}
	}

	children := make([]value.Expr, len(args))
	copy(children, args)

	return &value.QExpr{Children: children}, nil
}

// hindiCollator orders names the way a Devanagari-reading user expects
// वातावरण's dump sorted, rather than by raw UTF-8 byte order.
var hindiCollator = collate.New(language.Hindi)

// builtinPrintEnv implements वातावरण: prints every name bound anywhere
// in the environment chain, nearest frame first, each frame's own
// names collated in Hindi locale order, and returns an empty
// Q-expression.
func builtinPrintEnv(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	if len(args) != 0 {
		return nil, &ArityError{Op: value.OpPrintEnv, Expected: "०", Got: len(args)}
	}

	for frame := env; frame != nil; frame = frame.Parent() {
		names := frame.Names()
		hindiCollator.SortStrings(names)
		for _, n := range names {
			fmt.Fprintln(os.Stdout, n)
		}
	}

	return &value.QExpr{}, nil
}
