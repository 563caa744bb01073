// Package eval implements the tree-walking evaluator: dispatch over
// value.Expr, lambda application, and the full built-in operator
// registry bound to the reserved glyph table in internal/value.
package eval

import "github.com/devlisp/devlisp/internal/value"

// Evaluator walks value.Expr trees, dispatching calls to Core
// built-ins and user Lambdas. It carries no state of its own — all
// mutable state lives in the value.Env chain passed to Eval — so a
// single Evaluator is safe to reuse across a whole program run.
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Eval reduces expr in env. Numbers, strings, booleans, Q-expressions,
// Core values and Lambdas are already self-evaluating and return
// themselves unchanged; Symbols resolve through the environment chain;
// S-expressions perform a call.
func (ev *Evaluator) Eval(env *value.Env, expr value.Expr) (value.Expr, error) {
	switch e := expr.(type) {
	case value.Number, value.Str, value.Bool, *value.QExpr, *value.Core, *value.Lambda:
		return expr, nil
	case *value.Sym:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, &UnboundSymbolError{Name: e.Name}
		}

		return v, nil
	case *value.SExpr:
		return ev.evalSExpr(env, e)
	default:
		return nil, &InvalidOperatorError{Got: expr}
	}
}

// evalSExpr implements the call dispatch rule: an empty S-expression
// evaluates to itself; a single-child S-expression reduces to
// evaluating that child directly (no call machinery engages); any
// longer S-expression evaluates its first child to find the operator,
// then dispatches on what that operator turns out to be.
func (ev *Evaluator) evalSExpr(env *value.Env, s *value.SExpr) (value.Expr, error) {
	switch len(s.Children) {
	case 0:
		return s, nil
	case 1:
		return ev.Eval(env, s.Children[0])
	}

	oper, rest := s.Children[0], s.Children[1:]

	resolved, err := ev.Eval(env, oper)
	if err != nil {
		return nil, err
	}

	switch r := resolved.(type) {
	case *value.Sym:
		// A symbol-valued operator position (an alias bound to another
		// symbol) resolves through one further lookup.
		v, ok := env.Lookup(r.Name)
		if !ok {
			return nil, &UnboundSymbolError{Name: r.Name}
		}

		return v, nil
	case *value.SExpr:
		return ev.Eval(env, oper)
	case *value.Core:
		return r.Fn(ev, env, rest)
	case *value.Lambda:
		return ev.applyLambda(env, r, rest)
	case *value.QExpr:
		// A Q-expression in operator position is treated as inline code:
		// reinterpret it as an S-expression, prepend it back in front of
		// the remaining arguments, and re-evaluate the whole thing.
		wrapped := &value.SExpr{Children: append([]value.Expr{r.AsSExpr()}, rest...)}

		return ev.Eval(env, wrapped)
	default:
		return nil, &InvalidOperatorError{Got: resolved}
	}
}
