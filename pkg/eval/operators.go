package eval

import "github.com/devlisp/devlisp/internal/value"

// evalNumber evaluates expr and requires the result to be a Number.
func (ev *Evaluator) evalNumber(op value.OpCode, env *value.Env, expr value.Expr) (value.Number, error) {
	v, err := ev.Eval(env, expr)
	if err != nil {
		return 0, err
	}
	n, ok := v.(value.Number)
	if !ok {
		return 0, &TypeError{Op: op, Expected: "अंक", Got: v}
	}

	return n, nil
}

// foldNumOp implements the NumOp fold shape shared by +, -, * and /:
// evaluate the first argument, then fold the rest left-to-right
// through combine, each operand required to be a Number.
func (ev *Evaluator) foldNumOp(
	op value.OpCode,
	env *value.Env,
	args []value.Expr,
	combine func(acc, next value.Number) (value.Number, error),
) (value.Expr, error) {
	if len(args) == 0 {
		return nil, &ArityError{Op: op, Expected: "कम्तिमा १", Got: 0}
	}

	acc, err := ev.evalNumber(op, env, args[0])
	if err != nil {
		return nil, err
	}

	for _, a := range args[1:] {
		n, err := ev.evalNumber(op, env, a)
		if err != nil {
			return nil, err
		}
		acc, err = combine(acc, n)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func builtinAdd(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.foldNumOp(value.OpAdd, env, args, func(acc, n value.Number) (value.Number, error) {
		return acc + n, nil
	})
}

func builtinSubtract(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.foldNumOp(value.OpSubtract, env, args, func(acc, n value.Number) (value.Number, error) {
		return acc - n, nil
	})
}

func builtinMultiply(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.foldNumOp(value.OpMultiply, env, args, func(acc, n value.Number) (value.Number, error) {
		return acc * n, nil
	})
}

func builtinDivide(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.foldNumOp(value.OpDivide, env, args, func(acc, n value.Number) (value.Number, error) {
		if n == 0 {
			return 0, &DivideByZeroError{Dividend: acc, Divisor: n}
		}

		return acc / n, nil
	})
}

// compareOp implements the comparison fold shared by >, >=, < and <=:
// the same left-fold shape as foldNumOp, except each step produces a
// Bool rather than a Number. A single operand passes through unchanged
// as the bare Number; a third operand forces the previous step's Bool
// back through the Number precondition, which fails with TypeError.
func (ev *Evaluator) compareOp(
	op value.OpCode,
	env *value.Env,
	args []value.Expr,
	cmp func(a, b value.Number) bool,
) (value.Expr, error) {
	if len(args) == 0 {
		return nil, &ArityError{Op: op, Expected: "कम्तिमा १", Got: 0}
	}

	accNum, err := ev.evalNumber(op, env, args[0])
	if err != nil {
		return nil, err
	}
	var acc value.Expr = accNum

	for _, a := range args[1:] {
		n, ok := acc.(value.Number)
		if !ok {
			return nil, &TypeError{Op: op, Expected: "अंक", Got: acc}
		}
		next, err := ev.evalNumber(op, env, a)
		if err != nil {
			return nil, err
		}
		acc = value.Bool(cmp(n, next))
	}

	return acc, nil
}

func builtinGreaterThan(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.compareOp(value.OpGreaterThan, env, args, func(a, b value.Number) bool { return a > b })
}

func builtinGreaterThanOrEqual(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.compareOp(value.OpGreaterThanOrEqual, env, args, func(a, b value.Number) bool { return a >= b })
}

func builtinLessThan(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.compareOp(value.OpLessThan, env, args, func(a, b value.Number) bool { return a < b })
}

func builtinLessThanOrEqual(ev value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	e := ev.(*Evaluator)

	return e.compareOp(value.OpLessThanOrEqual, env, args, func(a, b value.Number) bool { return a <= b })
}
