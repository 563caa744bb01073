package eval

import "github.com/devlisp/devlisp/internal/value"

// evalQExpr evaluates expr and requires the result to be a Q-expression.
func (ev *Evaluator) evalQExpr(op value.OpCode, env *value.Env, expr value.Expr) (*value.QExpr, error) {
	v, err := ev.Eval(env, expr)
	if err != nil {
		return nil, err
	}
	q, ok := v.(*value.QExpr)
	if !ok {
		return nil, &TypeError{Op: op, Expected: "उद्धरण अभिव्यक्ति", Got: v}
	}

	return q, nil
}

// builtinFirst implements पहिलो: the single evaluated Q-expression
// argument must be non-empty; returns a Q-expression holding only its
// first element, unevaluated.
func builtinFirst(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 1 {
		return nil, &ArityError{Op: value.OpFirst, Expected: "१", Got: len(args)}
	}
	q, err := ev.evalQExpr(value.OpFirst, env, args[0])
	if err != nil {
		return nil, err
	}
	if len(q.Children) == 0 {
		return nil, &EmptyQExprError{Op: value.OpFirst}
	}

	return &value.QExpr{Children: []value.Expr{q.Children[0]}}, nil
}

// builtinRest implements बाँकी: like पहिलो but returns every element
// after the first, still wrapped as a Q-expression.
func builtinRest(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 1 {
		return nil, &ArityError{Op: value.OpRest, Expected: "१", Got: len(args)}
	}
	q, err := ev.evalQExpr(value.OpRest, env, args[0])
	if err != nil {
		return nil, err
	}
	if len(q.Children) == 0 {
		return nil, &EmptyQExprError{Op: value.OpRest}
	}

	rest := make([]value.Expr, len(q.Children)-1)
	copy(rest, q.Children[1:])

	return &value.QExpr{Children: rest}, nil
}

// builtinLen implements वटा: the length of the evaluated Q-expression
// argument, as a Number.
func builtinLen(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 1 {
		return nil, &ArityError{Op: value.OpLen, Expected: "१", Got: len(args)}
	}
	q, err := ev.evalQExpr(value.OpLen, env, args[0])
	if err != nil {
		return nil, err
	}

	return value.Number(len(q.Children)), nil
}

// builtinEval implements बिस्तार: the evaluated Q-expression argument is
// reinterpreted as an S-expression and evaluated — the same
// reinterpretation a Q-expression in operator position, or a lambda
// body, undergoes.
func builtinEval(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 1 {
		return nil, &ArityError{Op: value.OpEval, Expected: "१", Got: len(args)}
	}
	q, err := ev.evalQExpr(value.OpEval, env, args[0])
	if err != nil {
		return nil, err
	}

	return ev.Eval(env, q.AsSExpr())
}

// builtinCons implements निर्माण: prepends its first argument,
// unevaluated, as a single new element onto its second argument, which
// must evaluate to a Q-expression.
func builtinCons(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 2 {
		return nil, &ArityError{Op: value.OpCons, Expected: "२", Got: len(args)}
	}
	tail, err := ev.evalQExpr(value.OpCons, env, args[1])
	if err != nil {
		return nil, err
	}

	children := make([]value.Expr, 0, len(tail.Children)+1)
	children = append(children, args[0])
	children = append(children, tail.Children...)

	return &value.QExpr{Children: children}, nil
}

// builtinJoin implements एकत्र: concatenates one or more evaluated
// Q-expression arguments into a single Q-expression, in order.
func builtinJoin(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) == 0 {
		return nil, &ArityError{Op: value.OpJoin, Expected: "कम्तिमा १", Got: 0}
	}

	var children []value.Expr
	for _, a := range args {
		q, err := ev.evalQExpr(value.OpJoin, env, a)
		if err != nil {
			return nil, err
		}
		children = append(children, q.Children...)
	}

	return &value.QExpr{Children: children}, nil
}
