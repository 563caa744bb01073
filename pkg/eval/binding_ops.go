package eval

import "github.com/devlisp/devlisp/internal/value"

// namesFromQExpr requires every child of q to be a Symbol and returns
// their names, in order — the shape नामक, =, and ल्याम्बडा's formals
// list all share.
func namesFromQExpr(q *value.QExpr) ([]string, error) {
	names := make([]string, len(q.Children))
	for i, c := range q.Children {
		sym, ok := c.(*value.Sym)
		if !ok {
			return nil, &NotASymbolError{Got: c}
		}
		names[i] = sym.Name
	}

	return names, nil
}

// bindList implements the shared शरीर of नामक and = : the first
// argument evaluates to a Q-expression of identifiers, the remaining
// arguments are evaluated and zipped 1:1 against those identifiers,
// then bound via bind.
func (ev *Evaluator) bindList(
	op value.OpCode,
	env *value.Env,
	args []value.Expr,
	bind func(name string, v value.Expr),
) (value.Expr, error) {
	if len(args) < 1 {
		return nil, &ArityError{Op: op, Expected: "कम्तिमा १", Got: len(args)}
	}

	namesExpr, err := ev.evalQExpr(op, env, args[0])
	if err != nil {
		return nil, err
	}
	names, err := namesFromQExpr(namesExpr)
	if err != nil {
		return nil, err
	}

	values := args[1:]
	if len(names) != len(values) {
		return nil, &UnequalDefListError{Names: len(names), Values: len(values)}
	}

	for i, name := range names {
		v, err := ev.Eval(env, values[i])
		if err != nil {
			return nil, err
		}
		bind(name, v)
	}

	return &value.SExpr{}, nil
}

// builtinDef implements नामक: always binds in the root environment,
// regardless of how deeply nested the call site is.
func builtinDef(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)

	return ev.bindList(value.OpDef, env, args, env.BindGlobal)
}

// builtinPut implements =: binds in the local frame, shadowing any
// outer binding of the same name.
func builtinPut(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)

	return ev.bindList(value.OpPut, env, args, env.BindLocal)
}

// builtinLambda implements ल्याम्बडा: two evaluated Q-expression
// arguments, the first a list of formal identifiers (which may include
// ऽ as a rest marker), the second the lambda body, kept as a
// Q-expression and only reinterpreted as code when the lambda is
// finally applied. The returned Lambda's captured frame starts
// parentless and empty — it only gains bindings through partial
// application, and only gains a parent at the moment it is fully
// applied.
func builtinLambda(evi value.Evaluator, env *value.Env, args []value.Expr) (value.Expr, error) {
	ev := evi.(*Evaluator)
	if len(args) != 2 {
		return nil, &ArityError{Op: value.OpLambda, Expected: "२", Got: len(args)}
	}

	formalsExpr, err := ev.evalQExpr(value.OpLambda, env, args[0])
	if err != nil {
		return nil, err
	}
	formals, err := namesFromQExpr(formalsExpr)
	if err != nil {
		return nil, err
	}

	body, err := ev.evalQExpr(value.OpLambda, env, args[1])
	if err != nil {
		return nil, err
	}

	return &value.Lambda{Formals: formals, Body: body, Frame: value.FrameFrom(nil)}, nil
}
