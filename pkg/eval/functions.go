package eval

import "github.com/devlisp/devlisp/internal/value"

// applyLambda binds args — evaluated in callerEnv — against l's
// remaining formals. Supplying fewer arguments than formals returns a
// new partially-applied Lambda whose captured frame has grown by the
// bound prefix; supplying more than the formals accept is an arity
// error; supplying exactly enough (or reaching the rest marker)
// evaluates the body in a frame chained under callerEnv — the moment a
// Lambda's captured frame, which otherwise carries no parent of its
// own, finally gets one.
//
// The ऽ (RestMarker) formal collects every argument from its position
// onward into a single Q-expression and always finishes application —
// a rest parameter accepts zero or more arguments, it never partially
// applies.
func (ev *Evaluator) applyLambda(callerEnv *value.Env, l *value.Lambda, args []value.Expr) (value.Expr, error) {
	hasRest := false
	for _, f := range l.Formals {
		if f == value.RestMarker {
			hasRest = true

			break
		}
	}
	if !hasRest && len(args) > len(l.Formals) {
		return nil, &TooManyLambdaArgumentsError{Expected: len(l.Formals), Got: len(args)}
	}

	frame := l.Frame.Own()

	formalIdx, argIdx := 0, 0
	for argIdx < len(args) {
		name := l.Formals[formalIdx]
		if name == value.RestMarker {
			return ev.bindRestAndApply(callerEnv, l, frame, formalIdx, args[argIdx:])
		}

		v, err := ev.Eval(callerEnv, args[argIdx])
		if err != nil {
			return nil, err
		}
		frame[name] = v
		formalIdx++
		argIdx++
	}

	remaining := l.Formals[formalIdx:]
	if len(remaining) > 0 && remaining[0] == value.RestMarker {
		return ev.bindRestAndApply(callerEnv, l, frame, formalIdx, nil)
	}
	if len(remaining) == 0 {
		return ev.finishApplication(callerEnv, l.Body, frame)
	}

	return &value.Lambda{Formals: remaining, Body: l.Body, Frame: value.FrameFrom(frame)}, nil
}

// bindRestAndApply evaluates remainingArgs in callerEnv, binds them as
// one Q-expression to the formal following the rest marker at
// l.Formals[markerIdx+1], and finishes application unconditionally.
func (ev *Evaluator) bindRestAndApply(
	callerEnv *value.Env,
	l *value.Lambda,
	frame map[string]value.Expr,
	markerIdx int,
	remainingArgs []value.Expr,
) (value.Expr, error) {
	if markerIdx+1 >= len(l.Formals) {
		return nil, &MalformedLambdaError{Reason: "ऽ पछि कुनै नाम छैन"}
	}
	restName := l.Formals[markerIdx+1]

	collected := make([]value.Expr, 0, len(remainingArgs))
	for _, a := range remainingArgs {
		v, err := ev.Eval(callerEnv, a)
		if err != nil {
			return nil, err
		}
		collected = append(collected, v)
	}
	frame[restName] = &value.QExpr{Children: collected}

	return ev.finishApplication(callerEnv, l.Body, frame)
}

// finishApplication chains frame under callerEnv and evaluates the
// lambda body, reinterpreted as an S-expression via AsSExpr — the same
// reinterpretation बिस्तार performs on any Q-expression.
func (ev *Evaluator) finishApplication(callerEnv *value.Env, body *value.QExpr, frame map[string]value.Expr) (value.Expr, error) {
	bodyEnv := value.ExtendWith(callerEnv, frame)

	return ev.Eval(bodyEnv, body.AsSExpr())
}
