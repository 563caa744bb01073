package eval

import "github.com/devlisp/devlisp/internal/value"

// builtinFns maps every reserved operator to its implementation. Each
// function enforces its own arity — unlike positional built-ins that
// can share one arity-checking wrapper, devlisp's built-ins vary in
// whether they evaluate, fold, or leave arguments alone, so the check
// lives closest to that decision.
var builtinFns = map[value.OpCode]value.BuiltinFn{
	value.OpAdd:                builtinAdd,
	value.OpSubtract:           builtinSubtract,
	value.OpMultiply:           builtinMultiply,
	value.OpDivide:             builtinDivide,
	value.OpGreaterThan:        builtinGreaterThan,
	value.OpGreaterThanOrEqual: builtinGreaterThanOrEqual,
	value.OpLessThan:           builtinLessThan,
	value.OpLessThanOrEqual:    builtinLessThanOrEqual,
	value.OpEqual:              builtinEqual,
	value.OpNotEqual:           builtinNotEqual,
	value.OpIf:                 builtinIf,
	value.OpImport:             builtinImport,
	value.OpPrint:              builtinPrint,
	value.OpError:              builtinError,
	value.OpFirst:              builtinFirst,
	value.OpRest:               builtinRest,
	value.OpLen:                builtinLen,
	value.OpEval:               builtinEval,
	value.OpCons:               builtinCons,
	value.OpJoin:               builtinJoin,
	value.OpDef:                builtinDef,
	value.OpPut:                builtinPut,
	value.OpLambda:             builtinLambda,
	value.OpQuote:              builtinQuote,
	value.OpPrintEnv:           builtinPrintEnv,
}

// RegisterBuiltins binds every reserved operator glyph in root to its
// Core implementation. Called once, on the environment the REPL and
// file runner both start from.
func RegisterBuiltins(root *value.Env) {
	for op, glyph := range value.OpGlyph {
		fn, ok := builtinFns[op]
		if !ok {
			continue
		}
		root.BindLocal(glyph, &value.Core{Op: op, Fn: fn})
	}
}
