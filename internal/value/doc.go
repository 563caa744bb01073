// Package value defines the runtime value/expression system: Bool,
// Number, Str, Sym, SExpr, QExpr, Core and Lambda, plus the chained Env
// binding frames they live in.
//
// This interpreter is homoiconic: the reader's output and the
// evaluator's input/output are the same Expr tree, so there is no
// separate internal/ast package. Evaluating an S-expression performs a
// call; a Q-expression is the language's quoting mechanism and always
// evaluates to itself. Core and Lambda are the two variants the reader
// never produces — they exist only at runtime.
//
// Env is a chain of mutable binding frames. Lookup walks from a frame
// up to its parentless root; BindGlobal always writes to that root
// regardless of which frame initiated it, matching नामक's defined
// behavior of defining into global scope even from a nested call.
package value
