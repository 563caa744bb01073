package value

// OpCode names a reserved operator symbol. OpNone marks a plain
// identifier.
type OpCode int

const (
	OpNone OpCode = iota

	// NumOp — one number argument evaluated, remaining folded.
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual

	// ExprsOp — arguments evaluated or not at each built-in's discretion.
	OpEqual
	OpNotEqual
	OpIf
	OpImport
	OpPrint
	OpError

	// QExprOp — single Q-expression argument.
	OpFirst
	OpRest
	OpLen
	OpEval

	// QExprsOp — one or more arguments, at least one a Q-expression.
	OpCons
	OpJoin
	OpDef
	OpPut
	OpLambda

	// SExprOp — zero or more unevaluated arguments.
	OpQuote
	OpPrintEnv
)

// Category groups operators by the arity/forcing shape their built-in
// implementation follows.
type Category byte

const (
	CategoryNumOp Category = iota
	CategoryExprsOp
	CategoryQExprOp
	CategoryQExprsOp
	CategorySExprOp
)

// OpGlyph maps each reserved operator to its canonical surface glyph.
var OpGlyph = map[OpCode]string{
	OpAdd:                "+",
	OpSubtract:           "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpGreaterThan:        ">",
	OpGreaterThanOrEqual: ">=",
	OpLessThan:           "<",
	OpLessThanOrEqual:    "<=",
	OpEqual:              "==",
	OpNotEqual:           "!=",
	OpIf:                 "यदि",
	OpImport:             "आयात",
	OpPrint:              "छाप",
	OpError:              "समस्या",
	OpFirst:              "पहिलो",
	OpRest:               "बाँकी",
	OpLen:                "वटा",
	OpEval:               "बिस्तार",
	OpCons:               "निर्माण",
	OpJoin:               "एकत्र",
	OpDef:                "नामक",
	OpPut:                "=",
	OpLambda:             "ल्याम्बडा",
	OpQuote:              "उद्धरण",
	OpPrintEnv:           "वातावरण",
}

// OpCategory reports which arity/forcing shape an operator follows.
var OpCategory = map[OpCode]Category{
	OpAdd:                CategoryNumOp,
	OpSubtract:            CategoryNumOp,
	OpMultiply:            CategoryNumOp,
	OpDivide:              CategoryNumOp,
	OpGreaterThan:         CategoryNumOp,
	OpGreaterThanOrEqual:  CategoryNumOp,
	OpLessThan:            CategoryNumOp,
	OpLessThanOrEqual:     CategoryNumOp,
	OpEqual:               CategoryExprsOp,
	OpNotEqual:            CategoryExprsOp,
	OpIf:                  CategoryExprsOp,
	OpImport:              CategoryExprsOp,
	OpPrint:               CategoryExprsOp,
	OpError:               CategoryExprsOp,
	OpFirst:               CategoryQExprOp,
	OpRest:                CategoryQExprOp,
	OpLen:                 CategoryQExprOp,
	OpEval:                CategoryQExprOp,
	OpCons:                CategoryQExprsOp,
	OpJoin:                CategoryQExprsOp,
	OpDef:                 CategoryQExprsOp,
	OpPut:                 CategoryQExprsOp,
	OpLambda:              CategoryQExprsOp,
	OpQuote:               CategorySExprOp,
	OpPrintEnv:            CategorySExprOp,
}

// GlyphOp is the reverse of OpGlyph, built at package init, used by the
// parser to recognize a bare identifier token as a reserved operator.
var GlyphOp map[string]OpCode

func init() {
	GlyphOp = make(map[string]OpCode, len(OpGlyph))
	for op, glyph := range OpGlyph {
		GlyphOp[glyph] = op
	}
}

// RestMarker is the formals-list glyph that marks the next formal as a
// rest parameter collecting any remaining arguments into one Q-expression.
const RestMarker = "ऽ"
