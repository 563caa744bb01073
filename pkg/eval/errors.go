package eval

import (
	"fmt"

	"github.com/devlisp/devlisp/internal/value"
)

// Category groups error variants the way spec.md's §7 taxonomy does:
// arity mismatches, type mismatches, domain violations (e.g. divide by
// zero), scope failures, host/IO failures, and explicitly user-raised
// errors.
type Category string

const (
	CategoryArity  Category = "arity"
	CategoryType   Category = "type"
	CategoryDomain Category = "domain"
	CategoryScope  Category = "scope"
	CategoryHost   Category = "host"
	CategoryUser   Category = "user"
)

// CategorizedError is implemented by every error this package raises,
// letting a caller (the CLI's error reporter) group failures by kind
// without string-matching messages.
type CategorizedError interface {
	error
	Category() Category
}

// ArityError reports a built-in called with the wrong number of
// arguments.
type ArityError struct {
	Op       value.OpCode
	Expected string // e.g. "२", "कम्तिमा १"
	Got      int
}

func (e *ArityError) Category() Category { return CategoryArity }
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: अपेक्षित तर्क संख्या %s, तर %d पाइयो", value.OpGlyph[e.Op], e.Expected, e.Got)
}

// TypeError reports a value of the wrong variant reaching a built-in
// that requires a specific one.
type TypeError struct {
	Op       value.OpCode
	Expected string
	Got      value.Expr
}

func (e *TypeError) Category() Category { return CategoryType }
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s अपेक्षित थियो, तर %s पाइयो", value.OpGlyph[e.Op], e.Expected, e.Got.String())
}

// DivideByZeroError reports division whose divisor evaluated to zero.
type DivideByZeroError struct {
	Dividend, Divisor value.Number
}

func (e *DivideByZeroError) Category() Category { return CategoryDomain }
func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("/: शून्यले भाग (%s / %s)", e.Dividend, e.Divisor)
}

// EmptyQExprError reports पहिलो or बाँकी applied to an empty Q-expression.
type EmptyQExprError struct {
	Op value.OpCode
}

func (e *EmptyQExprError) Category() Category { return CategoryDomain }
func (e *EmptyQExprError) Error() string {
	return fmt.Sprintf("%s: खाली सूचीमा लागू गर्न सकिँदैन", value.OpGlyph[e.Op])
}

// UnboundSymbolError reports a symbol with no binding anywhere in the
// environment chain.
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Category() Category { return CategoryScope }
func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("अपरिभाषित सिम्बल: %s", e.Name)
}

// UnequalDefListError reports नामक/= called with a different number of
// value arguments than names in its identifier list.
type UnequalDefListError struct {
	Names  int
	Values int
}

func (e *UnequalDefListError) Category() Category { return CategoryArity }
func (e *UnequalDefListError) Error() string {
	return fmt.Sprintf("नामक: %d नाम तर %d मान दिइयो", e.Names, e.Values)
}

// NotASymbolError reports a non-Symbol value found where नामक/ल्याम्बडा
// require an identifier.
type NotASymbolError struct {
	Got value.Expr
}

func (e *NotASymbolError) Category() Category { return CategoryType }
func (e *NotASymbolError) Error() string {
	return fmt.Sprintf("सिम्बल अपेक्षित थियो, तर %s पाइयो", e.Got.String())
}

// NotAnIdentifierError reports आयात called with a non-identifier
// argument.
type NotAnIdentifierError struct {
	Got value.Expr
}

func (e *NotAnIdentifierError) Category() Category { return CategoryType }
func (e *NotAnIdentifierError) Error() string {
	return fmt.Sprintf("आयात: पहिचायक अपेक्षित थियो, तर %s पाइयो", e.Got.String())
}

// InvalidOperatorError reports a call whose operator position reduced
// to a value that cannot be called.
type InvalidOperatorError struct {
	Got value.Expr
}

func (e *InvalidOperatorError) Category() Category { return CategoryScope }
func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("अमान्य अपरेटर: %s", e.Got.String())
}

// TooManyLambdaArgumentsError reports a lambda call with more
// arguments than it has formals left to bind.
type TooManyLambdaArgumentsError struct {
	Expected, Got int
}

func (e *TooManyLambdaArgumentsError) Category() Category { return CategoryArity }
func (e *TooManyLambdaArgumentsError) Error() string {
	return fmt.Sprintf("ल्याम्बडा: %d तर्क अपेक्षित थियो, तर %d पाइयो", e.Expected, e.Got)
}

// MalformedLambdaError reports a formals list whose rest marker (ऽ)
// has no following parameter name.
type MalformedLambdaError struct {
	Reason string
}

func (e *MalformedLambdaError) Category() Category { return CategoryType }
func (e *MalformedLambdaError) Error() string {
	return fmt.Sprintf("ल्याम्बडा: अमान्य सिम्बल सूची: %s", e.Reason)
}

// ImportError reports आयात failing to read or to parse its target file.
type ImportError struct {
	Path  string
	Cause error
}

func (e *ImportError) Category() Category { return CategoryHost }
func (e *ImportError) Error() string {
	return fmt.Sprintf("आयात: %s पढ्न सकिएन: %s", e.Path, e.Cause)
}

// ThrownError is a user-raised error, produced by समस्या.
type ThrownError struct {
	Message string
}

func (e *ThrownError) Category() Category { return CategoryUser }
func (e *ThrownError) Error() string      { return e.Message }
