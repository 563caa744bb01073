package value

import (
	"fmt"
	"strings"
)

// Number is a signed 32-bit integer — the only numeric type this
// language has, with no float or bignum tower.
type Number int32

func (Number) Type() Type { return TypeNumber }

func (n Number) Equals(other Expr) bool {
	o, ok := other.(Number)

	return ok && n == o
}

// devDigits maps ASCII digit value to its Devanagari numeral glyph.
var devDigits = [10]rune{'०', '१', '२', '३', '४', '५', '६', '७', '८', '९'}

// digitValue maps a Devanagari numeral rune back to its digit value, or
// -1 if r is not one of ०-९.
func digitValue(r rune) int {
	for v, d := range devDigits {
		if d == r {
			return v
		}
	}

	return -1
}

// String renders a Number using Devanagari numerals, with a bare ASCII
// '-' prefix for negative values and no prefix for non-negative ones.
func (n Number) String() string {
	neg := n < 0
	u := int64(n)
	if neg {
		u = -u
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	digits := strconvDigits(u)
	for _, d := range digits {
		b.WriteRune(devDigits[d])
	}

	return b.String()
}

// strconvDigits decomposes a non-negative integer into its decimal
// digits, most significant first, with a single 0 digit for zero.
func strconvDigits(u int64) []int {
	if u == 0 {
		return []int{0}
	}

	var digits []int
	for u > 0 {
		digits = append([]int{int(u % 10)}, digits...)
		u /= 10
	}

	return digits
}

// ParseNumber reads a Devanagari numeral literal, with an optional
// leading ASCII sign ('+' or '-'). '+' is accepted as a parse
// convenience but is never emitted by String.
func ParseNumber(s string) (Number, error) {
	if s == "" {
		return 0, fmt.Errorf("ParseNumber: empty literal")
	}

	runes := []rune(s)
	i := 0
	neg := false
	if runes[0] == '+' || runes[0] == '-' {
		neg = runes[0] == '-'
		i++
	}
	if i == len(runes) {
		return 0, fmt.Errorf("ParseNumber: %q has a sign with no digits", s)
	}

	var acc int64
	for ; i < len(runes); i++ {
		d := digitValue(runes[i])
		if d < 0 {
			return 0, fmt.Errorf("ParseNumber: %q contains a non-Devanagari digit %q", s, runes[i])
		}
		acc = acc*10 + int64(d)
		if acc > (1<<31) || (!neg && acc > (1<<31)-1) {
			return 0, fmt.Errorf("ParseNumber: %q overflows a 32-bit integer", s)
		}
	}
	if neg {
		acc = -acc
	}

	return Number(acc), nil
}

// IsDevanagariDigit reports whether r is one of ०-९.
func IsDevanagariDigit(r rune) bool { return digitValue(r) >= 0 }
