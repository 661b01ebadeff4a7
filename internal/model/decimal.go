package model

import (
	"fmt"
	"math/big"
)

// ParseDecimal parses a canonical decimal string: an optional sign,
// one or more digits, and an optional fractional part. This is stricter
// than big.Rat's own parser, which also accepts fractions and exponents
// that have no place in the wire encoding.
func ParseDecimal(s string) (*big.Rat, error) {
	if !validDecimal(s) {
		return nil, fmt.Errorf("%w: malformed decimal %q", ErrInvalidArgument, s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: malformed decimal %q", ErrInvalidArgument, s)
	}
	return r, nil
}

// CompareDecimals numerically compares two canonical decimal strings,
// returning -1, 0, or +1.
func CompareDecimals(a, b string) (int, error) {
	ra, err := ParseDecimal(a)
	if err != nil {
		return 0, err
	}
	rb, err := ParseDecimal(b)
	if err != nil {
		return 0, err
	}
	return ra.Cmp(rb), nil
}

func validDecimal(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	frac := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		frac++
	}
	return frac > 0 && i == len(s)
}
