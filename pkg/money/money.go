// Package money provides the canonical representation of user-entered amounts.
//
// Invariants:
//   - An amount is always an integer number of cents, never a float.
//   - Cents are never negative; there is no way to type a sign.
//   - The wire form sent to providers is a fixed-point string with exactly
//     two fractional digits ("100.00").
package money

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// MaxDigits bounds the number of digits a cents value may carry so that it
// stays exact in an int64 and in a float64 mantissa.
const MaxDigits = 15

// Cents represents a monetary amount as an integer in hundredths of the unit.
type Cents int64

// Digits returns only the ASCII digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDigits interprets a digit-only string as cents. Leading zeros are
// ignored and the empty string is zero.
func ParseDigits(digits string) (Cents, error) {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return 0, nil
	}
	if len(trimmed) > MaxDigits {
		return 0, fmt.Errorf("%w: %d digits", ErrTooManyDigits, len(trimmed))
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDigits, err)
	}
	return Cents(n), nil
}

// FromText strips every non-digit character of text and parses the rest as cents.
func FromText(text string) (Cents, error) {
	return ParseDigits(Digits(text))
}

// IsPositive reports whether there is anything to convert.
func (c Cents) IsPositive() bool {
	return c > 0
}

// Decimal returns the amount in whole units as an exact decimal.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// FixedPoint returns the provider wire form, e.g. 10000 -> "100.00".
func (c Cents) FixedPoint() string {
	return c.Decimal().StringFixed(2)
}

// DigitString returns the cents as a plain digit string ("0" for zero).
func (c Cents) DigitString() string {
	return strconv.FormatInt(int64(c), 10)
}

// Multiply computes amount × rate where amount is a fixed-point string.
// The multiplication is exact; only the final value is rounded to float64.
func Multiply(amount string, rate float64) (float64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	result, _ := d.Mul(decimal.NewFromFloat(rate)).Float64()
	return result, nil
}
