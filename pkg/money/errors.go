package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when a fixed-point amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDigits is returned when a digit string cannot be parsed as cents.
	ErrInvalidDigits = errors.New("invalid digits")

	// ErrTooManyDigits is returned when an amount exceeds MaxDigits.
	ErrTooManyDigits = errors.New("amount has too many digits")
)
