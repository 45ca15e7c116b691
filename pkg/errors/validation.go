package errors

import "math"

// ValidateNonNegative checks that a millimeter value such as a margin is a
// finite number no smaller than zero. Failures carry the given code.
func ValidateNonNegative(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(code, "%s must not be negative (got %g)", field, v)
	}
	return nil
}

// ValidateOptionalSize checks an optional length: zero means "not given",
// anything else must be a finite positive number.
func ValidateOptionalSize(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must be positive when given (got %g)", field, v)
	}
	return nil
}

// ValidateOptionalCount checks an optional box count: zero means "not given",
// anything else must be at least one.
func ValidateOptionalCount(field string, n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "%s must be at least 1 (got %d)", field, n)
	}
	return nil
}
