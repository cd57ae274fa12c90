package calculator

import (
	"github.com/cockroachdb/errors"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns a + b. It never fails.
func Add(a, b float64) (float64, error) {
	return a + b, nil
}

// Subtract returns a - b. It never fails.
func Subtract(a, b float64) (float64, error) {
	return a - b, nil
}

// Multiply returns a * b. It never fails.
func Multiply(a, b float64) (float64, error) {
	return a * b, nil
}

// Divide returns a / b, or ErrDivisionByZero when b is exactly zero.
// The guard is an exact IEEE comparison: any nonzero divisor, however
// small, proceeds to ordinary floating-point division.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%g / %g", a, b)
	}
	return a / b, nil
}
