package model

import (
	"fmt"
	"math"
)

// ValidateValues checks that every value is finite and non-negative. name is
// used in the error message, e.g. "job" or "group".
func ValidateValues(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s %d is not finite", ErrInvalidInput, name, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s %d is negative (%v)", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}

// ValidateProcessors checks that at least one processor is available.
func ValidateProcessors(p int) error {
	if p < 1 {
		return fmt.Errorf("%w: processor count must be >= 1 (got %d)", ErrInvalidInput, p)
	}
	return nil
}

// ValidateCapacity checks that the capacity is finite and non-negative.
func ValidateCapacity(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("%w: capacity is not finite", ErrInvalidInput)
	}
	if c < 0 {
		return fmt.Errorf("%w: capacity is negative (%v)", ErrInvalidInput, c)
	}
	return nil
}
