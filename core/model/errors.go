package model

import "errors"

// ErrInvalidInput is returned when a processor count, duration, group size or
// capacity violates the input contract.
var ErrInvalidInput = errors.New("invalid input")

// ErrInputTooLarge is returned by the exact solvers when the input exceeds
// their enumeration guard.
var ErrInputTooLarge = errors.New("input too large")
