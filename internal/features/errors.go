package features

import "errors"

// Validation errors returned by [Build] when the raw answers cannot be
// turned into a complete feature vector. Callers should match with
// [errors.Is]; all of them wrap [ErrValidation].
var (
	// ErrValidation is the base error for every builder rejection.
	// No partial vector is ever produced alongside it.
	ErrValidation = errors.New("invalid prediction input")

	// ErrMissingField indicates a required answer was absent entirely.
	ErrMissingField = errors.New("required field is missing")

	// ErrBadAnswer indicates an answer was present but outside its
	// permitted value set (unknown label, negative measurement, day count
	// outside 0..30, and so on).
	ErrBadAnswer = errors.New("answer is out of range")
)
