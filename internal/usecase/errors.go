package usecase

import "errors"

var (
	// ErrInvalidTransition is returned when a requested status change is
	// not an edge of the lifecycle graph for the requesting actor. The
	// record is left untouched.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrValidation wraps request validation failures.
	ErrValidation = errors.New("validation failed")
)
