package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record is absent.
	ErrNotFound = errors.New("record not found")

	// ErrVersionConflict is returned when a status write loses the race
	// against a concurrent transition (stale version).
	ErrVersionConflict = errors.New("record was modified concurrently")
)
