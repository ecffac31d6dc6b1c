package domain

import "errors"

var (
	// ErrNotFound is returned when a mutation targets a row that does not exist.
	// Pure lookups report absence as a nil record instead.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert or update violates a unique
	// constraint (slug, username, email).
	ErrConflict = errors.New("duplicate value for unique field")
)
