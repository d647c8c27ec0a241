package repository

import "errors"

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a unique
	// constraint (users.email, cafes.name).
	ErrDuplicate = errors.New("duplicate entry")
	// ErrMissingReference is returned when an insert references a row
	// that does not exist (e.g. a comment on a deleted cafe).
	ErrMissingReference = errors.New("missing referenced row")
)
