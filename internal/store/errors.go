package store

import "errors"

var (
	// ErrNotFound is returned when no row matches the query, including the
	// case where a row exists but falls outside the caller's scope.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a user insert violates the unique
	// email constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
