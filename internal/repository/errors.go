package repository

import "errors"

var (
	// ErrNotFound indicates an entity was not located.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicateEmail indicates an insert collided with the unique email index.
	ErrDuplicateEmail = errors.New("repository: email already registered")
)
