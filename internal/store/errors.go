package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when inserting a username that is already registered.
	ErrAlreadyExists = errors.New("already exists")
)
