package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Write errors.
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)
