package errors

import "errors"

var (
	// ErrNotFound is a sentinel for overlay ids with no matching document.
	ErrNotFound = errors.New("overlay not found")
	// ErrInvalidID is a sentinel for ids that are not valid ObjectId hex.
	ErrInvalidID = errors.New("invalid overlay id")
	// ErrValidation is the sentinel wrapped by field-level validation errors.
	ErrValidation = errors.New("validation failed")
)
