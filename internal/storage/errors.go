package storage

import "errors"

var (
	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrWriteFailure is returned when the storage medium cannot be written
	// (disk full, permission denied). It wraps the underlying cause.
	ErrWriteFailure = errors.New("storage write failure")

	// ErrReadFailure is returned when the storage area cannot be enumerated.
	ErrReadFailure = errors.New("storage read failure")
)
