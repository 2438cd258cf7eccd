package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid operator input or an invalid generator definition.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a generator or template was not found.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates the destination file is already present.
	ErrExists = errors.New("already exists")

	// ErrWrite indicates a filesystem write failure.
	ErrWrite = errors.New("write error")

	// ErrAborted indicates the operator aborted an interactive prompt.
	ErrAborted = errors.New("aborted")
)
