package cmd

import (
	"context"
	"errors"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *oerrors.ExitError {
	return &oerrors.ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrAborted), errors.Is(err, context.Canceled):
		return ExitAborted
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrExists):
		return ExitDestinationExists
	case errors.Is(err, oerrors.ErrWrite):
		return ExitWriteError
	default:
		return ExitGeneralError
	}
}

// exitError attaches the exit code derived from err.
func exitError(err error, printed bool) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Err: err, Code: ExitCodeFromError(err), Printed: printed}
}
