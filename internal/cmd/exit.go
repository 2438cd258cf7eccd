package cmd

// Process exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or an invalid generator definition.
	ExitValidationError = 2

	// ExitNotFound indicates an unknown generator or a missing template.
	ExitNotFound = 5

	// ExitDestinationExists indicates the file to generate is already present.
	ExitDestinationExists = 6

	// ExitWriteError indicates the destination could not be written.
	ExitWriteError = 7

	// ExitAborted indicates the operator interrupted a prompt.
	ExitAborted = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitDestinationExists:
		return "Destination Exists"
	case ExitWriteError:
		return "Write Error"
	case ExitAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
