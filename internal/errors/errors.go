package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the
// application. These codes are used to signal the outcome of the program
// execution to the OS. The two input-error paths deliberately get codes
// distinct from success and from each other.
const (
	ExitSuccess             = 0   // Indicates successful execution.
	ExitErrorGeneric        = 1   // Indicates a generic error.
	ExitErrorInvalidInput   = 2   // Indicates a non-digit byte in a numeral.
	ExitErrorInputExhausted = 3   // Indicates the input stream ended before a numeral started.
	ExitErrorConfig         = 4   // Indicates a configuration error.
	ExitErrorMismatch       = 5   // Indicates a self-test mismatch against the reference multiplier.
	ExitErrorCanceled       = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrInputExhausted reports that the input stream was closed or unreadable
// while the first character of a numeral was expected. It is fatal and
// carries no diagnostic output.
var ErrInputExhausted = errors.New("input exhausted before numeral")

// InvalidCharacterError reports a byte outside '0'..'9' encountered while
// accumulating a numeral. It is unrecoverable: by the time the error is
// returned the rest of the offending line has already been discarded.
type InvalidCharacterError struct {
	// Byte is the offending raw input byte.
	Byte byte
}

// Error returns a message containing the offending byte.
func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character: %q", e.Byte)
}

// InputError encapsulates a read failure on the input stream while
// preserving the original cause.
type InputError struct {
	// Cause is the underlying error reported by the stream.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e InputError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e InputError) Unwrap() error { return e.Cause }

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MismatchError reports that the schoolbook multiplier and the reference
// implementation disagreed during a self-test run.
type MismatchError struct {
	// Trials is the number of trials executed.
	Trials int
	// Mismatches is the number of disagreeing trials.
	Mismatches int
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("self-test failed: %d of %d trials disagreed with the reference multiplier", e.Mismatches, e.Trials)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status documented above.
// A nil error maps to ExitSuccess.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInputExhausted):
		return ExitErrorInputExhausted
	case IsContextError(err):
		return ExitErrorCanceled
	}
	var invalidChar InvalidCharacterError
	if errors.As(err, &invalidChar) {
		return ExitErrorInvalidInput
	}
	var mismatch MismatchError
	if errors.As(err, &mismatch) {
		return ExitErrorMismatch
	}
	var config ConfigError
	if errors.As(err, &config) {
		return ExitErrorConfig
	}
	var input InputError
	if errors.As(err, &input) {
		return ExitErrorInputExhausted
	}
	return ExitErrorGeneric
}
