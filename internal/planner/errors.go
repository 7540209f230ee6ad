package planner

import (
	"errors"
	"fmt"
)

// ErrUsageRequested is returned by ParseArguments when the token list asks
// for the usage message with -h. It signals a clean exit, not a failure.
var ErrUsageRequested = errors.New("usage requested")

// ErrorType represents specific configuration error types.
type ErrorType string

const (
	// ErrorTypeUnknownArgument indicates an unrecognized flag or a flag
	// with no value token after it.
	ErrorTypeUnknownArgument ErrorType = "unknown_argument"

	// ErrorTypeMalformedValue indicates a flag value that could not be
	// parsed as a number.
	ErrorTypeMalformedValue ErrorType = "malformed_value"

	// ErrorTypeMissingInput indicates that no domain or problem file was
	// supplied.
	ErrorTypeMissingInput ErrorType = "missing_input"
)

// ConfigurationError represents an argument list that cannot be turned into
// a runnable configuration. It implements the error interface and supports
// error wrapping with errors.Is/As.
type ConfigurationError struct {
	// Type identifies the specific error type.
	Type ErrorType

	// Flag is the offending command line flag, when one is known.
	Flag string

	// Message is a human-readable error message.
	Message string

	// Cause is the underlying error that caused this error (optional).
	Cause error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := e.Message
	if e.Flag != "" {
		msg = fmt.Sprintf("%s: %s", e.Flag, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, msg)
}

// Unwrap implements the errors.Unwrap interface for error chain traversal.
func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// Is implements the errors.Is interface for error comparison.
// Two ConfigurationErrors are equal if they have the same error type.
func (e *ConfigurationError) Is(target error) bool {
	var confErr *ConfigurationError
	if errors.As(target, &confErr) {
		return e.Type == confErr.Type
	}
	return false
}

// newConfigurationError creates a ConfigurationError for the given flag.
func newConfigurationError(errType ErrorType, flag, message string) *ConfigurationError {
	return &ConfigurationError{Type: errType, Flag: flag, Message: message}
}

// wrapConfigurationError creates a ConfigurationError wrapping a parse
// failure for the given flag.
func wrapConfigurationError(errType ErrorType, flag, message string, cause error) *ConfigurationError {
	return &ConfigurationError{Type: errType, Flag: flag, Message: message, Cause: cause}
}
