package observability

import (
	"errors"
	"fmt"
)

// ObservabilityErrorCode represents error codes specific to observability operations.
type ObservabilityErrorCode string

const (
	// ErrExporterConnection indicates failure to connect to an observability exporter.
	ErrExporterConnection ObservabilityErrorCode = "OBSERVABILITY_EXPORTER_CONNECTION"

	// ErrShutdownTimeout indicates a timeout occurred during graceful shutdown.
	ErrShutdownTimeout ObservabilityErrorCode = "OBSERVABILITY_SHUTDOWN_TIMEOUT"
)

// ObservabilityError represents a structured error for observability operations.
// It carries an error code, message, retryability, and optional cause.
type ObservabilityError struct {
	Code      ObservabilityErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *ObservabilityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *ObservabilityError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is an ObservabilityError with the same Code.
func (e *ObservabilityError) Is(target error) bool {
	var obsErr *ObservabilityError
	if errors.As(target, &obsErr) {
		return e.Code == obsErr.Code
	}
	return false
}

// NewObservabilityError creates a new non-retryable ObservabilityError.
func NewObservabilityError(code ObservabilityErrorCode, message string) *ObservabilityError {
	return &ObservabilityError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// WrapObservabilityError creates a new ObservabilityError that wraps an existing error.
func WrapObservabilityError(code ObservabilityErrorCode, message string, cause error) *ObservabilityError {
	return &ObservabilityError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}

// NewExporterConnectionError creates an error for exporter connection failures.
// This error is retryable as network issues are often transient.
func NewExporterConnectionError(endpoint string, cause error) *ObservabilityError {
	return &ObservabilityError{
		Code:      ErrExporterConnection,
		Message:   fmt.Sprintf("failed to connect to exporter at %s", endpoint),
		Retryable: true,
		Cause:     cause,
	}
}

// NewShutdownTimeoutError creates an error for shutdown timeout conditions.
// This error is not retryable as shutdown is a one-time operation.
func NewShutdownTimeoutError(component string) *ObservabilityError {
	return &ObservabilityError{
		Code:      ErrShutdownTimeout,
		Message:   fmt.Sprintf("%s shutdown timed out", component),
		Retryable: false,
		Cause:     nil,
	}
}
