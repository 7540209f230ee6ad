package types

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure raised by the planck runtime.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
	CONFIG_NOT_FOUND         ErrorCode = "CONFIG_NOT_FOUND"
)

// Run-store error codes
const (
	STORE_OPEN_FAILED    ErrorCode = "STORE_OPEN_FAILED"
	STORE_MIGRATE_FAILED ErrorCode = "STORE_MIGRATE_FAILED"
	STORE_QUERY_FAILED   ErrorCode = "STORE_QUERY_FAILED"
)

// Run error codes
const (
	RUN_RECORD_FAILED ErrorCode = "RUN_RECORD_FAILED"
	RUN_NOT_FOUND     ErrorCode = "RUN_NOT_FOUND"
)

// PlanckError is the structured error carried across package boundaries.
// It pairs a stable code with a human-readable message and an optional cause,
// and supports errors.Is matching by code.
type PlanckError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *PlanckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *PlanckError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a PlanckError with the same Code.
func (e *PlanckError) Is(target error) bool {
	var perr *PlanckError
	if errors.As(target, &perr) {
		return e.Code == perr.Code
	}
	return false
}

// NewError creates a new PlanckError with the given code and message.
func NewError(code ErrorCode, message string) *PlanckError {
	return &PlanckError{
		Code:    code,
		Message: message,
	}
}

// WrapError creates a new PlanckError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *PlanckError {
	return &PlanckError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
