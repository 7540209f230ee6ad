package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planck-ai/planck/internal/planner"
	"github.com/planck-ai/planck/internal/types"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitTimeout indicates the operation timed out
	ExitTimeout = 3
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 4
	// ExitConfigError indicates a configuration error
	ExitConfigError = 10
	// ExitStoreError indicates a run history store error
	ExitStoreError = 12
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// HandleError handles an error and returns the appropriate exit code.
// It also prints the error message to the command's error output.
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for context cancellation
	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	// Check for context deadline exceeded
	if errors.Is(err, context.DeadlineExceeded) {
		cmd.PrintErrln("Operation timed out")
		return ExitTimeout
	}

	// Check for CLIError
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		cmd.PrintErrln("Error:", cliErr.Message)
		if cliErr.Cause != nil {
			verboseFlag := cmd.Flag("verbose")
			if verboseFlag != nil && verboseFlag.Changed {
				cmd.PrintErrln("Cause:", cliErr.Cause)
			}
		}
		return cliErr.Code
	}

	// Check for structured runtime errors and map their code class
	var perr *types.PlanckError
	if errors.As(err, &perr) {
		cmd.PrintErrln("Error:", perr.Message)
		if perr.Cause != nil {
			verboseFlag := cmd.Flag("verbose")
			if verboseFlag != nil && verboseFlag.Changed {
				cmd.PrintErrln("Cause:", perr.Cause)
			}
		}
		return exitCodeFor(perr.Code)
	}

	// Check for planner ConfigurationError. Diagnostics already went to the
	// run logger, so only the summary is printed here.
	var cfgErr *planner.ConfigurationError
	if errors.As(err, &cfgErr) {
		cmd.PrintErrln("Error:", cfgErr.Error())
		return ExitConfigError
	}

	// Generic error
	cmd.PrintErrln("Error:", err)
	return ExitError
}

// exitCodeFor maps a structured error code to the CLI exit code for its class.
func exitCodeFor(code types.ErrorCode) int {
	switch code {
	case types.CONFIG_LOAD_FAILED, types.CONFIG_PARSE_FAILED,
		types.CONFIG_VALIDATION_FAILED, types.CONFIG_NOT_FOUND:
		return ExitConfigError
	case types.STORE_OPEN_FAILED, types.STORE_MIGRATE_FAILED,
		types.STORE_QUERY_FAILED, types.RUN_RECORD_FAILED, types.RUN_NOT_FOUND:
		return ExitStoreError
	default:
		return ExitError
	}
}

// IsVerbose checks if verbose mode is enabled via environment variable or flag.
// This is used for panic recovery to determine if stack traces should be shown.
func IsVerbose() bool {
	// Check environment variable
	if os.Getenv("PLANCK_VERBOSE") != "" {
		return true
	}

	// Check common verbose flag patterns
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}

	return false
}
