package types_test

import (
	"errors"
	"fmt"

	"github.com/planck-ai/planck/internal/types"
)

// Example demonstrates basic error creation and handling
func Example_basicError() {
	err := types.NewError(types.CONFIG_LOAD_FAILED, "failed to load configuration file")
	fmt.Println(err.Error())
	// Output: [CONFIG_LOAD_FAILED] failed to load configuration file
}

// Example demonstrates wrapping errors to preserve context
func Example_wrappedError() {
	originalErr := errors.New("file not found")
	err := types.WrapError(types.CONFIG_NOT_FOUND, "configuration missing", originalErr)
	fmt.Println(err.Error())
	// Output: [CONFIG_NOT_FOUND] configuration missing: file not found
}

// Example demonstrates matching errors by code with errors.Is
func Example_errorMatching() {
	err := types.WrapError(types.STORE_OPEN_FAILED, "cannot open run store", errors.New("disk full"))

	if errors.Is(err, types.NewError(types.STORE_OPEN_FAILED, "")) {
		fmt.Println("store open failure detected")
	}
	// Output: store open failure detected
}

// Example demonstrates extracting the structured error with errors.As
func Example_errorExtraction() {
	var err error = types.WrapError(types.RUN_NOT_FOUND, "no such run", errors.New("sql: no rows in result set"))

	var perr *types.PlanckError
	if errors.As(err, &perr) {
		fmt.Println("Code:", perr.Code)
		fmt.Println("Message:", perr.Message)
	}
	// Output:
	// Code: RUN_NOT_FOUND
	// Message: no such run
}

// Example demonstrates walking the cause chain with errors.Unwrap
func Example_errorUnwrapping() {
	rootCause := errors.New("connection refused")
	err := types.WrapError(types.STORE_QUERY_FAILED, "listing runs failed", rootCause)

	fmt.Println("Cause:", errors.Unwrap(err))
	// Output: Cause: connection refused
}
