package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_Constants(t *testing.T) {
	tests := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		// Configuration errors
		{"CONFIG_LOAD_FAILED", CONFIG_LOAD_FAILED, "CONFIG_LOAD_FAILED"},
		{"CONFIG_PARSE_FAILED", CONFIG_PARSE_FAILED, "CONFIG_PARSE_FAILED"},
		{"CONFIG_VALIDATION_FAILED", CONFIG_VALIDATION_FAILED, "CONFIG_VALIDATION_FAILED"},
		{"CONFIG_NOT_FOUND", CONFIG_NOT_FOUND, "CONFIG_NOT_FOUND"},

		// Store errors
		{"STORE_OPEN_FAILED", STORE_OPEN_FAILED, "STORE_OPEN_FAILED"},
		{"STORE_MIGRATE_FAILED", STORE_MIGRATE_FAILED, "STORE_MIGRATE_FAILED"},
		{"STORE_QUERY_FAILED", STORE_QUERY_FAILED, "STORE_QUERY_FAILED"},

		// Run history errors
		{"RUN_RECORD_FAILED", RUN_RECORD_FAILED, "RUN_RECORD_FAILED"},
		{"RUN_NOT_FOUND", RUN_NOT_FOUND, "RUN_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.code) != tt.expected {
				t.Errorf("ErrorCode = %v, want %v", tt.code, tt.expected)
			}
		})
	}
}

func TestPlanckError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlanckError
		contains []string
	}{
		{
			name: "simple error without cause",
			err:  NewError(CONFIG_LOAD_FAILED, "failed to load configuration"),
			contains: []string{
				"[CONFIG_LOAD_FAILED]",
				"failed to load configuration",
			},
		},
		{
			name: "error with cause",
			err:  WrapError(STORE_QUERY_FAILED, "query execution failed", errors.New("database is locked")),
			contains: []string{
				"[STORE_QUERY_FAILED]",
				"query execution failed",
				"database is locked",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substring := range tt.contains {
				if !strings.Contains(errMsg, substring) {
					t.Errorf("Error() = %v, want to contain %v", errMsg, substring)
				}
			}
		})
	}
}

func TestPlanckError_Unwrap(t *testing.T) {
	tests := []struct {
		name      string
		err       *PlanckError
		wantCause bool
	}{
		{
			name:      "error without cause",
			err:       NewError(CONFIG_PARSE_FAILED, "parse error"),
			wantCause: false,
		},
		{
			name:      "error with cause",
			err:       WrapError(STORE_OPEN_FAILED, "cannot open run store", errors.New("disk full")),
			wantCause: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := tt.err.Unwrap()
			if tt.wantCause && cause == nil {
				t.Error("Unwrap() = nil, want non-nil cause")
			}
			if !tt.wantCause && cause != nil {
				t.Errorf("Unwrap() = %v, want nil", cause)
			}
		})
	}
}

func TestPlanckError_Is(t *testing.T) {
	baseErr := NewError(STORE_QUERY_FAILED, "query failed")
	sameCodeErr := NewError(STORE_QUERY_FAILED, "different message")
	differentCodeErr := NewError(RUN_NOT_FOUND, "run missing")
	standardErr := errors.New("standard error")

	tests := []struct {
		name   string
		err    *PlanckError
		target error
		want   bool
	}{
		{
			name:   "same error code matches",
			err:    baseErr,
			target: sameCodeErr,
			want:   true,
		},
		{
			name:   "different error code does not match",
			err:    baseErr,
			target: differentCodeErr,
			want:   false,
		},
		{
			name:   "standard error does not match",
			err:    baseErr,
			target: standardErr,
			want:   false,
		},
		{
			name:   "wrapped error with same code matches",
			err:    WrapError(STORE_QUERY_FAILED, "wrapped", standardErr),
			target: baseErr,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Is(tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(CONFIG_NOT_FOUND, "no configuration file found")

	if err.Code != CONFIG_NOT_FOUND {
		t.Errorf("Code = %v, want %v", err.Code, CONFIG_NOT_FOUND)
	}
	if err.Message != "no configuration file found" {
		t.Errorf("Message = %v, want %v", err.Message, "no configuration file found")
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrapError(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := WrapError(STORE_MIGRATE_FAILED, "schema migration failed", cause)

	if err.Code != STORE_MIGRATE_FAILED {
		t.Errorf("Code = %v, want %v", err.Code, STORE_MIGRATE_FAILED)
	}
	if err.Message != "schema migration failed" {
		t.Errorf("Message = %v, want %v", err.Message, "schema migration failed")
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestPlanckError_ErrorsIsCompatibility(t *testing.T) {
	// Test that PlanckError works correctly with errors.Is()
	originalErr := errors.New("original error")
	wrappedErr := WrapError(STORE_QUERY_FAILED, "run lookup failed", originalErr)

	// Should be able to unwrap to original error
	if !errors.Is(wrappedErr, originalErr) {
		t.Error("errors.Is() should find wrapped original error")
	}

	// Should match by error code
	sameCodeErr := NewError(STORE_QUERY_FAILED, "different message")
	if !errors.Is(wrappedErr, sameCodeErr) {
		t.Error("errors.Is() should match by error code")
	}

	// Should not match different code
	differentCodeErr := NewError(STORE_OPEN_FAILED, "open failed")
	if errors.Is(wrappedErr, differentCodeErr) {
		t.Error("errors.Is() should not match different error code")
	}
}

func TestPlanckError_ErrorsAsCompatibility(t *testing.T) {
	// Test that PlanckError works correctly with errors.As()
	err := WrapError(RUN_RECORD_FAILED, "insert failed", errors.New("constraint violation"))

	var planckErr *PlanckError
	if !errors.As(err, &planckErr) {
		t.Fatal("errors.As() should extract PlanckError")
	}

	if planckErr.Code != RUN_RECORD_FAILED {
		t.Errorf("extracted Code = %v, want %v", planckErr.Code, RUN_RECORD_FAILED)
	}
	if planckErr.Message != "insert failed" {
		t.Errorf("extracted Message = %v, want %v", planckErr.Message, "insert failed")
	}
}

// Benchmark error creation
func BenchmarkNewError(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewError(CONFIG_LOAD_FAILED, "configuration load failed")
	}
}

func BenchmarkWrapError(b *testing.B) {
	cause := errors.New("underlying error")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WrapError(STORE_QUERY_FAILED, "query failed", cause)
	}
}

func BenchmarkError(b *testing.B) {
	err := WrapError(STORE_OPEN_FAILED, "open failed", errors.New("disk full"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}
