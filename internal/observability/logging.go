package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// RunLogger is a structured logger with automatic trace correlation.
// It wraps slog.Logger and adds run context and OpenTelemetry trace correlation.
type RunLogger struct {
	logger  *slog.Logger
	runID   string
	planner string
}

// NewRunLogger creates a new RunLogger with the specified handler and context.
// The logger automatically correlates logs with distributed traces and includes
// the run identifier and planner name in every log entry.
//
// Parameters:
//   - handler: The slog.Handler to use for formatting and outputting logs
//   - runID: The unique identifier for the current planning run
//   - planner: The name of the planner producing logs
//
// Returns:
//   - *RunLogger: A configured logger ready for use
func NewRunLogger(handler slog.Handler, runID, planner string) *RunLogger {
	return &RunLogger{
		logger:  slog.New(handler),
		runID:   runID,
		planner: planner,
	}
}

// Debug logs a debug-level message with automatic trace correlation.
func (l *RunLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Debug(msg, args...)
}

// Info logs an info-level message with automatic trace correlation.
func (l *RunLogger) Info(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Info(msg, args...)
}

// Warn logs a warning-level message with automatic trace correlation.
func (l *RunLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Warn(msg, args...)
}

// Error logs an error-level message with automatic trace correlation.
func (l *RunLogger) Error(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Error(msg, args...)
}

// WithContext creates a new slog.Logger with trace correlation fields added.
// Extracts trace_id and span_id from the OpenTelemetry span in the context
// and adds run_id and planner to every log entry.
//
// Parameters:
//   - ctx: Context containing OpenTelemetry span for trace correlation
//
// Returns:
//   - *slog.Logger: A logger with trace correlation fields
func (l *RunLogger) WithContext(ctx context.Context) *slog.Logger {
	logger := l.logger

	// Add run context
	logger = logger.With(
		slog.String("run_id", l.runID),
		slog.String("planner", l.planner),
	)

	// Extract trace context from OpenTelemetry
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		spanCtx := span.SpanContext()
		logger = logger.With(
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		)
	}

	return logger
}

// NewJSONHandler creates a new JSON log handler with the specified output and level.
// JSON format is ideal for structured logging in production environments.
//
// Parameters:
//   - w: The writer to output logs to (e.g., os.Stdout, file)
//   - level: The minimum log level to output
//
// Returns:
//   - slog.Handler: A configured JSON handler
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// NewTextHandler creates a new text log handler with the specified output and level.
// Text format is human-readable and useful for development and debugging.
//
// Parameters:
//   - w: The writer to output logs to (e.g., os.Stdout, file)
//   - level: The minimum log level to output
//
// Returns:
//   - slog.Handler: A configured text handler
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// LevelFromTrace maps a planner trace level to a slog level.
// Level 0 silences all output, level 1 logs the plan and search statistics,
// and levels 2 and above enable increasingly verbose debug logging.
func LevelFromTrace(traceLevel int) slog.Level {
	switch {
	case traceLevel <= 0:
		// Above every standard level, so nothing is emitted.
		return slog.LevelError + 4
	case traceLevel == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
