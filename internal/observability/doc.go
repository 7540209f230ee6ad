// Package observability provides tracing and logging infrastructure for planck.
//
// This package implements OpenTelemetry-based distributed tracing and structured
// logging with automatic trace correlation for planning runs. It follows
// OpenTelemetry standards to provide vendor-neutral observability.
//
// # Distributed Tracing
//
// Distributed tracing gives end-to-end visibility into a planning run, from
// problem encoding through heuristic search to plan extraction.
//
// Initialize tracing with InitTracing:
//
//	cfg := TracingConfig{
//	    Enabled:     true,
//	    Provider:    "otlp",
//	    Endpoint:    "localhost:4317",
//	    ServiceName: "planck",
//	    SampleRate:  1.0,
//	}
//
//	tp, err := InitTracing(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ShutdownTracing(ctx, tp)
//
// Supported tracing providers:
//
//   - "otlp": OpenTelemetry Protocol (gRPC) - production standard
//   - "noop": No-op provider for testing - zero overhead
//
// Standard planck span names:
//
//   - "planck.parse": Domain and problem parsing
//   - "planck.encode": Grounding into the planning representation
//   - "planck.search": Heuristic search for a plan
//
// Planner attributes recorded on spans:
//
//	span.SetAttributes(
//	    attribute.String("planck.heuristic", "fast-forward"),
//	    attribute.Float64("planck.weight", 1.0),
//	    attribute.Int64("planck.timeout_ms", 300000),
//	    attribute.Bool("planck.plan_found", true),
//	    attribute.Int("planck.plan_size", 6),
//	)
//
// # Structured Logging
//
// RunLogger provides structured logging with automatic trace correlation:
//
//	handler := NewJSONHandler(os.Stdout, slog.LevelInfo)
//	logger := NewRunLogger(handler, runID, "hsp")
//
//	// Logs automatically include trace_id, span_id, run_id, and planner
//	logger.Info(ctx, "starting search",
//	    slog.String("heuristic", "fast-forward"),
//	    slog.Int("timeout_ms", 300000),
//	)
//
// The planner trace level maps onto slog levels through LevelFromTrace:
//
//   - 0: Nothing is logged
//   - 1: Plan and search statistics (info)
//   - 2+: Increasingly verbose debug output
//
// # Error Handling
//
// The package defines structured errors for observability failures:
//
//   - ErrExporterConnection: Failed to connect to the trace exporter
//   - ErrShutdownTimeout: Timeout during graceful shutdown
//
// Use error wrapping to preserve context:
//
//	if err != nil {
//	    return WrapObservabilityError(ErrExporterConnection,
//	        "failed to export traces", err)
//	}
package observability
