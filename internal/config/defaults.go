package config

import (
	"path/filepath"
	"time"

	"github.com/planck-ai/planck/internal/observability"
)

// DefaultConfig returns a Config with sensible default values. The planner
// presets mirror the planner package defaults: fast-forward heuristic,
// weight 1.0, 300 second timeout, trace level 1, statistics on.
func DefaultConfig() *Config {
	homeDir := DefaultHomeDir()

	return &Config{
		Core: CoreConfig{
			HomeDir: homeDir,
			DataDir: filepath.Join(homeDir, "data"),
			Debug:   false,
		},
		Planner: PlannerConfig{
			Heuristic:  "fast-forward",
			Weight:     1.0,
			Timeout:    300,
			TraceLevel: 1,
			Statistics: true,
		},
		Store: StoreConfig{
			Enabled:     true,
			Path:        filepath.Join(homeDir, "planck.db"),
			BusyTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: observability.TracingConfig{
			Enabled:     false,
			Provider:    "otlp",
			Endpoint:    "",
			ServiceName: "planck",
			SampleRate:  1.0,
		},
	}
}
