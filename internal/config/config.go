package config

import (
	"time"

	"github.com/planck-ai/planck/internal/observability"
)

// Config is the root configuration for the planck CLI shell. It covers the
// ambient concerns of a run (directories, run history, logging, tracing) and
// the planner presets applied before command line arguments; the argument
// contract itself lives in the planner package.
type Config struct {
	Core    CoreConfig                  `mapstructure:"core" yaml:"core" validate:"required"`
	Planner PlannerConfig               `mapstructure:"planner" yaml:"planner" validate:"required"`
	Store   StoreConfig                 `mapstructure:"store" yaml:"store"`
	Logging LoggingConfig               `mapstructure:"logging" yaml:"logging"`
	Tracing observability.TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// CoreConfig contains core application settings.
type CoreConfig struct {
	HomeDir string `mapstructure:"home_dir" yaml:"home_dir"`
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	Debug   bool   `mapstructure:"debug" yaml:"debug"`
}

// PlannerConfig contains the planner presets applied before command line
// arguments. Timeout is in whole seconds, like the -t flag.
type PlannerConfig struct {
	Heuristic  string  `mapstructure:"heuristic" yaml:"heuristic"`
	Weight     float64 `mapstructure:"weight" yaml:"weight" validate:"min=0"`
	Timeout    int     `mapstructure:"timeout" yaml:"timeout" validate:"min=0"`
	TraceLevel int     `mapstructure:"trace_level" yaml:"trace_level" validate:"min=0"`
	Statistics bool    `mapstructure:"statistics" yaml:"statistics"`
}

// StoreConfig contains run history storage configuration.
type StoreConfig struct {
	Enabled     bool          `mapstructure:"enabled" yaml:"enabled"`
	Path        string        `mapstructure:"path" yaml:"path"`
	BusyTimeout time.Duration `mapstructure:"busy_timeout" yaml:"busy_timeout" validate:"min=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=json text"`
}
