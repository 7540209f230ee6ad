package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planck-ai/planck/internal/config"
)

// setupTestConfig creates a temporary config file for testing
func setupTestConfig(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `core:
  home_dir: /home/test/.planck
  data_dir: /home/test/.planck/data
  debug: false
planner:
  heuristic: fast-forward
  weight: 1.5
  timeout: 300
  trace_level: 1
  statistics: true
store:
  enabled: true
  path: /home/test/.planck/planck.db
  busy_timeout: 5s
logging:
  level: info
  format: text
tracing:
  enabled: false
  provider: otlp
  service_name: planck
  sample_rate: 1.0
  tls_cert_file: /etc/planck/cert.pem
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err, "Failed to write test config file")

	return configPath
}

func loadTestConfig(t *testing.T, path string) *config.Config {
	t.Helper()

	loader := config.NewConfigLoader(config.NewValidator())
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestGetConfigValue(t *testing.T) {
	cfg := loadTestConfig(t, setupTestConfig(t))

	tests := []struct {
		name          string
		key           string
		expectedValue string
		shouldError   bool
		errorContains string
	}{
		{
			name:          "get string value",
			key:           "planner.heuristic",
			expectedValue: "fast-forward",
		},
		{
			name:          "get int value",
			key:           "planner.timeout",
			expectedValue: "300",
		},
		{
			name:          "get float value",
			key:           "planner.weight",
			expectedValue: "1.5",
		},
		{
			name:          "get bool value",
			key:           "store.enabled",
			expectedValue: "true",
		},
		{
			name:          "get duration value",
			key:           "store.busy_timeout",
			expectedValue: "5s",
		},
		{
			name:          "get abbreviated field",
			key:           "tracing.tls_cert_file",
			expectedValue: "/etc/planck/cert.pem",
		},
		{
			name:          "get invalid key",
			key:           "invalid.key.path",
			shouldError:   true,
			errorContains: "invalid configuration key",
		},
		{
			name:          "get non-existent field",
			key:           "core.nonexistent",
			shouldError:   true,
			errorContains: "invalid configuration key",
		},
		{
			name:          "traverse into non-struct",
			key:           "planner.weight.nested",
			shouldError:   true,
			errorContains: "cannot traverse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := getConfigValue(cfg, tt.key)
			if tt.shouldError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestSetConfigValue(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		value         string
		shouldError   bool
		errorContains string
		check         func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "set string value",
			key:   "planner.heuristic",
			value: "max",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "max", cfg.Planner.Heuristic)
			},
		},
		{
			name:  "set int value",
			key:   "planner.timeout",
			value: "600",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 600, cfg.Planner.Timeout)
			},
		},
		{
			name:  "set float value",
			key:   "planner.weight",
			value: "2.5",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 2.5, cfg.Planner.Weight)
			},
		},
		{
			name:  "set bool value",
			key:   "store.enabled",
			value: "false",
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Store.Enabled)
			},
		},
		{
			name:  "set duration value",
			key:   "store.busy_timeout",
			value: "10s",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 10*time.Second, cfg.Store.BusyTimeout)
			},
		},
		{
			name:  "set bool from yes",
			key:   "core.debug",
			value: "yes",
			check: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.Core.Debug)
			},
		},
		{
			name:          "set invalid int",
			key:           "planner.timeout",
			value:         "not-a-number",
			shouldError:   true,
			errorContains: "invalid integer value",
		},
		{
			name:          "set invalid bool",
			key:           "store.enabled",
			value:         "maybe",
			shouldError:   true,
			errorContains: "invalid boolean value",
		},
		{
			name:          "set invalid duration",
			key:           "store.busy_timeout",
			value:         "fast",
			shouldError:   true,
			errorContains: "invalid duration value",
		},
		{
			name:          "set unknown key",
			key:           "planner.nonexistent",
			value:         "x",
			shouldError:   true,
			errorContains: "invalid configuration key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()

			err := setConfigValue(cfg, tt.key, tt.value)
			if tt.shouldError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSnakeToTitle(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"core", "Core"},
		{"home_dir", "HomeDir"},
		{"trace_level", "TraceLevel"},
		{"busy_timeout", "BusyTimeout"},
		{"sample_rate", "SampleRate"},
		{"tls_cert_file", "TLSCertFile"},
		{"tls_key_file", "TLSKeyFile"},
		{"id", "ID"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, snakeToTitle(tt.in))
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := config.DefaultConfig()
	cfg.Planner.Heuristic = "adjusted-sum"
	cfg.Planner.Timeout = 120
	cfg.Store.Enabled = false

	require.NoError(t, saveConfig(configPath, cfg))

	loaded := loadTestConfig(t, configPath)
	assert.Equal(t, "adjusted-sum", loaded.Planner.Heuristic)
	assert.Equal(t, 120, loaded.Planner.Timeout)
	assert.False(t, loaded.Store.Enabled)
}
