package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/planck-ai/planck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage planck configuration",
	Long: `The config command provides subcommands for viewing, getting, setting,
and validating planck configuration settings.

Configuration is stored in YAML format at ~/.planck/config.yaml by default.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display full configuration",
	Long: `Display the complete planck configuration.

By default, output is in YAML format. Use --output-format json for JSON output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewConfigLoader(config.NewValidator())
		cfg, err := loader.LoadWithDefaults(resolveConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		outputFormat, _ := cmd.Flags().GetString("output-format")
		return printConfig(cmd, cfg, outputFormat)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long: `Get the value of a specific configuration key.

Keys use dot notation to access nested values:
  planck config get planner.heuristic
  planck config get store.path
  planck config get tracing.endpoint`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewConfigLoader(config.NewValidator())
		cfg, err := loader.LoadWithDefaults(resolveConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		value, err := getConfigValue(cfg, args[0])
		if err != nil {
			return err
		}

		cmd.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set the value of a specific configuration key.

Keys use dot notation to access nested values:
  planck config set planner.heuristic max
  planck config set planner.timeout 600
  planck config set store.enabled false

The new configuration is validated before saving.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := resolveConfigPath()
		key, value := args[0], args[1]

		loader := config.NewConfigLoader(config.NewValidator())
		cfg, err := loader.LoadWithDefaults(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := setConfigValue(cfg, key, value); err != nil {
			return err
		}

		if err := config.NewValidator().Validate(cfg); err != nil {
			return fmt.Errorf("validation failed after setting value: %w", err)
		}

		if err := saveConfig(configPath, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		cmd.Printf("Successfully set %s to %s\n", key, value)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the planck configuration file for correctness.

This checks:
  - YAML syntax is valid
  - Values are within acceptable ranges
  - Field types are correct`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := resolveConfigPath()

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("config file does not exist: %s\nRun 'planck config set <key> <value>' to create one", configPath)
		}

		loader := config.NewConfigLoader(config.NewValidator())
		if _, err := loader.Load(configPath); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}

		cmd.Println("Configuration is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configValidateCmd)

	configShowCmd.Flags().String("output-format", "yaml", "Output format (yaml or json)")
}

// printConfig outputs the configuration in the specified format
func printConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	var output []byte
	var err error

	switch strings.ToLower(format) {
	case "json":
		output, err = json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
	case "yaml", "":
		output, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s (use 'yaml' or 'json')", format)
	}

	cmd.Println(string(output))
	return nil
}

// getConfigValue retrieves a value from the config using dot notation
func getConfigValue(cfg *config.Config, key string) (string, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return "", fmt.Errorf("invalid key: %s", key)
	}

	v := reflect.ValueOf(cfg).Elem()
	for i, part := range parts {
		fieldName := snakeToTitle(part)

		field := v.FieldByName(fieldName)
		if !field.IsValid() {
			return "", fmt.Errorf("invalid configuration key: %s (at position: %s)", key, part)
		}

		if i == len(parts)-1 {
			return formatValue(field), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return "", fmt.Errorf("cannot traverse into non-struct field: %s", part)
		}
	}

	return "", fmt.Errorf("failed to get value for key: %s", key)
}

// setConfigValue sets a value in the config using dot notation
func setConfigValue(cfg *config.Config, key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return fmt.Errorf("invalid key: %s", key)
	}

	v := reflect.ValueOf(cfg).Elem()
	for i, part := range parts {
		fieldName := snakeToTitle(part)

		field := v.FieldByName(fieldName)
		if !field.IsValid() {
			return fmt.Errorf("invalid configuration key: %s (at position: %s)", key, part)
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", part)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("cannot traverse into non-struct field: %s", part)
		}
	}

	return fmt.Errorf("failed to set value for key: %s", key)
}

// formatValue converts a reflect.Value to a string representation
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == reflect.TypeOf(time.Duration(0)) {
			return time.Duration(v.Int()).String()
		}
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// setFieldValue sets a reflect.Value from a string
func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration value: %s (use a duration like '5s' or '1m')", value)
			}
			field.SetInt(int64(d))
			return nil
		}
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value: %s", value)
		}
		field.SetInt(intVal)
		return nil
	case reflect.Float64:
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value: %s", value)
		}
		field.SetFloat(floatVal)
		return nil
	case reflect.Bool:
		// Parse boolean values explicitly (don't rely on Sscanf as it's too permissive)
		switch strings.ToLower(value) {
		case "true", "yes", "1":
			field.SetBool(true)
		case "false", "no", "0":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		return nil
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type())
	}
}

// snakeToTitle converts snake_case to TitleCase
// Special handling for common abbreviations (TLS, ID, URL)
func snakeToTitle(s string) string {
	specialCases := map[string]string{
		"tls": "TLS",
		"id":  "ID",
		"url": "URL",
	}

	if title, ok := specialCases[strings.ToLower(s)]; ok {
		return title
	}

	parts := strings.Split(s, "_")
	for i, part := range parts {
		if len(part) > 0 {
			if title, ok := specialCases[strings.ToLower(part)]; ok {
				parts[i] = title
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "")
}

// saveConfig saves the configuration to a file
func saveConfig(path string, cfg *config.Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
