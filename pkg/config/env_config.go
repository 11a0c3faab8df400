// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names for runtime configuration.
const (
	EnvLogLevel     = "PHYS_LOG_LEVEL"
	EnvScenarioPath = "PHYS_SCENARIO_PATH"
	EnvTolerance    = "PHYS_TOLERANCE"
	EnvOutput       = "PHYS_OUTPUT"
)

// Output modes accepted by PHYS_OUTPUT.
const (
	OutputTerminal = "terminal"
	OutputQuiet    = "quiet"
)

// EnvironmentConfig holds runtime settings taken from environment
// variables.
type EnvironmentConfig struct {
	LogLevel     string
	ScenarioPath string
	Tolerance    float64
	Output       string
}

// LoadEnvironmentConfig reads the PHYS_* environment variables, applying
// defaults for unset values.
func LoadEnvironmentConfig() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		LogLevel:     getEnvString(EnvLogLevel, "INFO"),
		ScenarioPath: getEnvString(EnvScenarioPath, ""),
		Output:       getEnvString(EnvOutput, OutputTerminal),
	}

	tolerance, err := getEnvFloat(EnvTolerance, DefaultTolerance)
	if err != nil {
		return nil, err
	}
	cfg.Tolerance = tolerance

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *EnvironmentConfig) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.Output != OutputTerminal && c.Output != OutputQuiet {
		return fmt.Errorf("output must be %q or %q, got %q",
			OutputTerminal, OutputQuiet, c.Output)
	}
	return nil
}

// getEnvString returns the value of the environment variable or the
// default if unset.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat returns the parsed float value of the environment variable
// or the default if unset.
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return parsed, nil
}
