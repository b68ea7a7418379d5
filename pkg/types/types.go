package types

import "fmt"

// Config holds runtime configuration combining flags, config file values, and defaults
type Config struct {
	// Transform
	Threshold uint64 `yaml:"threshold"` // versioned comments below this are unwrapped
	Buffered  bool   `yaml:"buffered"`  // read the whole input into memory before transforming

	// Output
	Quiet   bool `yaml:"quiet"`   // suppress progress reporting on stderr
	Verbose bool `yaml:"verbose"` // enable debug logging
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Threshold == 0 {
		return NewConfigError("threshold", "must be greater than zero")
	}
	return nil
}
