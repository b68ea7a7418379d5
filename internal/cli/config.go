package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/utilmind/mysqlstrip/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfigFile is the config file looked up when --config is not given
const DefaultConfigFile = ".mysqlstrip.yaml"

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Threshold: 80000,
	Buffered:  false,
	Quiet:     false,
	Verbose:   false,
}

// LoadConfigFile merges values from a YAML config file into c. When
// path is empty the default file is used if present; a missing default
// file is not an error, a missing explicit file is.
func LoadConfigFile(c *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, threshold uint64, buffered, quiet, verbose bool) {
	if threshold != 0 {
		c.Threshold = threshold
	}
	if buffered {
		c.Buffered = true
	}
	if quiet {
		c.Quiet = true
	}
	if verbose {
		c.Verbose = true
	}
}
