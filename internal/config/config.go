// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Sort       SortConfig       `toml:"sort"`
	Duplicates DuplicatesConfig `toml:"duplicates"`
	Compare    CompareConfig    `toml:"compare"`
	Log        LogConfig        `toml:"log"`
	Database   DatabaseConfig   `toml:"database"`
}

type SortConfig struct {
	Source      string `toml:"source"`
	Destination string `toml:"destination"`
	Mode        string `toml:"mode"` // "date" or "type"
}

type DuplicatesConfig struct {
	Action string `toml:"action"` // "skip", "move", or "delete"
}

type CompareConfig struct {
	// VerifyBytes confirms size-equal non-image pairs byte for byte.
	VerifyBytes bool `toml:"verify_bytes"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	// Path of the sqlite history database. Empty disables the store.
	Path string `toml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Sort:       SortConfig{Mode: "date"},
		Duplicates: DuplicatesConfig{Action: "skip"},
		Compare:    CompareConfig{VerifyBytes: true},
		Log:        LogConfig{Path: "duplicates.log", Level: "info"},
	}
}

// Load reads and parses the configuration file, applying defaults for
// absent keys. A missing file is not an error; the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields. Missing source/destination is not
// checked here: dupecheck runs without either.
func (c *Config) Validate() error {
	switch c.Sort.Mode {
	case "date", "type":
	default:
		return fmt.Errorf("invalid sort mode %q (want \"date\" or \"type\")", c.Sort.Mode)
	}

	switch c.Duplicates.Action {
	case "skip", "move", "delete":
	default:
		return fmt.Errorf("invalid duplicates action %q (want \"skip\", \"move\", or \"delete\")", c.Duplicates.Action)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// ValidateSort checks the fields required to run a sort. This is the
// only fatal error class: no work happens without source and destination.
func (c *Config) ValidateSort() error {
	if c.Sort.Source == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.Sort.Destination == "" {
		return fmt.Errorf("destination directory is required")
	}
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
