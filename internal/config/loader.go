package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thruflo/tapeworm/internal/interp"
	"github.com/thruflo/tapeworm/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultTapeSize = interp.DefaultTapeSize
	DefaultEOF      = "error"
	DefaultLogLevel = "warn"
)

// Dir and File locate the project config relative to a base path.
const (
	Dir  = ".tapeworm"
	File = "config.yaml"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Tape:  TapeConfig{Size: DefaultTapeSize},
		Input: InputConfig{EOF: DefaultEOF},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads .tapeworm/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
func LoadConfig(basePath string) (*Config, error) {
	cfg, err := LoadConfigFile(filepath.Join(basePath, Dir, File))
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// LoadConfigFile reads and validates the config file at path, applying
// defaults for any missing fields. A missing file is an error.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Tape.Size <= 0 {
		return ValidationError{Field: "tape.size", Message: "must be positive"}
	}
	if _, err := interp.ParseEOFPolicy(cfg.Input.EOF); err != nil {
		return ValidationError{Field: "input.eof", Message: err.Error()}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// Options converts a validated Config into interpreter options. I/O and
// logger fields are left for the caller.
func (c *Config) Options() (interp.Options, error) {
	policy, err := interp.ParseEOFPolicy(c.Input.EOF)
	if err != nil {
		return interp.Options{}, ValidationError{Field: "input.eof", Message: err.Error()}
	}
	return interp.Options{
		TapeSize: c.Tape.Size,
		EOF:      policy,
		MaxSteps: c.Limits.MaxSteps,
	}, nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
