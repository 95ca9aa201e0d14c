// Package config provides configuration management for the cadastro CLI.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/guilhermegouw/cadastro/internal/models"
)

const appName = "cadastro"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Configuration errors.
var (
	ErrInvalidAgeRange = errors.New("invalid age range")
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrUnknownKey      = errors.New("unknown config key")
)

// Config is the top-level configuration structure.
type Config struct {
	Validation *ValidationOptions `json:"validation,omitempty"`
	Options    *Options           `json:"options,omitempty"`
}

// ValidationOptions tunes the validation rules.
type ValidationOptions struct {
	// RelaxedNames accepts names containing a double space.
	RelaxedNames bool `json:"relaxed_names,omitempty" env:"CADASTRO_RELAXED_NAMES"`

	// MinAge and MaxAge bound the accepted age in years, both inclusive.
	MinAge int `json:"min_age,omitempty" env:"CADASTRO_MIN_AGE"`
	MaxAge int `json:"max_age,omitempty" env:"CADASTRO_MAX_AGE"`
}

// Options holds optional CLI settings.
//
//nolint:govet // Field order is intentional for JSON readability.
type Options struct {
	Output  string `json:"output,omitempty" env:"CADASTRO_OUTPUT"`
	DataDir string `json:"data_directory,omitempty" env:"CADASTRO_DATA_DIR"`
	Debug   bool   `json:"debug,omitempty" env:"CADASTRO_DEBUG"`
}

// NewConfig creates a new Config with initialized sections.
func NewConfig() *Config {
	return &Config{
		Validation: &ValidationOptions{},
		Options:    &Options{},
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	v := c.Validation
	if v.MinAge < 0 {
		return fmt.Errorf("%w: min_age %d is negative", ErrInvalidAgeRange, v.MinAge)
	}
	if v.MaxAge <= v.MinAge {
		return fmt.Errorf("%w: max_age %d must be greater than min_age %d", ErrInvalidAgeRange, v.MaxAge, v.MinAge)
	}

	switch c.Options.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidOutput, c.Options.Output, OutputText, OutputJSON)
	}

	return nil
}

// NewValidator builds a validator from the validation options. A nil clock
// means the system clock.
func (c *Config) NewValidator(now func() time.Time) *models.Validator {
	opts := []models.Option{
		models.WithStrictName(!c.Validation.RelaxedNames),
		models.WithAgeRange(c.Validation.MinAge, c.Validation.MaxAge),
	}
	if now != nil {
		opts = append(opts, models.WithClock(now))
	}
	return models.NewValidator(opts...)
}

// DataDir returns the data directory path from configuration.
func (c *Config) DataDir() string {
	if c.Options != nil && c.Options.DataDir != "" {
		return c.Options.DataDir
	}
	return filepath.Join(xdg.DataHome, appName)
}

// DebugLogPath returns the path of the debug log file.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.DataDir(), "debug.log")
}

// GlobalConfigPath returns the path of the user's config file.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}
