package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/guilhermegouw/cadastro/internal/models"
)

const configFileName = "cadastro.json"

// Load finds and loads configuration from standard locations.
// It merges global config with project config (project takes precedence),
// then applies environment overrides and defaults.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(GlobalConfigPath(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	if projectPath := findProjectConfig(); projectPath != "" {
		projectCfg := NewConfig()
		if err := loadFile(projectPath, projectCfg); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
		mergeConfig(cfg, projectCfg)
	}

	return finish(cfg)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// Default returns the configuration used when no file exists, with
// environment overrides applied. config init writes it out.
func Default() (*Config, error) {
	return finish(NewConfig())
}

// finish applies CADASTRO_* overrides (an optional .env in the working
// directory is loaded first), then fills zero values with defaults.
func finish(cfg *Config) (*Config, error) {
	ensureSections(cfg)

	// A missing .env is fine.
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	//nolint:gosec // G304: Path is from trusted config locations or an explicit flag.
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		hiddenPath := filepath.Join(dir, "."+configFileName)
		if _, err := os.Stat(hiddenPath); err == nil {
			return hiddenPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func mergeConfig(dst, src *Config) {
	ensureSections(dst)

	if v := src.Validation; v != nil {
		if v.RelaxedNames {
			dst.Validation.RelaxedNames = true
		}
		if v.MinAge != 0 {
			dst.Validation.MinAge = v.MinAge
		}
		if v.MaxAge != 0 {
			dst.Validation.MaxAge = v.MaxAge
		}
	}

	if o := src.Options; o != nil {
		if o.Output != "" {
			dst.Options.Output = o.Output
		}
		if o.DataDir != "" {
			dst.Options.DataDir = o.DataDir
		}
		if o.Debug {
			dst.Options.Debug = true
		}
	}
}

func ensureSections(cfg *Config) {
	if cfg.Validation == nil {
		cfg.Validation = &ValidationOptions{}
	}
	if cfg.Options == nil {
		cfg.Options = &Options{}
	}
}

func applyDefaults(cfg *Config) {
	ensureSections(cfg)
	if cfg.Validation.MinAge == 0 {
		cfg.Validation.MinAge = models.DefaultMinAge
	}
	if cfg.Validation.MaxAge == 0 {
		cfg.Validation.MaxAge = models.DefaultMaxAge
	}
	if cfg.Options.Output == "" {
		cfg.Options.Output = OutputText
	}
}

// applyEnv overrides fields whose CADASTRO_* variable is set.
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg.Validation); err != nil {
		return fmt.Errorf("parsing validation environment: %w", err)
	}
	if err := env.Parse(cfg.Options); err != nil {
		return fmt.Errorf("parsing options environment: %w", err)
	}
	return nil
}
