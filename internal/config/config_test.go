//nolint:goconst // Test file uses repeated string literals for clarity.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guilhermegouw/cadastro/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("applies defaults to empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{}`)

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error: %v", err)
		}

		if cfg.Validation.MinAge != models.DefaultMinAge {
			t.Errorf("Expected MinAge %d, got %d", models.DefaultMinAge, cfg.Validation.MinAge)
		}
		if cfg.Validation.MaxAge != models.DefaultMaxAge {
			t.Errorf("Expected MaxAge %d, got %d", models.DefaultMaxAge, cfg.Validation.MaxAge)
		}
		if cfg.Validation.RelaxedNames {
			t.Error("Expected RelaxedNames to default to false")
		}
		if cfg.Options.Output != OutputText {
			t.Errorf("Expected output %q, got %q", OutputText, cfg.Options.Output)
		}
	})

	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{
  "validation": {"relaxed_names": true, "min_age": 21, "max_age": 120},
  "options": {"output": "json", "debug": true}
}`)

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error: %v", err)
		}

		if !cfg.Validation.RelaxedNames {
			t.Error("Expected RelaxedNames to be true")
		}
		if cfg.Validation.MinAge != 21 || cfg.Validation.MaxAge != 120 {
			t.Errorf("Expected ages 21-120, got %d-%d", cfg.Validation.MinAge, cfg.Validation.MaxAge)
		}
		if cfg.Options.Output != OutputJSON {
			t.Errorf("Expected output json, got %q", cfg.Options.Output)
		}
		if !cfg.Options.Debug {
			t.Error("Expected Debug to be true")
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{"validation": {"min_age": 21}}`)
		t.Setenv("CADASTRO_MIN_AGE", "16")
		t.Setenv("CADASTRO_RELAXED_NAMES", "true")
		t.Setenv("CADASTRO_OUTPUT", "json")

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error: %v", err)
		}

		if cfg.Validation.MinAge != 16 {
			t.Errorf("Expected MinAge 16 from env, got %d", cfg.Validation.MinAge)
		}
		if !cfg.Validation.RelaxedNames {
			t.Error("Expected RelaxedNames from env")
		}
		if cfg.Options.Output != OutputJSON {
			t.Errorf("Expected output json from env, got %q", cfg.Options.Output)
		}
	})

	t.Run("zero from environment means default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{}`)
		t.Setenv("CADASTRO_MIN_AGE", "0")

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error: %v", err)
		}
		if cfg.Validation.MinAge != models.DefaultMinAge {
			t.Errorf("Expected default MinAge %d, got %d", models.DefaultMinAge, cfg.Validation.MinAge)
		}
	})

	t.Run("dotenv applies to explicit file", func(t *testing.T) {
		if _, ok := os.LookupEnv("CADASTRO_MAX_AGE"); ok {
			t.Skip("CADASTRO_MAX_AGE already set")
		}
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".env"), "CADASTRO_MAX_AGE=99\n")
		path := filepath.Join(dir, "cadastro.json")
		writeFile(t, path, `{}`)
		t.Chdir(dir)
		t.Cleanup(func() { _ = os.Unsetenv("CADASTRO_MAX_AGE") })

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error: %v", err)
		}
		if cfg.Validation.MaxAge != 99 {
			t.Errorf("Expected MaxAge 99 from .env, got %d", cfg.Validation.MaxAge)
		}
	})

	t.Run("malformed environment value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{}`)
		t.Setenv("CADASTRO_MAX_AGE", "old")

		if _, err := LoadFromFile(path); err == nil {
			t.Error("Expected error for non-numeric CADASTRO_MAX_AGE")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
		if !os.IsNotExist(err) {
			t.Errorf("Expected not-exist error, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{not json`)

		if _, err := LoadFromFile(path); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("invalid age range", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{"validation": {"min_age": 50, "max_age": 40}}`)

		_, err := LoadFromFile(path)
		if !errors.Is(err, ErrInvalidAgeRange) {
			t.Errorf("Expected ErrInvalidAgeRange, got %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative min age", mutate: func(c *Config) { c.Validation.MinAge = -1 }, wantErr: ErrInvalidAgeRange},
		{name: "max equals min", mutate: func(c *Config) { c.Validation.MaxAge = c.Validation.MinAge }, wantErr: ErrInvalidAgeRange},
		{name: "unknown output", mutate: func(c *Config) { c.Options.Output = "yaml" }, wantErr: ErrInvalidOutput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			applyDefaults(cfg)
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == nil && err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestMergeConfig(t *testing.T) {
	dst := NewConfig()
	dst.Validation.MinAge = 18
	dst.Options.Output = OutputText

	src := &Config{
		Validation: &ValidationOptions{MinAge: 21, RelaxedNames: true},
		Options:    &Options{Output: OutputJSON},
	}
	mergeConfig(dst, src)

	if dst.Validation.MinAge != 21 {
		t.Errorf("Expected project MinAge to win, got %d", dst.Validation.MinAge)
	}
	if !dst.Validation.RelaxedNames {
		t.Error("Expected RelaxedNames to be merged")
	}
	if dst.Options.Output != OutputJSON {
		t.Errorf("Expected project output to win, got %q", dst.Options.Output)
	}

	t.Run("nil sections in source", func(t *testing.T) {
		dst := NewConfig()
		mergeConfig(dst, &Config{})
		if dst.Validation == nil || dst.Options == nil {
			t.Error("Expected sections to remain initialized")
		}
	})
}

func TestNewValidator(t *testing.T) {
	cfg := NewConfig()
	applyDefaults(cfg)
	cfg.Validation.RelaxedNames = true
	cfg.Validation.MinAge = 21

	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	v := cfg.NewValidator(func() time.Time { return now })

	if v.StrictName {
		t.Error("Expected relaxed names to disable strict mode")
	}
	if v.MinAge != 21 || v.MaxAge != models.DefaultMaxAge {
		t.Errorf("Expected ages 21-%d, got %d-%d", models.DefaultMaxAge, v.MinAge, v.MaxAge)
	}
	if !v.Now().Equal(now) {
		t.Errorf("Expected injected clock, got %v", v.Now())
	}
}

func TestSetConfigField(t *testing.T) {
	t.Run("creates file and preserves other fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sub", "cadastro.json")

		if err := SetConfigField(path, "validation.min_age", 21); err != nil {
			t.Fatalf("SetConfigField() error: %v", err)
		}
		if err := SetConfigField(path, "options.output", "json"); err != nil {
			t.Fatalf("SetConfigField() error: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error: %v", err)
		}
		if cfg.Validation.MinAge != 21 {
			t.Errorf("Expected MinAge 21, got %d", cfg.Validation.MinAge)
		}
		if cfg.Options.Output != OutputJSON {
			t.Errorf("Expected output json, got %q", cfg.Options.Output)
		}
	})

	t.Run("keeps unknown content untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{"comment": "keep me"}`)

		if err := SetConfigField(path, "options.debug", true); err != nil {
			t.Fatalf("SetConfigField() error: %v", err)
		}

		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), "keep me") {
			t.Errorf("Expected unrelated content to survive, got %s", data)
		}
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")

		err := SetConfigField(path, "validation.nope", 1)
		if !errors.Is(err, ErrUnknownKey) {
			t.Errorf("Expected ErrUnknownKey, got %v", err)
		}
	})

	t.Run("rejects invalid resulting config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadastro.json")
		writeFile(t, path, `{}`)

		err := SetConfigField(path, "validation.max_age", 10)
		if !errors.Is(err, ErrInvalidAgeRange) {
			t.Errorf("Expected ErrInvalidAgeRange, got %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != `{}` {
			t.Errorf("Expected file unchanged, got %s", data)
		}
	})
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		key     string
		raw     string
		want    any
		wantErr bool
	}{
		{key: "validation.relaxed_names", raw: "true", want: true},
		{key: "validation.min_age", raw: "21", want: 21},
		{key: "options.output", raw: "json", want: "json"},
		{key: "validation.min_age", raw: "abc", wantErr: true},
		{key: "options.debug", raw: "maybe", wantErr: true},
		{key: "nope", raw: "1", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.raw, func(t *testing.T) {
			got, err := ParseValue(tc.key, tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseValue() = %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cadastro.json")
	cfg := NewConfig()
	cfg.Validation.MinAge = 20
	cfg.Validation.MaxAge = 99

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if loaded.Validation.MinAge != 20 || loaded.Validation.MaxAge != 99 {
		t.Errorf("Expected ages 20-99, got %d-%d", loaded.Validation.MinAge, loaded.Validation.MaxAge)
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != len(settableKeys) {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), len(settableKeys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("Keys() not sorted: %v", keys)
		}
	}
}
