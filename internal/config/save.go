package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tidwall/sjson"
)

type keyType int

const (
	keyBool keyType = iota
	keyInt
	keyString
)

// settableKeys lists the JSON paths accepted by SetConfigField.
var settableKeys = map[string]keyType{
	"validation.relaxed_names": keyBool,
	"validation.min_age":       keyInt,
	"validation.max_age":       keyInt,
	"options.output":           keyString,
	"options.data_directory":   keyString,
	"options.debug":            keyBool,
}

// Keys returns the settable config keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseValue converts a command-line value to the type expected by key.
func ParseValue(key, raw string) (any, error) {
	kt, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	switch kt {
	case keyBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		return b, nil
	case keyInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		return n, nil
	default:
		return raw, nil
	}
}

// Save writes the configuration to the global config file.
func Save(cfg *Config) error {
	return SaveToFile(cfg, GlobalConfigPath())
}

// SaveToFile writes the configuration to a specific file path.
func SaveToFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SetField updates a single field in the global config file.
func SetField(key string, value any) error {
	return SetConfigField(GlobalConfigPath(), key, value)
}

// SetConfigField updates a single field in the config file at path using
// JSON path notation. This uses sjson for surgical updates: only the
// specified field is modified and unrelated content is preserved.
func SetConfigField(path, key string, value any) error {
	if _, ok := settableKeys[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	//nolint:gosec // G304: path is the trusted config file location.
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading config file: %w", err)
		}
		data = []byte("{}")
	}

	newData, err := sjson.SetBytes(data, key, value)
	if err != nil {
		return fmt.Errorf("setting config field %q: %w", key, err)
	}

	// Reject values that would leave the file unloadable.
	check := NewConfig()
	if err := json.Unmarshal(newData, check); err != nil {
		return fmt.Errorf("parsing updated config: %w", err)
	}
	applyDefaults(check)
	if err := check.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, newData, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
