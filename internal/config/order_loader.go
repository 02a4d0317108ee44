package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OrderConfig is the per-run order file: credentials plus what to buy.
type OrderConfig struct {
	APIKey    string
	APISecret string
	Pair      string
	Spend     float64
	Validate  bool // dry run unless explicitly disabled
}

// orderFile mirrors the file layout. Pointers distinguish absent keys from
// zero values.
type orderFile struct {
	APIKey    *string  `json:"api_key" yaml:"api_key"`
	APISecret *string  `json:"api_secret" yaml:"api_secret"`
	Pair      *string  `json:"pair" yaml:"pair"`
	Spend     *float64 `json:"spend" yaml:"spend"`
	Validate  *bool    `json:"validate" yaml:"validate"`
}

// ConfigError is a fatal pre-flight problem with the order file.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadOrderConfig reads a JSON (default) or YAML (.yaml/.yml) order file.
// api_key, api_secret, pair and spend are required.
func LoadOrderConfig(path string) (OrderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return OrderConfig{}, &ConfigError{Path: path, Reason: "file not found", Err: err}
		}
		return OrderConfig{}, &ConfigError{Path: path, Reason: "read failed", Err: err}
	}

	var f orderFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return OrderConfig{}, &ConfigError{Path: path, Reason: "not valid YAML", Err: err}
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return OrderConfig{}, &ConfigError{Path: path, Reason: "not valid JSON", Err: err}
		}
	}

	return f.resolve(path)
}

func (f orderFile) resolve(path string) (OrderConfig, error) {
	required := []struct {
		key     string
		present bool
	}{
		{"api_key", f.APIKey != nil},
		{"api_secret", f.APISecret != nil},
		{"pair", f.Pair != nil},
		{"spend", f.Spend != nil},
	}
	for _, r := range required {
		if !r.present {
			return OrderConfig{}, &ConfigError{Path: path, Reason: fmt.Sprintf("missing required key '%s'", r.key)}
		}
	}
	if !(*f.Spend > 0) {
		return OrderConfig{}, &ConfigError{Path: path, Reason: fmt.Sprintf("spend must be positive, got %v", *f.Spend)}
	}

	cfg := OrderConfig{
		APIKey:    *f.APIKey,
		APISecret: *f.APISecret,
		Pair:      *f.Pair,
		Spend:     *f.Spend,
		Validate:  true,
	}
	if f.Validate != nil {
		cfg.Validate = *f.Validate
	}
	return cfg, nil
}
