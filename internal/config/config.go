// Package config manages the editor's persistent JSON configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// defaults holds the built-in configuration values. Missing keys in the
// user's file fall back to these.
var defaults = map[string]any{
	"ai_model":          "groq",
	"theme":             "default",
	"auto_save":         false,
	"tab_size":          4,
	"show_line_numbers": true,
	"show_status_bar":   true,
	"log_level":         "info",
}

// Config is a loaded configuration document backed by a JSON file.
type Config struct {
	path string
	raw  []byte
}

// DefaultPath returns the standard config file location under the
// user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".pyedit", "config.json")
	}
	return filepath.Join(home, ".pyedit", "config.json")
}

// Load reads the configuration at path, creating it with defaults when
// it does not exist. Keys absent from the file are filled from defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data = []byte("{}")
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse config %s: invalid JSON", path)
	}
	cfg.raw = data

	// Fill in any missing keys so Get* never misses.
	changed := false
	for key, value := range defaults {
		if !gjson.GetBytes(cfg.raw, key).Exists() {
			updated, err := sjson.SetBytes(cfg.raw, key, value)
			if err != nil {
				return nil, fmt.Errorf("apply default %s: %w", key, err)
			}
			cfg.raw = updated
			changed = true
		}
	}

	if changed || os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Path returns the file path backing this configuration.
func (c *Config) Path() string { return c.path }

// GetString returns the string value for key, or the default when unset.
func (c *Config) GetString(key string) string {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return v.String()
	}
	if d, ok := defaults[key].(string); ok {
		return d
	}
	return ""
}

// GetInt returns the integer value for key, or the default when unset.
func (c *Config) GetInt(key string) int {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return int(v.Int())
	}
	if d, ok := defaults[key].(int); ok {
		return d
	}
	return 0
}

// GetBool returns the boolean value for key, or the default when unset.
func (c *Config) GetBool(key string) bool {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return v.Bool()
	}
	if d, ok := defaults[key].(bool); ok {
		return d
	}
	return false
}

// Set writes a value for key and persists the file.
func (c *Config) Set(key string, value any) error {
	updated, err := sjson.SetBytes(c.raw, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	c.raw = updated
	return c.Save()
}

// Save writes the configuration to disk, pretty-printed.
func (c *Config) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	out := pretty.Pretty(c.raw)
	if err := os.WriteFile(c.path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
