// Package config provides reading and writing of lined configuration.
// Supports both global (~/.lined/config.yaml) and local (.lined/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.lined/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .lined/config.yaml
	ScopeLocal
)

// Author identifies who is editing, for audit log attribution.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// History holds undo/redo configuration.
type History struct {
	Capacity *int `yaml:"capacity,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxLineLength *int `yaml:"max_line_length,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultHistoryCapacity = 3
	DefaultMaxLineLength   = 10 * 1024 * 1024 // 10 MB
)

// Validation bounds for configuration values.
const (
	MinHistoryCapacity = 1
	MaxHistoryCapacity = 1000
	MinMaxLineLength   = 1
	MaxMaxLineLength   = 1024 * 1024 * 1024 // 1 GB
)

// Config contains configuration for lined.
type Config struct {
	Author  Author  `yaml:"author,omitempty"`
	History History `yaml:"history,omitempty"`
	Limits  Limits  `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.History.Capacity != nil {
		v := *c.History.Capacity
		if v < MinHistoryCapacity || v > MaxHistoryCapacity {
			return fmt.Errorf("%w: history.capacity must be between %d and %d, got %d",
				ErrInvalidValue, MinHistoryCapacity, MaxHistoryCapacity, v)
		}
	}
	if c.Limits.MaxLineLength != nil {
		v := *c.Limits.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	return nil
}

// HistoryCapacity returns how many buffer states undo keeps (defaults to 3).
func (c *Config) HistoryCapacity() int {
	if c.History.Capacity == nil {
		return DefaultHistoryCapacity
	}
	return *c.History.Capacity
}

// MaxLineLength returns the longest line load will accept (defaults to 10 MB).
func (c *Config) MaxLineLength() int {
	if c.Limits.MaxLineLength == nil {
		return DefaultMaxLineLength
	}
	return *c.Limits.MaxLineLength
}

// LocalPath returns the path to the local (working directory) config file.
func LocalPath() string {
	return filepath.Join(".lined", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.lined/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lined", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
