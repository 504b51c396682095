// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "history.capacity").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"history.capacity",
		"limits.max_line_length",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "history.capacity":
		return strconv.Itoa(c.HistoryCapacity()), nil
	case "limits.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "history.capacity":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < MinHistoryCapacity || n > MaxHistoryCapacity {
			return fmt.Errorf("%w: history.capacity must be an integer between %d and %d",
				ErrInvalidValue, MinHistoryCapacity, MaxHistoryCapacity)
		}
		c.History.Capacity = &n
	case "limits.max_line_length":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < MinMaxLineLength || n > MaxMaxLineLength {
			return fmt.Errorf("%w: limits.max_line_length must be an integer between %d and %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength)
		}
		c.Limits.MaxLineLength = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":            c.Author.Name,
		"author.email":           c.Author.Email,
		"history.capacity":       strconv.Itoa(c.HistoryCapacity()),
		"limits.max_line_length": strconv.Itoa(c.MaxLineLength()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "history.capacity":
		return c.History.Capacity != nil
	case "limits.max_line_length":
		return c.Limits.MaxLineLength != nil
	default:
		return false
	}
}
