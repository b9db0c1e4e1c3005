// Package cliconfig holds the CLI configuration for chembal and the
// file/env/flag precedence machinery around it.
package cliconfig

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration for chembal.
type Config struct {
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string

	// Format selects the output rendering: text or json.
	Format string

	// DictPath is the dictionary file for the words command.
	DictPath string

	// ReuseLetters lets the words command use each letter more than once.
	ReuseLetters bool

	// WatchDebounce is the delay between a watched-file event and the
	// batch re-run.
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		Format:        FormatText,
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}

	if c.WatchDebounce <= 0 {
		c.WatchDebounce = 100 * time.Millisecond
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value if present and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
