package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and pointers
// for booleans so absent keys are distinguishable from zero values.
type FileConfig struct {
	LogLevel      string `toml:"log_level"`
	Format        string `toml:"format"`
	DictPath      string `toml:"dict_path"`
	ReuseLetters  *bool  `toml:"reuse_letters"`
	WatchDebounce string `toml:"watch_debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path,
// ~/.chembal/config.toml, when the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".chembal", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("dict", fc.DictPath, &cfg.DictPath)
	s.setBool("reuse-letters", fc.ReuseLetters, &cfg.ReuseLetters)

	return s.setDuration("debounce", fc.WatchDebounce, &cfg.WatchDebounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
