package cliconfig

import (
	"os"
	"strconv"
)

// ApplyEnvConfig applies configuration from environment variables
// (CHEMBAL_*). Environment values override the config file but are
// overridden by explicitly set flags (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("CHEMBAL_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("format", os.Getenv("CHEMBAL_FORMAT"), &cfg.Format)
	s.setString("dict", os.Getenv("CHEMBAL_DICT"), &cfg.DictPath)

	if v := os.Getenv("CHEMBAL_REUSE_LETTERS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.setBool("reuse-letters", &b, &cfg.ReuseLetters)
		}
	}

	return s.setDuration("debounce", os.Getenv("CHEMBAL_WATCH_DEBOUNCE"), &cfg.WatchDebounce)
}
