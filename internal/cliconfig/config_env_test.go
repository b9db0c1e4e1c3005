package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("CHEMBAL_LOG_LEVEL", "debug")
	t.Setenv("CHEMBAL_FORMAT", "json")
	t.Setenv("CHEMBAL_DICT", "/env/dict")
	t.Setenv("CHEMBAL_REUSE_LETTERS", "true")
	t.Setenv("CHEMBAL_WATCH_DEBOUNCE", "2s")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" || cfg.Format != "json" || cfg.DictPath != "/env/dict" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.ReuseLetters {
		t.Error("ReuseLetters not applied")
	}
	if cfg.WatchDebounce != 2*time.Second {
		t.Errorf("WatchDebounce = %v, want 2s", cfg.WatchDebounce)
	}
}

func TestApplyEnvConfigRespectsFlags(t *testing.T) {
	t.Setenv("CHEMBAL_FORMAT", "json")

	cfg := DefaultConfig()
	changed := map[string]bool{"format": true}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want flag value preserved", cfg.Format)
	}
}

func TestApplyEnvConfigInvalidDuration(t *testing.T) {
	t.Setenv("CHEMBAL_WATCH_DEBOUNCE", "whenever")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("expected error for invalid duration")
	}
}
