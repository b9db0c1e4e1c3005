package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the CLI's console logger at the configured level.
// Level names are validated by Config.Validate, so parse failures here
// fall back to info.
func NewLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}
