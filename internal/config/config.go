// Package config loads termfolio settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the terminal and the content server.
type Config struct {
	// StartupSource is an http(s) URL, a file path, or "" for the content
	// dir / embedded startup text.
	StartupSource string        `env:"TERMFOLIO_STARTUP_SOURCE"`
	ContentDir    string        `env:"TERMFOLIO_CONTENT_DIR"`
	TypingDelay   time.Duration `env:"TERMFOLIO_TYPING_DELAY" envDefault:"8ms"`
	FetchTimeout  time.Duration `env:"TERMFOLIO_FETCH_TIMEOUT" envDefault:"5s"`

	LogFile    string `env:"TERMFOLIO_LOG_FILE"`
	LogLevel   string `env:"TERMFOLIO_LOG_LEVEL" envDefault:"info"`
	LogJournal bool   `env:"TERMFOLIO_LOG_JOURNAL"`

	Addr string `env:"TERMFOLIO_ADDR" envDefault:":8080"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the terminal cannot work with.
func (c Config) Validate() error {
	if c.TypingDelay < 0 {
		return fmt.Errorf("typing delay must not be negative, got %s", c.TypingDelay)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level. Validate has already checked it.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
