package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.False(t, cfg.LogJournal)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TERMFOLIO_STARTUP_SOURCE", "http://localhost:8080/startup.txt")
	t.Setenv("TERMFOLIO_TYPING_DELAY", "20ms")
	t.Setenv("TERMFOLIO_LOG_LEVEL", "debug")
	t.Setenv("TERMFOLIO_LOG_JOURNAL", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/startup.txt", cfg.StartupSource)
	assert.Equal(t, 20*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.LogJournal)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TERMFOLIO_TYPING_DELAY", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := Config{FetchTimeout: time.Second, LogLevel: "warn"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.LogLevel = "loud"
	assert.ErrorContains(t, bad.Validate(), "loud")

	bad = ok
	bad.TypingDelay = -time.Millisecond
	assert.Error(t, bad.Validate())

	bad = ok
	bad.FetchTimeout = 0
	assert.Error(t, bad.Validate())
}
