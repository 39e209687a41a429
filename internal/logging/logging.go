// Package logging builds the slog logger for termfolio binaries.
//
// The terminal owns stdout, so records go to a log file and, optionally, to
// the systemd journal. With neither configured the logger discards.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"termfolio/internal/config"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// New returns a logger for cfg and a closer for any file it opened.
func New(cfg config.Config) (*slog.Logger, io.Closer, error) {
	return build(cfg, nil)
}

// NewWithWriter is New with an extra text sink, used by the content server
// to log to stderr.
func NewWithWriter(cfg config.Config, w io.Writer) (*slog.Logger, io.Closer, error) {
	return build(cfg, w)
}

func build(cfg config.Config, extra io.Writer) (*slog.Logger, io.Closer, error) {
	level := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if extra != nil {
		handlers = append(handlers, slog.NewTextHandler(extra, opts))
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = f
		handlers = append(handlers, slog.NewTextHandler(f, opts))
	}

	if cfg.LogJournal {
		jh, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return JournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = JournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			_ = closer.Close()
			return nil, nil, fmt.Errorf("open journal: %w", err)
		}
		handlers = append(handlers, jh)
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// JournalKey converts an attribute key to a journal field name: upper case,
// with anything outside [A-Z0-9] replaced by '_'.
func JournalKey(key string) string {
	key = strings.ToUpper(key)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, key)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
