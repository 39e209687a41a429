package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// LoadError is returned when the startup text cannot be loaded. It is
// recovered locally by showing Message() in place of the text.
type LoadError struct {
	Source string
	Status int // HTTP status for non-success responses, 0 otherwise
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load startup text from %q: %s", e.Source, e.reason())
}

func (e *LoadError) Unwrap() error { return e.Err }

// Message is the single line shown to the user in place of the startup text.
func (e *LoadError) Message() string {
	return fmt.Sprintf("Error: failed to load startup text (%s).", e.reason())
}

func (e *LoadError) reason() string {
	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Loader fetches the startup text once per session.
//
// Source selects where the text comes from: an http(s) URL, a file path, or
// "" for the store (content dir override, then embedded default).
type Loader struct {
	Source  string
	Store   *Store
	Client  *http.Client
	Timeout time.Duration
}

// Load returns the startup text. Failures are always *LoadError; there are
// no retries.
func (l *Loader) Load(ctx context.Context) (string, error) {
	switch {
	case l.Source == "":
		text, err := l.store().StartupText()
		if err != nil {
			return "", &LoadError{Source: l.store().BaseDir(), Err: err}
		}
		return text, nil
	case strings.HasPrefix(l.Source, "http://"), strings.HasPrefix(l.Source, "https://"):
		return l.fetch(ctx)
	default:
		b, err := os.ReadFile(l.Source)
		if err != nil {
			return "", &LoadError{Source: l.Source, Err: err}
		}
		return string(b), nil
	}
}

func (l *Loader) fetch(ctx context.Context) (string, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return "", &LoadError{Source: l.Source, Err: err}
	}
	req.Header.Set("Cache-Control", "no-store")
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &LoadError{Source: l.Source, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &LoadError{Source: l.Source, Status: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &LoadError{Source: l.Source, Err: err}
	}
	return string(b), nil
}

func (l *Loader) store() *Store {
	if l.Store == nil {
		return NewStore("")
	}
	return l.Store
}
