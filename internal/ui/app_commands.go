package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	introFirstDelay  = 250 * time.Millisecond
	introLineDelay   = 500 * time.Millisecond
	commandListDelay = 400 * time.Millisecond
	// clearDelayFactor slows the clear notice relative to the startup text.
	clearDelayFactor = 4
)

// StartupLoader fetches the startup text. content.Loader implements it.
type StartupLoader interface {
	Load(ctx context.Context) (string, error)
}

// StartupLoaderFunc adapts a function to StartupLoader.
type StartupLoaderFunc func(ctx context.Context) (string, error)

// Load implements StartupLoader.
func (f StartupLoaderFunc) Load(ctx context.Context) (string, error) { return f(ctx) }

// loadStartupCmd returns a command that fetches the startup text once.
func loadStartupCmd(l StartupLoader) tea.Cmd {
	return func() tea.Msg {
		if l == nil {
			return StartupLoadedMsg{}
		}
		text, err := l.Load(context.Background())
		return StartupLoadedMsg{Text: text, Err: err}
	}
}

// after returns a command that delivers msg after d.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// msgCmd returns a command that delivers msg immediately.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
