package ui

// introStepMsg advances the intro sequence (1: welcome, 2: help hint,
// 3: fetch startup text).
type introStepMsg int

// StartupLoadedMsg carries the result of fetching the startup text.
type StartupLoadedMsg struct {
	Text string
	Err  error
}

// startupSettledMsg fires one typing delay after the startup reveal ends.
type startupSettledMsg struct{}

// promptArmedMsg arms the prompt after the command list is shown.
type promptArmedMsg struct{}

// clearSettledMsg arms the prompt after the clear notice is typed.
type clearSettledMsg struct{}

// FastForwardMsg reveals the rest of the startup text (Esc).
type FastForwardMsg struct{}

// ClearShortcutMsg clears the terminal from any phase (ctrl+l).
type ClearShortcutMsg struct{}

// ScrollMsg scrolls the scrollback by Lines (negative is up).
type ScrollMsg struct {
	Lines int
}

// PageMsg scrolls the scrollback by one page.
type PageMsg struct {
	Down bool
}

// FocusLinkMsg moves the command-link focus by Delta.
type FocusLinkMsg struct {
	Delta int
}

// SubmitMsg submits a command string. FromLink is set when it came from a
// command link rather than the prompt.
type SubmitMsg struct {
	Command  string
	FromLink bool
}
