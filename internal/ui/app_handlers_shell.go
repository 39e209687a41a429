package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/shell"
	"termfolio/internal/typing"
)

const (
	sourcePrompt   = "prompt"
	sourceLink     = "link"
	sourceShortcut = "shortcut"
)

// handleEnter fast-forwards the startup reveal, or submits the focused link
// or the prompt contents.
func (a *AppModel) handleEnter() tea.Cmd {
	switch a.Mode {
	case ModeStartup:
		return a.fastForwardStartup()
	case ModePrompt:
		if a.linkFocus >= 0 && a.linkFocus < len(a.layout.links) {
			return a.submit(a.layout.links[a.linkFocus], true)
		}
		return a.submit(a.Input.Value(), false)
	}
	return nil
}

// submit is the single path for typed commands and activated links. Links
// work during startup and fast-forward the reveal first; typed input is
// only accepted once the prompt is armed.
func (a *AppModel) submit(line string, fromLink bool) tea.Cmd {
	source := sourcePrompt
	if fromLink {
		source = sourceLink
	}
	return a.run(line, source)
}

func (a *AppModel) run(line, source string) tea.Cmd {
	if a.Mode == ModeClearing {
		return nil
	}
	if source == sourcePrompt && a.Mode != ModePrompt {
		return nil
	}

	var cmds []tea.Cmd
	if a.Mode == ModeStartup {
		cmds = append(cmds, a.fastForwardStartup())
		if line == shell.CmdHelp {
			a.helpClickedEarly = true
		}
	}

	outcome := a.dispatch(line, source)
	a.Input.Reset()
	a.linkFocus = -1
	if outcome.Kind == shell.OutcomeCleared {
		cmds = append(cmds, a.startClear())
	}
	a.refresh(true)
	return tea.Batch(cmds...)
}

// handleClearShortcut clears from the prompt or from startup.
func (a *AppModel) handleClearShortcut() tea.Cmd {
	if a.Mode == ModeStartup {
		a.helpClickedEarly = true
	}
	return a.run(shell.CmdClear, sourceShortcut)
}

// startClear types the clear notice at a slower pace with the rest of the
// screen hidden; the prompt returns once it is done.
func (a *AppModel) startClear() tea.Cmd {
	if a.startup == nil {
		a.startupDiscarded = true
	}
	a.Mode = ModeClearing
	a.Input.Blur()
	a.clearing = typing.New(shell.ClearedMessage, a.delay*clearDelayFactor)
	return a.clearing.Start()
}
