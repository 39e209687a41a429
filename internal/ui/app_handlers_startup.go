package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/shell"
	"termfolio/internal/typing"
)

const (
	welcomeLine = "Welcome!"
	helpHint    = "Type [help](cmd:help) to see available commands."
)

// handleIntroStep appends the intro lines, then starts the fetch. A clear
// before the fetch ends the sequence.
func (a *AppModel) handleIntroStep(step int) tea.Cmd {
	if a.startupDiscarded || a.Mode != ModeStartup {
		return nil
	}
	switch step {
	case 1:
		a.Screen.Append(shell.Text(welcomeLine))
		a.refresh(true)
		return after(introLineDelay, introStepMsg(2))
	case 2:
		a.Screen.Append(shell.Text(helpHint))
		a.refresh(true)
		return after(introLineDelay, introStepMsg(3))
	case 3:
		a.logger.Debug("loading startup text")
		return loadStartupCmd(a.loader)
	}
	return nil
}

func (a *AppModel) handleStartupLoaded(msg StartupLoadedMsg) tea.Cmd {
	if a.startup != nil {
		return nil
	}
	if a.startupDiscarded {
		a.logger.Debug("startup text arrived after clear; dropped")
		return nil
	}
	if msg.Err != nil {
		a.logger.Warn("startup text unavailable", "error", msg.Err)
		a.startup = typing.Failed(loadErrorMessage(msg.Err))
		a.Screen.Append(shell.Error(a.startup.Text()))
		a.refresh(true)
		return after(a.delay, startupSettledMsg{})
	}
	if a.revealSkipped {
		a.logger.Debug("startup text skipped after early command")
		return after(a.delay, startupSettledMsg{})
	}
	a.startup = typing.New(msg.Text, a.delay).Atomic(shell.MarkupRanges)
	cmd := a.startup.Start()
	a.refresh(true)
	return cmd
}

// handleTypingTick routes a tick to the session it belongs to.
func (a *AppModel) handleTypingTick(msg typing.TickMsg) tea.Cmd {
	switch {
	case a.startup != nil && msg.ID == a.startup.ID():
		done, cmd := a.startup.Update(msg)
		if done {
			cmd = a.finishStartupReveal()
		}
		a.refresh(true)
		return cmd
	case a.clearing != nil && msg.ID == a.clearing.ID():
		done, cmd := a.clearing.Update(msg)
		if done {
			cmd = after(a.delay, clearSettledMsg{})
		}
		a.refresh(true)
		return cmd
	}
	return nil
}

// finishStartupReveal moves the fully revealed startup text into the
// scrollback.
func (a *AppModel) finishStartupReveal() tea.Cmd {
	a.Screen.Append(shell.Text(a.startup.Text()))
	return after(a.delay, startupSettledMsg{})
}

// fastForwardStartup reveals the rest of the startup text at once. Before
// the text has arrived it marks the text as skipped instead.
func (a *AppModel) fastForwardStartup() tea.Cmd {
	if a.Mode != ModeStartup {
		return nil
	}
	if a.startup == nil {
		a.revealSkipped = true
		return nil
	}
	if !a.startup.FastForward() {
		return nil
	}
	cmd := a.finishStartupReveal()
	a.refresh(true)
	return cmd
}

// handleStartupSettled shows the command list unless help was already
// requested during startup.
func (a *AppModel) handleStartupSettled() tea.Cmd {
	if a.Mode != ModeStartup {
		return nil
	}
	if a.helpClickedEarly {
		return a.armPrompt()
	}
	a.Screen.Append(shell.StandingList())
	a.refresh(true)
	return after(commandListDelay, promptArmedMsg{})
}

// armPrompt shows and focuses the prompt.
func (a *AppModel) armPrompt() tea.Cmd {
	a.Mode = ModePrompt
	a.Input.Reset()
	cmd := a.Input.Focus()
	a.refresh(true)
	return cmd
}
