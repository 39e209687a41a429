package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// wheelLines is how far one wheel notch scrolls.
const wheelLines = 3

func (a *AppModel) scroll(lines int) {
	if lines < 0 {
		a.Viewport.LineUp(-lines)
	} else {
		a.Viewport.LineDown(lines)
	}
}

func (a *AppModel) page(down bool) {
	if down {
		a.Viewport.ViewDown()
	} else {
		a.Viewport.ViewUp()
	}
}

// focusLink moves keyboard focus across the visible command links,
// wrapping at both ends, and scrolls the focused link into view.
func (a *AppModel) focusLink(delta int) {
	n := len(a.layout.links)
	if n == 0 {
		a.linkFocus = -1
		return
	}
	switch {
	case a.linkFocus < 0 && delta < 0:
		a.linkFocus = n - 1
	case a.linkFocus < 0:
		a.linkFocus = 0
	default:
		a.linkFocus = ((a.linkFocus+delta)%n + n) % n
	}
	a.refresh(false)
	line := a.layout.firstLine(a.linkFocus)
	if line < 0 {
		return
	}
	if line < a.Viewport.YOffset || line >= a.Viewport.YOffset+a.Viewport.Height {
		a.Viewport.SetYOffset(line)
	}
}

// handleMouse scrolls on the wheel and activates command links on a left
// click.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.scroll(-wheelLines)
		return nil
	case tea.MouseButtonWheelDown:
		a.scroll(wheelLines)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	row := msg.Y - titleHeight
	if row < 0 || row >= a.Viewport.Height {
		return nil
	}
	z, ok := a.layout.zoneAt(row+a.Viewport.YOffset, msg.X)
	if !ok {
		return nil
	}
	return a.submit(z.Command, true)
}
