package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns the footer help model styled like the rest of the UI.
func newHelpModel() help.Model {
	m := help.New()
	m.ShortSeparator = "  "
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return m
}

// RenderKeybindHelp renders the footer hints for mode, clipped to width.
func RenderKeybindHelp(m help.Model, r *KeybindRegistry, mode AppMode, width int) string {
	if r == nil {
		return ""
	}
	m.Width = width
	return m.ShortHelpView(NewKeyMap(r, mode).ShortHelp())
}
