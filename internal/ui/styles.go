package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, prompt
	ColorHighlight = "205" // Magenta - for focused links, key hints
	ColorDanger    = "196" // Red - for errors, rejected commands
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for descriptions
	ColorLink      = "75"  // Blue - for command and web links
	ColorSuccess   = "42"  // Green - for accepted commands
)

// Styles contains shared style definitions used by the renderer.
var Styles = struct {
	TitleBar lipgloss.Style // Title bar across the top
	Glyph    lipgloss.Style // Random glyph in the title bar

	Normal      lipgloss.Style // Paragraph text
	Description lipgloss.Style // Right column of a code block
	Hint        lipgloss.Style // Command-list label, notices
	Error       lipgloss.Style // Error lines
	Cursor      lipgloss.Style // Typing cursor

	Command      lipgloss.Style // Command link
	CommandFocus lipgloss.Style // Command link with keyboard focus
	WebLink      lipgloss.Style // URL link

	PromptAccepted lipgloss.Style // "❯" before an accepted command
	PromptRejected lipgloss.Style // "❯" before a rejected command
	Accepted       lipgloss.Style // Echo of an accepted command
	Rejected       lipgloss.Style // Echo of a rejected command
}{
	TitleBar: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color("236")).
		Align(lipgloss.Center),
	Glyph: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Background(lipgloss.Color("236")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Command: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)).
		Bold(true),
	CommandFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	WebLink: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)).
		Underline(true),
	PromptAccepted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	PromptRejected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Accepted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Rejected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
