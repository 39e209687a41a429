// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth returns the number of terminal columns r occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// VisualWidthStyled returns the visual width of a styled string, ignoring
// ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate truncates a string to fit within maxWidth visual columns,
// appending … when it had to cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth < 0 {
		return TruncateEllipsis
	}

	runes := []rune(s)
	result := make([]rune, 0, len(runes))
	currentWidth := 0
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if currentWidth+w > availableWidth {
			break
		}
		result = append(result, r)
		currentWidth += w
	}
	return string(result) + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth visual columns.
// If s is already wider than targetWidth, it's truncated.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-currentWidth)
}

// Hyperlink wraps text in an OSC 8 escape so terminals that support it make
// the text clickable. Terminals that don't simply show text.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
