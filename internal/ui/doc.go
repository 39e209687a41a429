// Package ui is the Bubble Tea front end of the portfolio terminal.
//
// Layout, top to bottom:
//   - Title bar: random glyph and the profile title
//   - Scrollback: a viewport holding the rendered shell blocks and, once
//     armed, the prompt line
//   - Footer: key hints for the current AppMode
//
// The startup sequence (intro lines, startup text reveal, command list,
// prompt) and the clear animation are driven by timed messages; command
// execution is delegated to shell.Dispatcher.
package ui
