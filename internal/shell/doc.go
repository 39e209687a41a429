// Package shell implements the command side of the portfolio terminal:
// the navigation Mode, the per-mode command registry, and the Dispatcher
// that turns a submitted line into display blocks.
//
// Control flow for one submission:
//
//	line -> Dispatcher.Submit -> State (mode, last output) -> Registry.Lookup
//	     -> Command.Render(Surface) -> State update
//
// Nothing here knows about Bubble Tea; the ui package owns timing, input and
// drawing.
package shell
