package ui

// AppMode is the input phase of the terminal.
type AppMode int

const (
	// ModeStartup: intro and startup reveal; no prompt yet.
	ModeStartup AppMode = iota
	// ModePrompt: the prompt accepts input.
	ModePrompt
	// ModeClearing: the clear notice is being typed; input is ignored.
	ModeClearing
)

func (m AppMode) String() string {
	switch m {
	case ModeStartup:
		return "Startup"
	case ModePrompt:
		return "Prompt"
	case ModeClearing:
		return "Clearing"
	default:
		return "Unknown"
	}
}
