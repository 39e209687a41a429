package shell

// Mode is the navigation context that decides which sub-commands are
// reachable without going through the top-level registry.
type Mode int

const (
	ModeTop Mode = iota
	ModeProjects
	ModeExperience
)

func (m Mode) String() string {
	switch m {
	case ModeTop:
		return "Top"
	case ModeProjects:
		return "Projects"
	case ModeExperience:
		return "Experience"
	default:
		return "Unknown"
	}
}
