package shell

// State is the single mutable navigation value of a session: the active
// Mode and the key of the last rendered command.
type State struct {
	Mode Mode
	// LastOutputKey is the most recently rendered command, or "" for none.
	LastOutputKey string
}

// NewState returns the initial state: Top, nothing rendered.
func NewState() *State {
	return &State{Mode: ModeTop}
}

// Enter switches the navigation context.
func (s *State) Enter(m Mode) {
	s.Mode = m
}

// Reset returns to Top with no last output.
func (s *State) Reset() {
	s.Mode = ModeTop
	s.LastOutputKey = ""
}

// IsDuplicate reports whether name was the last rendered command.
func (s *State) IsDuplicate(name string) bool {
	return name != "" && s.LastOutputKey == name
}
