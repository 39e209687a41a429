package shell

import "fmt"

// Command is a registered command and its render action.
type Command struct {
	Name        string
	Description string
	// Enters is the Mode the session is in after the command renders.
	Enters Mode
	// Resets marks the clear command: it always runs, wipes the surface and
	// resets the State before rendering.
	Resets bool
	// Render appends the command's output. It only touches the surface.
	Render func(out Surface)
}

// Registry maps command names to commands, partitioned by Mode.
// Lookups are exact and case-sensitive.
type Registry struct {
	byMode map[Mode]map[string]Command
	order  map[Mode][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byMode: make(map[Mode]map[string]Command),
		order:  make(map[Mode][]string),
	}
}

// Register adds cmd to the registry for mode. Registering the same name
// twice in one mode is an error.
func (r *Registry) Register(mode Mode, cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("register %s command: empty name", mode)
	}
	if cmd.Render == nil {
		return fmt.Errorf("register %s command %q: nil render", mode, cmd.Name)
	}
	cmds, ok := r.byMode[mode]
	if !ok {
		cmds = make(map[string]Command)
		r.byMode[mode] = cmds
	}
	if _, dup := cmds[cmd.Name]; dup {
		return fmt.Errorf("register %s command %q: already registered", mode, cmd.Name)
	}
	cmds[cmd.Name] = cmd
	r.order[mode] = append(r.order[mode], cmd.Name)
	return nil
}

// Lookup returns the command registered for name in mode.
func (r *Registry) Lookup(mode Mode, name string) (Command, bool) {
	cmd, ok := r.byMode[mode][name]
	return cmd, ok
}

// Commands returns the commands of mode in registration order.
func (r *Registry) Commands(mode Mode) []Command {
	names := r.order[mode]
	out := make([]Command, 0, len(names))
	for _, n := range names {
		out = append(out, r.byMode[mode][n])
	}
	return out
}
