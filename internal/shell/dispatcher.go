package shell

import "strings"

// OutcomeKind classifies what a submission did.
type OutcomeKind int

const (
	// OutcomeEmpty: blank input, nothing rendered.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeAccepted: the command rendered its output.
	OutcomeAccepted
	// OutcomeSuppressed: same command as the last output; nothing happened.
	OutcomeSuppressed
	// OutcomeRejected: unknown command.
	OutcomeRejected
	// OutcomeCleared: the surface was wiped and the shortcut list redrawn.
	OutcomeCleared
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "empty"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Outcome reports the result of one Submit.
type Outcome struct {
	Kind    OutcomeKind
	Command string
	// From is the Mode before the submission, Mode the one after.
	From Mode
	Mode Mode
}

// Dispatcher is the single entry point turning a submitted line into
// display blocks and State changes. Typed input and link activation both
// call Submit.
type Dispatcher struct {
	registry *Registry
	state    *State
	out      Surface
}

// NewDispatcher wires a dispatcher to its registry, state and surface.
func NewDispatcher(registry *Registry, state *State, out Surface) *Dispatcher {
	return &Dispatcher{registry: registry, state: state, out: out}
}

// State returns the session state the dispatcher updates.
func (d *Dispatcher) State() *State {
	return d.state
}

// Resolve finds name in the current mode's registry, falling back to Top.
func (d *Dispatcher) Resolve(name string) (Command, bool) {
	if cmd, ok := d.registry.Lookup(d.state.Mode, name); ok {
		return cmd, true
	}
	if d.state.Mode != ModeTop {
		return d.registry.Lookup(ModeTop, name)
	}
	return Command{}, false
}

// Submit trims line and executes it.
//
// Unknown commands render a rejection and clear LastOutputKey but keep the
// Mode. A command equal to LastOutputKey is skipped entirely, except for a
// resetting command, which always runs.
func (d *Dispatcher) Submit(line string) Outcome {
	name := strings.TrimSpace(line)
	res := Outcome{Command: name, From: d.state.Mode}
	if name == "" {
		res.Kind = OutcomeEmpty
		res.Mode = d.state.Mode
		return res
	}

	cmd, ok := d.Resolve(name)
	switch {
	case !ok:
		d.out.Append(Rejected(name), UnknownCommand(name))
		d.state.LastOutputKey = ""
		res.Kind = OutcomeRejected
	case cmd.Resets:
		d.out.Clear()
		d.state.Reset()
		cmd.Render(d.out)
		res.Kind = OutcomeCleared
	case d.state.IsDuplicate(name):
		res.Kind = OutcomeSuppressed
	default:
		d.out.Append(Accepted(name))
		cmd.Render(d.out)
		d.state.Enter(cmd.Enters)
		d.state.LastOutputKey = name
		res.Kind = OutcomeAccepted
	}
	res.Mode = d.state.Mode
	return res
}

// UnknownCommand is the message rendered after a rejected command.
func UnknownCommand(name string) Block {
	return Block{Kind: BlockText, Spans: []Span{
		{Text: "command not found: " + name + ". Type "},
		{Text: CmdHelp, Command: CmdHelp},
		{Text: " to see available commands."},
	}}
}
