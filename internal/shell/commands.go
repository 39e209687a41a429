package shell

import (
	"fmt"

	"termfolio/internal/content"
)

// Top-level command names.
const (
	CmdWhoami     = "whoami"
	CmdProjects   = "projects"
	CmdExperience = "experience"
	CmdContact    = "contact"
	CmdClear      = "clear"
	CmdHelp       = "help"
)

// StandingCommands is the order of the command-shortcut list shown after
// startup and after clear.
var StandingCommands = []string{CmdWhoami, CmdProjects, CmdExperience, CmdContact, CmdHelp, CmdClear}

// ClearedMessage is the notice typed out after clear.
const ClearedMessage = "Cleared terminal."

// StandingList returns the command-shortcut list block.
func StandingList() Block {
	return CommandList(StandingCommands...)
}

// NewPortfolioRegistry builds the three registries from a profile: the
// top-level commands, one command per project, and one per experience
// entry. clear is registered in every mode.
func NewPortfolioRegistry(p content.Profile) (*Registry, error) {
	r := NewRegistry()

	clearCmd := Command{
		Name:        CmdClear,
		Description: "Clear the terminal.",
		Enters:      ModeTop,
		Resets:      true,
		Render: func(out Surface) {
			out.Append(Notice(ClearedMessage), StandingList())
		},
	}

	top := []Command{
		{
			Name:        CmdWhoami,
			Description: "About me.",
			Enters:      ModeTop,
			Render: func(out Surface) {
				out.Append(Text(fmt.Sprintf("My name is %s!", p.Name)))
				for _, para := range p.Bio {
					out.Append(Text(para))
				}
			},
		},
		{
			Name:        CmdProjects,
			Description: "Check out my projects.",
			Enters:      ModeProjects,
			Render: func(out Surface) {
				if p.ProjectsIntro != "" {
					out.Append(Text(p.ProjectsIntro))
				}
				for _, e := range p.Projects {
					out.Append(Code(e.Key, e.Summary))
				}
			},
		},
		{
			Name:        CmdExperience,
			Description: "See my current/past experiences.",
			Enters:      ModeExperience,
			Render: func(out Surface) {
				for _, e := range p.Experience {
					out.Append(Code(e.Key, e.Summary))
				}
			},
		},
		{
			Name:        CmdContact,
			Description: "Ways to contact me.",
			Enters:      ModeTop,
			Render: func(out Surface) {
				for _, c := range p.Contacts {
					out.Append(Link(c.Label, c.URL))
				}
			},
		},
		clearCmd,
		{
			Name:        CmdHelp,
			Description: "Show this help message.",
			Enters:      ModeTop,
			Render: func(out Surface) {
				for _, c := range r.Commands(ModeTop) {
					out.Append(Code(c.Name, c.Description))
				}
			},
		},
	}
	for _, c := range top {
		if err := r.Register(ModeTop, c); err != nil {
			return nil, err
		}
	}

	sub := []struct {
		mode    Mode
		entries []content.Entry
	}{
		{ModeProjects, p.Projects},
		{ModeExperience, p.Experience},
	}
	for _, s := range sub {
		if err := r.Register(s.mode, clearCmd); err != nil {
			return nil, err
		}
		for _, e := range s.entries {
			if _, shadowed := r.Lookup(ModeTop, e.Key); shadowed {
				return nil, fmt.Errorf("%s entry %q collides with a top-level command", s.mode, e.Key)
			}
			if err := r.Register(s.mode, entryCommand(s.mode, e)); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func entryCommand(mode Mode, e content.Entry) Command {
	return Command{
		Name:        e.Key,
		Description: e.Summary,
		Enters:      mode,
		Render: func(out Surface) {
			if e.Heading != "" {
				out.Append(Text(e.Heading))
			}
			if e.Body != "" {
				out.Append(Text(e.Body))
			}
		},
	}
}
