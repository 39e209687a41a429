// Package content holds the canned portfolio content and loads the startup
// text shown when a terminal session opens.
package content

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed defaults/profile.toml
var defaultProfileTOML []byte

//go:embed defaults/startup.txt
var defaultStartupText string

// Profile is the canned content rendered by the terminal commands.
type Profile struct {
	Name          string    `toml:"name"`
	Title         string    `toml:"title"`
	Bio           []string  `toml:"bio"`
	ProjectsIntro string    `toml:"projects_intro"`
	Projects      []Entry   `toml:"project"`
	Experience    []Entry   `toml:"experience"`
	Contacts      []Contact `toml:"contact"`
}

// Entry is one project or work-experience item. Key is the command that
// shows it; Summary is the one-line description in the listing.
type Entry struct {
	Key     string `toml:"key"`
	Summary string `toml:"summary"`
	Heading string `toml:"heading"`
	Body    string `toml:"body"`
}

// Contact is a labelled external link.
type Contact struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// DefaultProfile returns the embedded profile.
func DefaultProfile() Profile {
	p, err := ParseProfile(defaultProfileTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded profile: %v", err))
	}
	return p
}

// DefaultStartupText returns the embedded startup text.
func DefaultStartupText() string {
	return defaultStartupText
}

// ParseProfile decodes and validates a TOML profile.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if _, err := toml.Decode(string(data), &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that every entry has a key and that keys are unique
// across projects and experience.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	seen := make(map[string]string)
	check := func(kind string, entries []Entry) error {
		for i, e := range entries {
			if e.Key == "" {
				return fmt.Errorf("profile: %s[%d]: key is required", kind, i)
			}
			if prev, ok := seen[e.Key]; ok {
				return fmt.Errorf("profile: %s key %q already used by %s", kind, e.Key, prev)
			}
			seen[e.Key] = kind
		}
		return nil
	}
	if err := check("project", p.Projects); err != nil {
		return err
	}
	if err := check("experience", p.Experience); err != nil {
		return err
	}
	for i, c := range p.Contacts {
		if c.URL == "" {
			return fmt.Errorf("profile: contact[%d]: url is required", i)
		}
	}
	return nil
}
