package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key strings to commands.
// Keys use tea.KeyMsg.String() notation: "esc", "ctrl+l", "shift+tab", "pgdown".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command in every mode, without a help hint.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the footer.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
// Rebinding a key replaces the command and keeps its original position.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	} else {
		delete(r.descriptions, n)
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command for a key in mode, or nil if the key is not
// bound or the binding does not apply to mode.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// Handle looks up msg in mode. Returns (consumed, cmd).
func (r *KeybindRegistry) Handle(msg tea.KeyMsg, mode AppMode) (bool, tea.Cmd) {
	if c := r.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// Hint is one footer entry.
type Hint struct {
	Key  string
	Desc string
}

// Hints returns the described bindings that apply to mode, in
// registration order.
func (r *KeybindRegistry) Hints(mode AppMode) []Hint {
	var out []Hint
	for _, seq := range r.order {
		d, ok := r.descriptions[seq]
		if !ok || r.bindings[seq] == nil || !r.appliesToMode(seq, mode) {
			continue
		}
		out = append(out, Hint{Key: seq, Desc: d})
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq trims and lowercases modifier names so "Ctrl+L" and
// "ctrl+l" bind the same key.
func normalizeSeq(seq string) string {
	seq = strings.TrimSpace(seq)
	if i := strings.LastIndex(seq, "+"); i > 0 {
		return strings.ToLower(seq[:i]) + seq[i:]
	}
	return seq
}

// KeyMap implements help.KeyMap for rendering footer hints with
// bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints(km.mode)
	bindings := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Key),
			key.WithHelp(h.Key, h.Desc),
		))
	}
	return bindings
}

// FullHelp returns the short help as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// DefaultKeybinds registers the terminal's key bindings on r.
func DefaultKeybinds(r *KeybindRegistry) {
	r.BindWithDesc("ctrl+c", tea.Quit, "quit")
	r.BindWithDescForMode("esc", msgCmd(FastForwardMsg{}), "skip", []AppMode{ModeStartup})
	r.BindWithDescForMode("ctrl+l", msgCmd(ClearShortcutMsg{}), "clear", []AppMode{ModeStartup, ModePrompt})
	r.BindWithDescForMode("tab", msgCmd(FocusLinkMsg{Delta: 1}), "links", []AppMode{ModePrompt})
	r.BindWithDescForMode("shift+tab", msgCmd(FocusLinkMsg{Delta: -1}), "", []AppMode{ModePrompt})
	r.BindWithDesc("pgup", msgCmd(PageMsg{}), "scroll")
	r.Bind("pgdown", msgCmd(PageMsg{Down: true}))
	r.Bind("up", msgCmd(ScrollMsg{Lines: -1}))
	r.Bind("down", msgCmd(ScrollMsg{Lines: 1}))
}
