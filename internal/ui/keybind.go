package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands for the app-level bindings
// (focus movement, back, reload, quit). Widget keys such as space on a
// toggle are handled by the focused component before the registry is asked.
// Keys use tea.KeyMsg.String() notation except that space is "space".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := r.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// Hint is one described binding.
type Hint struct {
	Key  string
	Desc string
}

// Hints returns described bindings in registration order. Keys sharing a
// description are merged ("tab/down").
func (r *KeybindRegistry) Hints() []Hint {
	var out []Hint
	byDesc := make(map[string]int)
	for _, seq := range r.order {
		if r.bindings[seq] == nil {
			continue
		}
		d, ok := r.descriptions[seq]
		if !ok || d == "" {
			continue
		}
		if i, seen := byDesc[d]; seen {
			out[i].Key += "/" + seq
			continue
		}
		byDesc[d] = len(out)
		out = append(out, Hint{Key: seq, Desc: d})
	}
	return out
}

// normalizeSeq converts tea key strings to our canonical format.
// " " -> "space", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "space"
	}
	return strings.TrimSpace(seq)
}

// KeyMap implements help.KeyMap for rendering the registry with
// bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
	extra    []key.Binding
}

// NewKeyMap creates a KeyMap for the registry. extra bindings describe keys
// handled by the focused widget and are listed first.
func NewKeyMap(registry *KeybindRegistry, extra ...key.Binding) help.KeyMap {
	return &KeyMap{registry: registry, extra: extra}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	bindings := append([]key.Binding(nil), km.extra...)
	if km.registry == nil {
		return bindings
	}
	for _, h := range km.registry.Hints() {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(strings.Split(h.Key, "/")...),
			key.WithHelp(h.Key, h.Desc),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
