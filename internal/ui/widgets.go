package ui

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dynui/internal/screen"
	"dynui/internal/session"
	"dynui/internal/state"
)

// sliderSteps is how many arrow presses cross a slider's full range.
const sliderSteps = 20

// widgets holds the per-component interactive state of the published
// screen. It is rebuilt whenever a new screen is published.
type widgets struct {
	bindings map[*screen.Component]state.Binding
	inputs   map[*screen.Component]*textinput.Model
	keys     map[*screen.Component]string
	byKey    map[string]*screen.Component
}

func newWidgets() *widgets {
	return &widgets{
		bindings: make(map[*screen.Component]state.Binding),
		inputs:   make(map[*screen.Component]*textinput.Model),
		keys:     make(map[*screen.Component]string),
		byKey:    make(map[string]*screen.Component),
	}
}

func bindsState(k screen.Kind) bool {
	switch k {
	case screen.KindTextField, screen.KindToggle, screen.KindSlider, screen.KindStepper, screen.KindTabView:
		return true
	}
	return false
}

// rebuild creates bindings, text inputs and focus keys for sd. Components
// without a stateKey get a binding to a fresh key of their own.
func (w *widgets) rebuild(sess *session.Session, sd *screen.ScreenData) {
	*w = *newWidgets()
	seen := make(map[string]int)
	sd.Walk(func(c *screen.Component, _ int) bool {
		if c.Kind.IsInteractive() {
			k := fmt.Sprintf("%s#%d", c.ID, seen[c.ID])
			seen[c.ID]++
			w.keys[c] = k
			w.byKey[k] = c
		}
		if bindsState(c.Kind) {
			w.bindings[c] = sess.Binding(c.StateKey)
		}
		if c.Kind == screen.KindTextField {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = screen.StringOr(c.Placeholder, c.ContentOr(""))
			ti.SetValue(w.bindings[c].Get())
			if c.Width != nil {
				ti.Width = Columns(*c.Width)
			}
			w.inputs[c] = &ti
		}
		return true
	})
}

// binding returns the binding for c, or a zero binding that reads "" and
// ignores writes.
func (w *widgets) binding(c *screen.Component) state.Binding {
	return w.bindings[c]
}

// focusOrder lists the focus keys of the interactive components that are
// currently visible: only the selected child of a TabView is walked.
func (w *widgets) focusOrder(sd *screen.ScreenData) []string {
	var order []string
	var visit func(c *screen.Component)
	visit = func(c *screen.Component) {
		if c == nil {
			return
		}
		if k, ok := w.keys[c]; ok {
			order = append(order, k)
		}
		if c.Kind == screen.KindTabView {
			if child := selectedTab(c, w.binding(c)); child != nil {
				visit(child)
			}
			return
		}
		for _, child := range c.Components {
			visit(child)
		}
	}
	if sd != nil {
		for _, c := range sd.Components {
			visit(c)
		}
	}
	return order
}

// syncInputs copies store values into text inputs that are not being
// edited, so updateState actions show up in fields.
func (w *widgets) syncInputs(focused *screen.Component) {
	for c, ti := range w.inputs {
		if c == focused {
			continue
		}
		if v := w.bindings[c].Get(); ti.Value() != v {
			ti.SetValue(v)
		}
	}
}

// focusInput focuses the text input of c, blurring every other one.
func (w *widgets) focusInput(c *screen.Component) tea.Cmd {
	var cmd tea.Cmd
	for other, ti := range w.inputs {
		if other == c {
			cmd = ti.Focus()
			continue
		}
		ti.Blur()
	}
	return cmd
}

// isInputKey reports whether a key belongs to a focused text field rather
// than to the app.
func isInputKey(s string) bool {
	switch s {
	case "tab", "shift+tab", "esc", "enter", "ctrl+c", "ctrl+r", "ctrl+l", "up", "down":
		return false
	}
	return true
}

// updateInput feeds msg to c's text input and writes the result through
// its binding.
func (w *widgets) updateInput(c *screen.Component, msg tea.Msg) tea.Cmd {
	ti, ok := w.inputs[c]
	if !ok {
		return nil
	}
	before := ti.Value()
	next, cmd := ti.Update(msg)
	*ti = next
	if v := ti.Value(); v != before {
		w.bindings[c].Set(v)
	}
	return cmd
}

// activate handles a widget key for the focused component c.
// Returns whether the key was consumed.
func (w *widgets) activate(ctx context.Context, sess *session.Session, c *screen.Component, k string) bool {
	b := w.binding(c)
	switch c.Kind {
	case screen.KindButton:
		if k == "enter" || k == " " {
			_ = sess.HandleAction(ctx, c.Action)
			return true
		}
	case screen.KindToggle:
		if k == "enter" || k == " " {
			b.SetBool(!b.Bool())
			return true
		}
	case screen.KindSlider:
		lo, hi := sess.Style(c).Range()
		step := (hi - lo) / sliderSteps
		if step == 0 {
			step = 1
		}
		switch k {
		case "left", "h":
			b.SetNumber(clamp(sliderValue(b, lo, hi)-step, lo, hi))
			return true
		case "right", "l":
			b.SetNumber(clamp(sliderValue(b, lo, hi)+step, lo, hi))
			return true
		}
	case screen.KindStepper:
		lo, hi := sess.Style(c).Range()
		switch k {
		case "left", "-", "h":
			b.SetNumber(clamp(b.Number(lo)-1, lo, hi))
			return true
		case "right", "+", "l":
			b.SetNumber(clamp(b.Number(lo)+1, lo, hi))
			return true
		}
	case screen.KindTabView:
		n := len(c.Components)
		if n == 0 {
			return false
		}
		idx := tabIndex(c, b)
		switch k {
		case "left", "h":
			b.SetNumber(float64((idx - 1 + n) % n))
			return true
		case "right", "l":
			b.SetNumber(float64((idx + 1) % n))
			return true
		}
	}
	return false
}

// widgetHelp describes the keys the focused component understands.
func widgetHelp(c *screen.Component) []key.Binding {
	if c == nil {
		return nil
	}
	switch c.Kind {
	case screen.KindButton:
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press"))}
	case screen.KindToggle:
		return []key.Binding{key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("space", "toggle"))}
	case screen.KindSlider, screen.KindStepper:
		return []key.Binding{key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust"))}
	case screen.KindTabView:
		return []key.Binding{key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "switch tab"))}
	case screen.KindTextField:
		return []key.Binding{key.NewBinding(key.WithKeys("tab"), key.WithHelp("type", "edit"))}
	}
	return nil
}

func sliderValue(b state.Binding, lo, hi float64) float64 {
	return clamp(b.Number(lo), lo, hi)
}

func tabIndex(c *screen.Component, b state.Binding) int {
	n := len(c.Components)
	if n == 0 {
		return 0
	}
	idx := int(math.Round(b.Number(0)))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func selectedTab(c *screen.Component, b state.Binding) *screen.Component {
	if len(c.Components) == 0 {
		return nil
	}
	return c.Components[tabIndex(c, b)]
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
