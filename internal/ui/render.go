package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dynui/internal/action"
	"dynui/internal/jsonutil"
	"dynui/internal/screen"
	"dynui/internal/session"
	"dynui/internal/ui/textutil"
)

const (
	sliderWidth   = 20
	defaultWidth  = 80
	focusMarker   = "▸ "
	noFocusMarker = "  "
)

// Renderer turns a component tree into terminal text. It reads the session
// and widget state but never writes to either.
type Renderer struct {
	sess    *session.Session
	widgets *widgets
	focused *screen.Component
	width   int
}

// NewRenderer creates a renderer for the session's published screen.
func NewRenderer(sess *session.Session, w *widgets, focused *screen.Component, width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	if w == nil {
		w = newWidgets()
	}
	return &Renderer{sess: sess, widgets: w, focused: focused, width: width}
}

// RenderScreen renders every top-level component of sd, stacked vertically.
func (r *Renderer) RenderScreen(sd *screen.ScreenData) string {
	if sd == nil {
		return ""
	}
	return r.stack(sd.Components, lipgloss.Left)
}

// Render renders one component and its children. Unknown kinds render as
// nothing.
func (r *Renderer) Render(c *screen.Component) string {
	if c == nil {
		return ""
	}
	st := r.sess.Style(c)
	box := boxStyle(c, st)

	var out string
	switch c.Kind {
	case screen.KindText:
		out = box.Render(r.sess.Interpolate(c.ContentOr("")))
	case screen.KindButton:
		out = r.button(c, box)
	case screen.KindVStack:
		out = box.Render(r.stack(c.Components, alignment(c)))
	case screen.KindHStack:
		out = box.Render(r.row(c.Components))
	case screen.KindZStack:
		out = box.Render(r.layers(c.Components))
	case screen.KindScrollView:
		out = box.UnsetHeight().Render(r.scroll(c))
	case screen.KindDivider:
		out = r.divider(c)
	case screen.KindStepper:
		out = box.Render(r.stepper(c))
	case screen.KindList:
		out = box.Render(r.list(c.Components))
	case screen.KindNavigationView:
		out = box.Render(r.navigation(c))
	case screen.KindTabView:
		out = box.Render(r.tabs(c))
	case screen.KindImage:
		out = r.image(c)
	case screen.KindTextField:
		out = r.textField(c, box)
	case screen.KindToggle:
		out = box.Render(r.toggle(c))
	case screen.KindSlider:
		out = box.Render(r.slider(c))
	case screen.KindGrid, screen.KindLazyVGrid:
		out = box.Render(r.grid(c.Components, st.Columns.V))
	case screen.KindLazyHGrid:
		out = box.Render(r.hgrid(c.Components, st.Rows.V))
	default:
		return ""
	}

	if c.Kind.IsInteractive() && c.Kind != screen.KindTabView {
		return r.marker(c, out)
	}
	return out
}

// marker prefixes an interactive component with the focus gutter.
func (r *Renderer) marker(c *screen.Component, out string) string {
	gutter := noFocusMarker
	if c == r.focused {
		gutter = Styles.Focus.Render(focusMarker)
	}
	lines := strings.Split(out, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = gutter + lines[i]
		} else {
			lines[i] = noFocusMarker + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderAll(children []*screen.Component) []string {
	out := make([]string, 0, len(children))
	for _, child := range children {
		if s := r.Render(child); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r *Renderer) stack(children []*screen.Component, pos lipgloss.Position) string {
	parts := r.renderAll(children)
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func (r *Renderer) row(children []*screen.Component) string {
	parts := r.renderAll(children)
	if len(parts) == 0 {
		return ""
	}
	spaced := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// layers draws children back to front. A terminal has no z-order, so
// later layers overwrite earlier ones line by line where they are wider.
func (r *Renderer) layers(children []*screen.Component) string {
	parts := r.renderAll(children)
	if len(parts) == 0 {
		return ""
	}
	w, h := 0, 0
	for _, p := range parts {
		w = max(w, lipgloss.Width(p))
		h = max(h, lipgloss.Height(p))
	}
	canvas := make([]string, h)
	for _, p := range parts {
		placed := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, p)
		for i, line := range strings.Split(placed, "\n") {
			if i < h && strings.TrimSpace(line) != "" {
				canvas[i] = line
			}
		}
	}
	for i := range canvas {
		if canvas[i] == "" {
			canvas[i] = strings.Repeat(" ", w)
		}
	}
	return strings.Join(canvas, "\n")
}

func (r *Renderer) scroll(c *screen.Component) string {
	body := r.stack(c.Components, alignment(c))
	if c.Height == nil {
		return body
	}
	clipped, hidden := textutil.ClipLines(body, Rows(*c.Height))
	if hidden == 0 {
		return body
	}
	return clipped + "\n" + Styles.Hint.Render(fmt.Sprintf("↓ %d more", hidden))
}

func (r *Renderer) divider(c *screen.Component) string {
	w := r.width
	if c.Width != nil {
		w = Columns(*c.Width)
	}
	line := strings.Repeat("─", max(w, 1))
	if col, ok := usable(r.sess.Style(c).BorderColor); ok {
		return lipgloss.NewStyle().Foreground(col).Render(line)
	}
	return Styles.Muted.Render(line)
}

func (r *Renderer) button(c *screen.Component, box lipgloss.Style) string {
	label := r.sess.Interpolate(c.ContentOr("Button"))
	s := box
	if c.Padding == nil {
		s = s.Padding(0, 1)
	}
	if c == r.focused {
		s = s.Bold(true).Underline(true)
	}
	return s.Render(label)
}

func (r *Renderer) stepper(c *screen.Component) string {
	lo, _ := r.sess.Style(c).Range()
	v := r.widgets.binding(c).Number(lo)
	label := r.sess.Interpolate(c.ContentOr("Stepper"))
	return fmt.Sprintf("%s  [-] %s [+]", label, jsonutil.FormatNumber(v))
}

func (r *Renderer) list(children []*screen.Component) string {
	var rows []string
	for _, s := range r.renderAll(children) {
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			if i == 0 {
				lines[i] = "• " + l
			} else {
				lines[i] = "  " + l
			}
		}
		rows = append(rows, strings.Join(lines, "\n"))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) navigation(c *screen.Component) string {
	title := c.ContentOr("")
	if title == "" {
		if sd := r.sess.Screen(); sd != nil {
			title = sd.ScreenName
		}
	}
	title = r.sess.Interpolate(title)
	header := Styles.Title.Render(textutil.Truncate(title, r.width))
	if path := r.sess.Path().Entries(); len(path) > 0 {
		crumbs := append([]string{title}, path...)
		header += "\n" + Styles.Muted.Render(textutil.Truncate(strings.Join(crumbs, " › "), r.width))
	}
	body := r.stack(c.Components, lipgloss.Left)
	if body == "" {
		return header
	}
	return header + "\n" + body
}

func (r *Renderer) tabs(c *screen.Component) string {
	if len(c.Components) == 0 {
		return ""
	}
	b := r.widgets.binding(c)
	idx := tabIndex(c, b)
	labels := make([]string, len(c.Components))
	for i, child := range c.Components {
		label := child.ContentOr(child.ID)
		if i == idx {
			labels[i] = Styles.Selected.Render(label)
		} else {
			labels[i] = Styles.Muted.Render(label)
		}
	}
	header := strings.Join(labels, " │ ")
	gutter := noFocusMarker
	if c == r.focused {
		gutter = Styles.Focus.Render(focusMarker)
	}
	return gutter + header + "\n" + r.Render(c.Components[idx])
}

// image shows a placeholder naming the URL; an absent or invalid URL
// renders nothing.
func (r *Renderer) image(c *screen.Component) string {
	u, ok := action.ParseURL(screen.StringOr(c.URL, ""))
	if !ok {
		return ""
	}
	return Styles.Muted.Render("[image " + textutil.Truncate(u.String(), r.width-8) + "]")
}

func (r *Renderer) textField(c *screen.Component, box lipgloss.Style) string {
	ti, ok := r.widgets.inputs[c]
	if !ok {
		return ""
	}
	s := box
	if c.Padding == nil {
		s = s.Padding(0, 1)
	}
	if c.Width == nil {
		s = s.Width(max(ti.Width, 24))
	}
	return s.Render(ti.View())
}

func (r *Renderer) toggle(c *screen.Component) string {
	mark := "[ ]"
	if r.widgets.binding(c).Bool() {
		mark = "[x]"
	}
	return mark + " " + r.sess.Interpolate(c.ContentOr("Toggle"))
}

func (r *Renderer) slider(c *screen.Component) string {
	lo, hi := r.sess.Style(c).Range()
	v := sliderValue(r.widgets.binding(c), lo, hi)
	filled := 0
	if hi > lo {
		filled = int((v - lo) / (hi - lo) * sliderWidth)
	}
	filled = min(max(filled, 0), sliderWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
	return fmt.Sprintf("%s [%s] %s", jsonutil.FormatNumber(lo), bar, jsonutil.FormatNumber(hi)) +
		Styles.Hint.Render("  "+jsonutil.FormatNumber(v))
}

// grid lays children out row-major in a fixed number of columns.
func (r *Renderer) grid(children []*screen.Component, columns int) string {
	parts := r.renderAll(children)
	if len(parts) == 0 {
		return ""
	}
	columns = min(max(columns, 1), len(parts))
	cell := 0
	for _, p := range parts {
		cell = max(cell, lipgloss.Width(p))
	}
	var rows []string
	for start := 0; start < len(parts); start += columns {
		end := min(start+columns, len(parts))
		cells := make([]string, 0, columns)
		for _, p := range parts[start:end] {
			cells = append(cells, lipgloss.NewStyle().Width(cell+1).Render(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// hgrid lays children out column-major in a fixed number of rows.
func (r *Renderer) hgrid(children []*screen.Component, rows int) string {
	parts := r.renderAll(children)
	if len(parts) == 0 {
		return ""
	}
	rows = min(max(rows, 1), len(parts))
	var cols []string
	for start := 0; start < len(parts); start += rows {
		end := min(start+rows, len(parts))
		col := lipgloss.JoinVertical(lipgloss.Left, parts[start:end]...)
		cols = append(cols, lipgloss.NewStyle().PaddingRight(1).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
