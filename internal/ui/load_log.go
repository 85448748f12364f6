package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dynui/internal/progress"
)

// LoadLog shows the history of screen loads with scrollback.
// Toggled with ctrl+l; esc dismisses.
type LoadLog struct {
	events   []progress.Event
	viewport viewport.Model
}

// Ensure LoadLog implements View.
var _ View = (*LoadLog)(nil)

const (
	defaultLogWidth  = 70
	defaultLogHeight = 14
	maxLogEvents     = 200
)

// DismissLogMsg asks the app to close the load log.
type DismissLogMsg struct{}

// NewLoadLog creates an empty load log.
func NewLoadLog() *LoadLog {
	vp := viewport.New(defaultLogWidth, defaultLogHeight)
	l := &LoadLog{viewport: vp}
	l.refreshContent()
	return l
}

// Init implements View.
func (l *LoadLog) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (l *LoadLog) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.Event:
		l.Append(msg)
		return l, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "ctrl+l" {
			return l, func() tea.Msg { return DismissLogMsg{} }
		}
	case tea.WindowSizeMsg:
		w := msg.Width - 6
		h := msg.Height/2 + 2
		if w < 40 {
			w = 40
		}
		if h < 8 {
			h = 8
		}
		l.viewport.Width = w
		l.viewport.Height = h
		l.refreshContent()
		return l, nil
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// Append records an event, keeping the most recent maxLogEvents.
func (l *LoadLog) Append(ev progress.Event) {
	l.events = append(l.events, ev)
	if len(l.events) > maxLogEvents {
		l.events = l.events[len(l.events)-maxLogEvents:]
	}
	l.refreshContent()
}

// Len returns the number of recorded events.
func (l *LoadLog) Len() int {
	return len(l.events)
}

// View implements View.
func (l *LoadLog) View() string {
	header := Styles.Title.Render("Loads") + Styles.Hint.Render("  esc: close")
	return Styles.Box.Render(header + "\n" + l.viewport.View())
}

// refreshContent rebuilds the viewport content from accumulated events.
func (l *LoadLog) refreshContent() {
	var lines []string
	for _, ev := range l.events {
		ts := ev.Timestamp.Format("15:04:05")
		line := fmt.Sprintf("[%s] %s %s", ts, statusIcon(ev.Status), ev.Source)
		if ev.Message != "" {
			line += "  " + ev.Message
		}
		if ev.Err != nil {
			line += "  " + Styles.Error.Render(ev.Err.Error())
		}
		lines = append(lines, line)
		keys := make([]string, 0, len(ev.Metadata))
		for k := range ev.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, Styles.Muted.Render(fmt.Sprintf("      %s: %s", k, ev.Metadata[k])))
		}
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Empty.Render("No loads yet")
	}
	l.viewport.SetContent(content)
	l.viewport.GotoBottom()
}

func statusIcon(s progress.Status) string {
	switch s {
	case progress.StatusRunning:
		return "●"
	case progress.StatusDone:
		return "✓"
	case progress.StatusError:
		return "✗"
	case progress.StatusStale:
		return "↷"
	default:
		return "•"
	}
}
