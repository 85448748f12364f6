package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dynui/internal/progress"
	"dynui/internal/screen"
	"dynui/internal/session"
)

// LoadResultMsg carries a finished remote load back to the update loop.
type LoadResultMsg struct {
	Result session.LoadResult
}

// ReloadMsg asks the app to reload the current source (ctrl+r).
type ReloadMsg struct{}

// BackMsg pops the navigation path (esc).
type BackMsg struct{}

// Focus movement between interactive components (tab, shift+tab).
type (
	FocusNextMsg struct{}
	FocusPrevMsg struct{}
)

// ToggleLogMsg shows or hides the load log (ctrl+l).
type ToggleLogMsg struct{}

// AppModel is the root model: it hosts one session and renders its
// published screen.
type AppModel struct {
	Session *session.Session
	Source  string
	Focus   *FocusManager
	Keys    *KeybindRegistry
	Log     *LoadLog
	ShowLog bool

	ctx       context.Context
	events    <-chan progress.Event
	lastEvent *progress.Event
	widgets   *widgets
	shown     *screen.ScreenData
	spinner   spinner.Model
	help      help.Model
	width     int
	height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for sess. events, if non-nil, is the
// receiving end of the session's ChanEmitter.
func NewAppModel(ctx context.Context, sess *session.Session, source string, events <-chan progress.Event) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "next")
	reg.BindWithDesc("down", func() tea.Msg { return FocusNextMsg{} }, "next")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "prev")
	reg.BindWithDesc("up", func() tea.Msg { return FocusPrevMsg{} }, "prev")
	reg.BindWithDesc("esc", func() tea.Msg { return BackMsg{} }, "back")
	reg.BindWithDesc("ctrl+r", func() tea.Msg { return ReloadMsg{} }, "reload")
	reg.BindWithDesc("ctrl+l", func() tea.Msg { return ToggleLogMsg{} }, "loads")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Status

	return &AppModel{
		Session: sess,
		Source:  source,
		Focus:   &FocusManager{},
		Keys:    reg,
		Log:     NewLoadLog(),
		ctx:     ctx,
		events:  events,
		widgets: newWidgets(),
		spinner: sp,
		help:    newHelpModel(),
		width:   defaultWidth,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.load(a.Source), a.waitForEvent())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.Log.Update(msg)
		return a, nil

	case progress.Event:
		ev := msg
		a.lastEvent = &ev
		a.Log.Append(ev)
		return a, a.waitForEvent()

	case LoadResultMsg:
		a.Session.Publish(msg.Result)
		a.syncScreen()
		return a, nil

	case ReloadMsg:
		return a, a.reload()

	case BackMsg:
		a.Session.Path().Pop()
		return a, nil

	case FocusNextMsg:
		a.Focus.Next()
		return a, a.focusChanged()

	case FocusPrevMsg:
		a.Focus.Prev()
		return a, a.focusChanged()

	case ToggleLogMsg:
		a.ShowLog = !a.ShowLog
		return a, nil

	case DismissLogMsg:
		a.ShowLog = false
		return a, nil

	case spinner.TickMsg:
		if a.Session.Screen() != nil && !a.Session.Pending() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	if c := a.focused(); c != nil && c.Kind == screen.KindTextField {
		return a, a.widgets.updateInput(c, msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if a.ShowLog && s != "ctrl+c" {
		_, cmd := a.Log.Update(msg)
		return cmd
	}

	if c := a.focused(); c != nil {
		if c.Kind == screen.KindTextField && isInputKey(s) {
			return a.widgets.updateInput(c, msg)
		}
		if a.widgets.activate(a.ctx, a.Session, c, s) {
			a.refreshFocus()
			return nil
		}
	}

	if consumed, cmd := a.Keys.Handle(msg); consumed {
		return cmd
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder

	sd := a.Session.Screen()
	switch {
	case sd == nil && a.Session.Err() != nil && !a.Session.Pending():
		b.WriteString(Styles.Empty.Render("No screen loaded"))
	case sd == nil:
		b.WriteString(a.spinner.View() + " Loading...")
	default:
		focused := a.focused()
		a.widgets.syncInputs(focused)
		r := NewRenderer(a.Session, a.widgets, focused, a.width)
		b.WriteString(r.RenderScreen(sd))
	}

	if a.ShowLog {
		b.WriteString("\n" + a.Log.View())
	}

	b.WriteString("\n" + a.statusLine())
	b.WriteString("\n" + RenderKeybindHelp(a.help, a.Keys, widgetHelp(a.focused()), a.width))
	return b.String()
}

func (a *appModelAdapter) statusLine() string {
	var parts []string
	if sd := a.Session.Screen(); sd != nil {
		parts = append(parts, Styles.Title.Render(sd.ScreenName))
	}
	if path := a.Session.Path().Entries(); len(path) > 0 {
		parts = append(parts, Styles.Muted.Render("› "+strings.Join(path, " › ")))
	}
	if a.Session.Screen() != nil && a.Session.Pending() {
		parts = append(parts, a.spinner.View()+Styles.Status.Render("loading"))
	}
	if err := a.Session.Err(); err != nil {
		parts = append(parts, Styles.Error.Render("✗ "+err.Error()))
	}
	return lipgloss.NewStyle().MaxWidth(a.width).Render(strings.Join(parts, "  "))
}

// load starts loading source. Local loads complete before load returns;
// remote loads run as a command and come back as LoadResultMsg.
func (m *AppModel) load(source string) tea.Cmd {
	task := m.Session.LoadScreen(m.ctx, source)
	if task == nil {
		m.syncScreen()
		return nil
	}
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return LoadResultMsg{Result: task()}
	})
}

func (m *AppModel) reload() tea.Cmd {
	task := m.Session.Reload(m.ctx)
	if task == nil {
		m.syncScreen()
		return nil
	}
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return LoadResultMsg{Result: task()}
	})
}

// waitForEvent blocks on the event channel and delivers one event.
func (m *AppModel) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ev
	}
}

// syncScreen rebuilds widget state when a new screen was published.
func (m *AppModel) syncScreen() {
	sd := m.Session.Screen()
	if sd == m.shown {
		return
	}
	m.shown = sd
	m.widgets.rebuild(m.Session, sd)
	m.refreshFocus()
	m.focusChanged()
}

// refreshFocus recomputes the tab order from what is currently visible.
func (m *AppModel) refreshFocus() {
	m.Focus.SetOrder(m.widgets.focusOrder(m.shown))
}

func (m *AppModel) focusChanged() tea.Cmd {
	return m.widgets.focusInput(m.focused())
}

func (m *AppModel) focused() *screen.Component {
	return m.widgets.byKey[m.Focus.Current]
}
