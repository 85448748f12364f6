package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region with its own update loop, Elm-style.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
