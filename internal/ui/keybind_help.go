package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help model styled like the rest of the chrome.
func newHelpModel() help.Model {
	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return helpModel
}

// RenderKeybindHelp renders the one-line help bar: keys for the focused
// widget first, then the app-level bindings.
func RenderKeybindHelp(m help.Model, reg *KeybindRegistry, widget []key.Binding, width int) string {
	m.Width = width
	return m.View(NewKeyMap(reg, widget...))
}
