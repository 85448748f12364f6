// Package ui hosts a dynui session in the terminal with Bubble Tea.
//
// Pieces:
//   - AppModel: root model; starts loads, feeds results back to the session
//   - Renderer: turns the published component tree into text, one kind at a time
//   - FocusManager: tab order over the visible interactive components
//   - KeybindRegistry: app-level keys and the help bar
//   - LoadLog: scrollback of load events
package ui
