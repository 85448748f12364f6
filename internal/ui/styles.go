package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dynui/internal/screen"
	"dynui/internal/style"
)

// Theme colors for chrome around the rendered screen.
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focus markers, borders
	ColorDanger    = "196" // Red - for load errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions for the chrome.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - screen and navigation titles
	Focus    lipgloss.Style // Focus marker
	Muted    lipgloss.Style // Dimmed text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status bar
	Error    lipgloss.Style // Load error in the status bar
	Empty    lipgloss.Style // Placeholder text
	Selected lipgloss.Style // Selected tab
	Box      lipgloss.Style // Load log frame
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Focus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
}

// Terminal cells are far coarser than points.
const (
	pointsPerColumn = 8
	pointsPerRow    = 16
	boldFontSize    = 20

	// Upper bounds for server-supplied sizes.
	maxColumns = 500
	maxRows    = 200
)

// Columns converts a point length to terminal columns, at least 1 for any
// positive length and at most maxColumns.
func Columns(points float64) int {
	return toCells(points, pointsPerColumn, maxColumns)
}

// Rows converts a point length to terminal rows, at most maxRows.
func Rows(points float64) int {
	return toCells(points, pointsPerRow, maxRows)
}

func toCells(points, per float64, limit int) int {
	if points <= 0 || math.IsNaN(points) {
		return 0
	}
	cells := math.Round(points / per)
	if cells >= float64(limit) {
		return limit
	}
	if cells < 1 {
		return 1
	}
	return int(cells)
}

// HexColor converts "#RGB", "#RRGGBB" or "#RRGGBBAA" (with or without the
// leading #) to a terminal color. The alpha channel is dropped.
func HexColor(hex string) (lipgloss.Color, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	for _, r := range h {
		if !isHexDigit(r) {
			return "", false
		}
	}
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		h = h[:6]
	default:
		return "", false
	}
	return lipgloss.Color("#" + strings.ToUpper(h)), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// usable reports whether a resolved color should be painted. The black
// text fallback is left to the terminal's own foreground.
func usable(v style.Value[string]) (lipgloss.Color, bool) {
	if v.Tier == style.TierFallback && strings.EqualFold(v.V, style.DefaultForegroundColor) {
		return "", false
	}
	return HexColor(v.V)
}

// alignment maps a wire alignment to a lipgloss position.
func alignment(c *screen.Component) lipgloss.Position {
	switch strings.ToLower(screen.StringOr(c.Alignment, "")) {
	case "leading", "left", "top":
		return lipgloss.Left
	case "trailing", "right", "bottom":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// boxStyle builds the frame shared by every component: padding, colors,
// borders and explicit size.
func boxStyle(c *screen.Component, st style.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg, ok := usable(st.ForegroundColor); ok {
		s = s.Foreground(fg)
	}
	if bg, ok := HexColor(st.BackgroundColor.V); ok {
		s = s.Background(bg)
	}
	if st.FontSize.V >= boldFontSize {
		s = s.Bold(true)
	}
	if p := st.Padding.V; p > 0 {
		s = s.Padding(Rows(p), Columns(p))
	}
	if st.BorderWidth.V > 0 {
		border := lipgloss.NormalBorder()
		if st.CornerRadius.V > 0 {
			border = lipgloss.RoundedBorder()
		}
		s = s.Border(border)
		if bc, ok := usable(st.BorderColor); ok {
			s = s.BorderForeground(bc)
		}
	}
	if c.Width != nil {
		if w := Columns(*c.Width); w > 0 {
			s = s.Width(w)
		}
	}
	if c.Height != nil {
		if h := Rows(*c.Height); h > 0 {
			s = s.Height(h)
		}
	}
	return s
}
