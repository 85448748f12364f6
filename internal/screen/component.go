// Package screen holds the decoded screen tree: components, their actions,
// the per-type style defaults, and the JSON decoding rules for all of them.
//
// A decoded tree is immutable. Optional attributes are pointers so that an
// absent attribute can be told apart from an explicit zero, which style
// resolution depends on.
package screen

// Component is one node of a screen tree.
type Component struct {
	ID   string
	Type string // raw wire tag
	Kind Kind

	Content         *string
	URL             *string
	Width           *float64
	Height          *float64
	Padding         *float64
	ForegroundColor *string
	BackgroundColor *string
	FontSize        *float64
	Alignment       *string
	CornerRadius    *float64
	BorderWidth     *float64
	BorderColor     *string
	Animation       Animation
	MinValue        *float64
	MaxValue        *float64
	Columns         *int
	Rows            *int
	StateKey        *string
	Placeholder     *string
	Action          *DynamicAction

	Components []*Component
}

// ContentOr returns the content, or fallback when absent.
func (c *Component) ContentOr(fallback string) string {
	return StringOr(c.Content, fallback)
}

// StringOr dereferences p, returning fallback for nil.
func StringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// FloatOr dereferences p, returning fallback for nil.
func FloatOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// IntOr dereferences p, returning fallback for nil.
func IntOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
