// Package style resolves the effective style of a component.
//
// Every attribute is resolved in three tiers: the value set on the node,
// then the defaults loaded for the node's type, then a hard-coded fallback.
// Renderers must take styles from here rather than reading node attributes
// directly.
package style

import "dynui/internal/screen"

// Tier identifies which layer produced a resolved value.
type Tier int

const (
	TierFallback Tier = iota
	TierTypeDefault
	TierExplicit
)

func (t Tier) String() string {
	switch t {
	case TierExplicit:
		return "explicit"
	case TierTypeDefault:
		return "type-default"
	default:
		return "fallback"
	}
}

// Value is a resolved attribute together with its source tier.
type Value[T any] struct {
	V    T
	Tier Tier
}

// Style is the fully resolved style of one component.
type Style struct {
	FontSize        Value[float64]
	ForegroundColor Value[string]
	BackgroundColor Value[string]
	BorderColor     Value[string]
	BorderWidth     Value[float64]
	CornerRadius    Value[float64]
	Padding         Value[float64]
	MinValue        Value[float64]
	MaxValue        Value[float64]
	Columns         Value[int]
	Rows            Value[int]
}

// Range returns the value range with min and max ordered.
func (s Style) Range() (lo, hi float64) {
	lo, hi = s.MinValue.V, s.MaxValue.V
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Resolver resolves styles against one loaded set of type defaults.
// It is read-only; a reload builds a new Resolver.
type Resolver struct {
	defaults screen.ComponentDefaults
}

// NewResolver creates a resolver over defaults. A nil map is valid and
// leaves only the explicit and fallback tiers.
func NewResolver(defaults screen.ComponentDefaults) *Resolver {
	return &Resolver{defaults: defaults}
}

// Defaults returns the type-level defaults for a component type tag.
func (r *Resolver) Defaults(tag string) (screen.StyleDefaults, bool) {
	if r == nil {
		return screen.StyleDefaults{}, false
	}
	return r.defaults.For(tag)
}

// Resolve computes the effective style for c.
func (r *Resolver) Resolve(c *screen.Component) Style {
	if c == nil {
		return Style{}
	}
	td, _ := r.Defaults(c.Type)
	fb := FallbackFor(c.Kind)

	return Style{
		FontSize:        pick(c.FontSize, td.FontSize, fb.FontSize),
		ForegroundColor: pick(c.ForegroundColor, td.ForegroundColor, fb.ForegroundColor),
		BackgroundColor: pick(c.BackgroundColor, td.BackgroundColor, fb.BackgroundColor),
		BorderColor:     pick(c.BorderColor, td.BorderColor, fb.BorderColor),
		BorderWidth:     pick(c.BorderWidth, td.BorderWidth, fb.BorderWidth),
		CornerRadius:    pick(c.CornerRadius, td.CornerRadius, fb.CornerRadius),
		Padding:         pick(c.Padding, nil, fb.Padding),
		MinValue:        pick(c.MinValue, td.MinValue, fb.MinValue),
		MaxValue:        pick(c.MaxValue, td.MaxValue, fb.MaxValue),
		Columns:         pick(c.Columns, nil, fb.Columns),
		Rows:            pick(c.Rows, nil, fb.Rows),
	}
}

func pick[T any](explicit, typeDefault *T, fallback T) Value[T] {
	if explicit != nil {
		return Value[T]{V: *explicit, Tier: TierExplicit}
	}
	if typeDefault != nil {
		return Value[T]{V: *typeDefault, Tier: TierTypeDefault}
	}
	return Value[T]{V: fallback, Tier: TierFallback}
}
