package screen

import "strings"

// StyleDefaults is the fallback style bag for one component type.
type StyleDefaults struct {
	CornerRadius    *float64 `json:"cornerRadius,omitempty"`
	BorderWidth     *float64 `json:"borderWidth,omitempty"`
	BorderColor     *string  `json:"borderColor,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	ForegroundColor *string  `json:"foregroundColor,omitempty"`
	FontSize        *float64 `json:"fontSize,omitempty"`
	MinValue        *float64 `json:"minValue,omitempty"`
	MaxValue        *float64 `json:"maxValue,omitempty"`
}

// ComponentDefaults maps a component type to its fallback styles.
// Keys are stored lower-cased, so "textfield" in the resource file serves
// the "TextField" type.
type ComponentDefaults map[string]StyleDefaults

// For returns the defaults for a component type tag.
func (d ComponentDefaults) For(tag string) (StyleDefaults, bool) {
	if d == nil {
		return StyleDefaults{}, false
	}
	sd, ok := d[normalizeType(tag)]
	return sd, ok
}

// Types returns the number of component types with defaults.
func (d ComponentDefaults) Types() int {
	return len(d)
}

func normalizeType(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
