package style

import "dynui/internal/screen"

// Fallback holds the hard-coded last-tier values for one component kind.
type Fallback struct {
	FontSize        float64
	ForegroundColor string
	BackgroundColor string // "" means no background
	BorderColor     string
	BorderWidth     float64
	CornerRadius    float64
	Padding         float64
	MinValue        float64
	MaxValue        float64
	Columns         int
	Rows            int
}

// Hard-coded fallback constants.
const (
	DefaultFontSize          = 16
	DefaultForegroundColor   = "#000000"
	DefaultBorderColor       = "#000000"
	DefaultCornerRadius      = 8
	DefaultMinValue          = 0
	DefaultMaxValue          = 100
	DefaultGridTracks        = 2
	ButtonBackgroundColor    = "#007AFF"
	ButtonForegroundColor    = "#FFFFFF"
	TextFieldBackgroundColor = "#78787833"
)

var baseFallback = Fallback{
	FontSize:        DefaultFontSize,
	ForegroundColor: DefaultForegroundColor,
	BorderColor:     DefaultBorderColor,
	MinValue:        DefaultMinValue,
	MaxValue:        DefaultMaxValue,
	Columns:         DefaultGridTracks,
	Rows:            DefaultGridTracks,
}

// FallbackFor returns the hard-coded values for a kind.
func FallbackFor(k screen.Kind) Fallback {
	fb := baseFallback
	switch k {
	case screen.KindButton:
		fb.BackgroundColor = ButtonBackgroundColor
		fb.ForegroundColor = ButtonForegroundColor
		fb.CornerRadius = DefaultCornerRadius
	case screen.KindTextField:
		fb.BackgroundColor = TextFieldBackgroundColor
		fb.CornerRadius = DefaultCornerRadius
	}
	return fb
}
