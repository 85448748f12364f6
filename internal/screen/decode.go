package screen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"dynui/internal/jsonutil"
)

// ErrMissingField is wrapped by DecodeError when a required field is absent
// or null.
var ErrMissingField = errors.New("missing required field")

// DecodeError reports a payload that could not be turned into a screen tree.
// Path locates the offending node, e.g. "components[2].components[0]".
type DecodeError struct {
	Path  string
	Field string // set for missing fields
	Err   error
}

func (e *DecodeError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "$"
	}
	if e.Field != "" {
		return fmt.Sprintf("decode %s: %v %q", loc, e.Err, e.Field)
	}
	return fmt.Sprintf("decode %s: %v", loc, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type wireScreen struct {
	ScreenName *string            `json:"screenName"`
	Layout     *string            `json:"layout"`
	Components *[]json.RawMessage `json:"components"`
}

type wireComponent struct {
	ID              *string           `json:"id"`
	Type            *string           `json:"type"`
	Content         *string           `json:"content"`
	URL             *string           `json:"url"`
	Width           *float64          `json:"width"`
	Height          *float64          `json:"height"`
	Padding         *float64          `json:"padding"`
	ForegroundColor *string           `json:"foregroundColor"`
	BackgroundColor *string           `json:"backgroundColor"`
	FontSize        *float64          `json:"fontSize"`
	Alignment       *string           `json:"alignment"`
	Components      []json.RawMessage `json:"components"`
	Action          json.RawMessage   `json:"action"`
	StateKey        *string           `json:"stateKey"`
	Placeholder     *string           `json:"placeholder"`
	CornerRadius    *float64          `json:"cornerRadius"`
	BorderWidth     *float64          `json:"borderWidth"`
	BorderColor     *string           `json:"borderColor"`
	Animation       *string           `json:"animation"`
	MinValue        *float64          `json:"minValue"`
	MaxValue        *float64          `json:"maxValue"`
	Columns         *int              `json:"columns"`
	Rows            *int              `json:"rows"`
}

type wireAction struct {
	Type    *string           `json:"type"`
	Payload map[string]string `json:"payload"`
}

// Decode parses a screen payload. Optional attributes that are missing
// decode as nil; a missing or mistyped required field yields *DecodeError.
func Decode(data []byte) (*ScreenData, error) {
	var ws wireScreen
	if err := jsonutil.UnmarshalWithContext(data, &ws, "screen"); err != nil {
		return nil, &DecodeError{Err: err}
	}
	switch {
	case ws.ScreenName == nil:
		return nil, missing("", "screenName")
	case ws.Layout == nil:
		return nil, missing("", "layout")
	case ws.Components == nil:
		return nil, missing("", "components")
	}

	components, err := decodeChildren(*ws.Components, "components")
	if err != nil {
		return nil, err
	}
	return &ScreenData{
		ScreenName: *ws.ScreenName,
		Layout:     *ws.Layout,
		Components: components,
	}, nil
}

// DecodeDefaults parses a component defaults payload: an object keyed by
// component type whose values are style bags.
func DecodeDefaults(data []byte) (ComponentDefaults, error) {
	var raw map[string]*StyleDefaults
	if err := jsonutil.UnmarshalWithContext(data, &raw, "component defaults"); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if raw == nil {
		return nil, &DecodeError{Err: errors.New("component defaults: expected an object")}
	}
	defaults := make(ComponentDefaults, len(raw))
	for tag, sd := range raw {
		if sd == nil {
			continue
		}
		defaults[normalizeType(tag)] = *sd
	}
	return defaults, nil
}

func decodeChildren(raws []json.RawMessage, path string) ([]*Component, error) {
	out := make([]*Component, 0, len(raws))
	for i, raw := range raws {
		c, err := decodeComponent(raw, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeComponent(raw json.RawMessage, path string) (*Component, error) {
	if jsonutil.IsNull(raw) {
		return nil, &DecodeError{Path: path, Err: errors.New("component is null")}
	}
	var wc wireComponent
	if err := json.Unmarshal(raw, &wc); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if wc.ID == nil {
		return nil, missing(path, "id")
	}
	if wc.Type == nil {
		return nil, missing(path, "type")
	}

	c := &Component{
		ID:              *wc.ID,
		Type:            *wc.Type,
		Kind:            ParseKind(*wc.Type),
		Content:         wc.Content,
		URL:             wc.URL,
		Width:           wc.Width,
		Height:          wc.Height,
		Padding:         wc.Padding,
		ForegroundColor: wc.ForegroundColor,
		BackgroundColor: wc.BackgroundColor,
		FontSize:        wc.FontSize,
		Alignment:       wc.Alignment,
		CornerRadius:    wc.CornerRadius,
		BorderWidth:     wc.BorderWidth,
		BorderColor:     wc.BorderColor,
		Animation:       ParseAnimation(StringOr(wc.Animation, "")),
		MinValue:        wc.MinValue,
		MaxValue:        wc.MaxValue,
		Columns:         wc.Columns,
		Rows:            wc.Rows,
		StateKey:        wc.StateKey,
		Placeholder:     wc.Placeholder,
	}

	if !jsonutil.IsNull(wc.Action) {
		action, err := decodeAction(wc.Action, path+".action")
		if err != nil {
			return nil, err
		}
		c.Action = action
	}

	if len(wc.Components) > 0 {
		children, err := decodeChildren(wc.Components, path+".components")
		if err != nil {
			return nil, err
		}
		c.Components = children
	}
	return c, nil
}

func decodeAction(raw json.RawMessage, path string) (*DynamicAction, error) {
	var wa wireAction
	if err := json.Unmarshal(raw, &wa); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if wa.Type == nil {
		return nil, missing(path, "type")
	}
	a := NewAction(*wa.Type, wa.Payload)
	return &a, nil
}

func missing(path, field string) *DecodeError {
	return &DecodeError{Path: path, Field: field, Err: ErrMissingField}
}
