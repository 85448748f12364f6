package screen

// ActionKind identifies a user-triggered instruction.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionNavigate
	ActionUpdateState
	ActionOpenURL
	ActionToggle
)

// Payload keys understood by the known action kinds.
const (
	PayloadDestination = "destination"
	PayloadKey         = "key"
	PayloadValue       = "value"
	PayloadURL         = "url"
)

// ParseActionKind maps a wire action type to its ActionKind.
func ParseActionKind(tag string) ActionKind {
	switch tag {
	case "navigate":
		return ActionNavigate
	case "updateState":
		return ActionUpdateState
	case "openURL":
		return ActionOpenURL
	case "toggle":
		return ActionToggle
	}
	return ActionUnknown
}

func (k ActionKind) String() string {
	switch k {
	case ActionNavigate:
		return "navigate"
	case ActionUpdateState:
		return "updateState"
	case ActionOpenURL:
		return "openURL"
	case ActionToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// DynamicAction is an instruction attached to a component.
// Type keeps the raw wire tag so unknown kinds can still be diagnosed.
type DynamicAction struct {
	Type    string
	Kind    ActionKind
	Payload map[string]string
}

// NewAction builds an action from a wire tag and payload.
func NewAction(tag string, payload map[string]string) DynamicAction {
	return DynamicAction{Type: tag, Kind: ParseActionKind(tag), Payload: payload}
}

// Arg returns a payload argument and whether it was present.
func (a DynamicAction) Arg(name string) (string, bool) {
	if a.Payload == nil {
		return "", false
	}
	v, ok := a.Payload[name]
	return v, ok
}
