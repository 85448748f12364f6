package screen

// Kind identifies how a component is interpreted and rendered.
// Tags outside the known set decode to KindUnknown; the raw tag stays on
// Component.Type.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindButton
	KindVStack
	KindHStack
	KindZStack
	KindScrollView
	KindDivider
	KindStepper
	KindList
	KindNavigationView
	KindTabView
	KindImage
	KindTextField
	KindToggle
	KindSlider
	KindGrid
	KindLazyVGrid
	KindLazyHGrid
)

var kindNames = map[Kind]string{
	KindText:           "Text",
	KindButton:         "Button",
	KindVStack:         "VStack",
	KindHStack:         "HStack",
	KindZStack:         "ZStack",
	KindScrollView:     "ScrollView",
	KindDivider:        "Divider",
	KindStepper:        "Stepper",
	KindList:           "List",
	KindNavigationView: "NavigationView",
	KindTabView:        "TabView",
	KindImage:          "Image",
	KindTextField:      "TextField",
	KindToggle:         "Toggle",
	KindSlider:         "Slider",
	KindGrid:           "Grid",
	KindLazyVGrid:      "LazyVGrid",
	KindLazyHGrid:      "LazyHGrid",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// ParseKind maps a wire type tag to its Kind. Matching is case-sensitive,
// like the wire format itself.
func ParseKind(tag string) Kind {
	if k, ok := kindsByName[tag]; ok {
		return k
	}
	return KindUnknown
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsContainer reports whether the kind lays out its children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindVStack, KindHStack, KindZStack, KindScrollView, KindList,
		KindNavigationView, KindTabView, KindGrid, KindLazyVGrid, KindLazyHGrid:
		return true
	}
	return false
}

// IsInteractive reports whether the kind accepts user input.
func (k Kind) IsInteractive() bool {
	switch k {
	case KindButton, KindTextField, KindToggle, KindSlider, KindStepper, KindTabView:
		return true
	}
	return false
}

// Animation names the transition applied when a bound value changes.
type Animation string

const (
	AnimationNone      Animation = ""
	AnimationEaseInOut Animation = "easeInOut"
	AnimationSpring    Animation = "spring"
	AnimationLinear    Animation = "linear"
)

// ParseAnimation returns AnimationNone for unset or unrecognized names.
func ParseAnimation(name string) Animation {
	switch a := Animation(name); a {
	case AnimationEaseInOut, AnimationSpring, AnimationLinear:
		return a
	}
	return AnimationNone
}
