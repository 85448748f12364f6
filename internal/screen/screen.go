package screen

// ScreenData is one decoded screen.
type ScreenData struct {
	ScreenName string
	Layout     string
	Components []*Component
}

// WalkFunc is called for every component in pre-order. depth is 0 for
// top-level components. Returning false skips the component's children.
type WalkFunc func(c *Component, depth int) bool

// Walk visits every component in the screen in pre-order.
func (s *ScreenData) Walk(fn WalkFunc) {
	if s == nil || fn == nil {
		return
	}
	for _, c := range s.Components {
		walk(c, 0, fn)
	}
}

// Walk visits c and its descendants in pre-order.
func Walk(c *Component, fn WalkFunc) {
	if fn == nil {
		return
	}
	walk(c, 0, fn)
}

func walk(c *Component, depth int, fn WalkFunc) {
	if c == nil {
		return
	}
	if !fn(c, depth) {
		return
	}
	for _, child := range c.Components {
		walk(child, depth+1, fn)
	}
}

// Find returns the first component with the given id, in pre-order.
func (s *ScreenData) Find(id string) *Component {
	var found *Component
	s.Walk(func(c *Component, _ int) bool {
		if found != nil {
			return false
		}
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns the number of components in the tree.
func (s *ScreenData) Count() int {
	n := 0
	s.Walk(func(*Component, int) bool {
		n++
		return true
	})
	return n
}
