package ui

// FocusManager tracks and rotates focus across interactive components.
// IDs are focus keys produced by the renderer, not raw component ids, so
// duplicate component ids still get distinct stops.
type FocusManager struct {
	Current  string   // focus key of the focused component, "" if none
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next component in order.
// Returns the new current focus key.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous component in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(f.Order) - 1
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus sets focus to the given key.
// Returns true if the key exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// SetOrder replaces the tab order after the screen changed. Focus stays on
// the current key if it survived, otherwise it moves to the first stop.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if f.index(f.Current) >= 0 {
		return
	}
	if len(order) == 0 {
		f.set("")
		return
	}
	f.set(order[0])
}

func (f *FocusManager) index(id string) int {
	if id == "" {
		return -1
	}
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
