// Package nav holds the navigation path: the ordered destinations pushed by
// navigate actions.
package nav

// Path is the stack of navigation destinations. The interpreter only
// appends; popping is left to the host that presents the stack.
type Path struct {
	entries []string
}

// Append pushes a destination onto the path.
func (p *Path) Append(destination string) {
	p.entries = append(p.entries, destination)
}

// Pop removes and returns the top destination.
// Returns false if the path is empty.
func (p *Path) Pop() (string, bool) {
	if len(p.entries) == 0 {
		return "", false
	}
	top := p.entries[len(p.entries)-1]
	p.entries = p.entries[:len(p.entries)-1]
	return top, true
}

// Peek returns the top destination without removing it.
func (p *Path) Peek() (string, bool) {
	if len(p.entries) == 0 {
		return "", false
	}
	return p.entries[len(p.entries)-1], true
}

// Len returns the number of destinations on the path.
func (p *Path) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the path, bottom first.
func (p *Path) Entries() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

// Reset empties the path.
func (p *Path) Reset() {
	p.entries = nil
}
