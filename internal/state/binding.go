package state

import "dynui/internal/jsonutil"

// Binding is a read/write capability over one store key.
type Binding struct {
	key   string
	store *Store
}

// Binding returns a binding over *key. A nil key means the component has
// no stateKey: a fresh random key is allocated for this request so that
// unrelated components never share a value. An explicit "" is an ordinary
// key. The key is registered with an empty value if it does not exist yet.
func (s *Store) Binding(key *string) Binding {
	var k string
	if key != nil {
		k = *key
	} else {
		k = s.newKey()
	}
	if _, ok := s.values[k]; !ok {
		s.values[k] = ""
	}
	return Binding{key: k, store: s}
}

// Key returns the bound key.
func (b Binding) Key() string {
	return b.key
}

// Get returns the current value.
func (b Binding) Get() string {
	if b.store == nil {
		return ""
	}
	return b.store.Get(b.key)
}

// Set writes a new value through the store.
func (b Binding) Set(value string) {
	if b.store == nil {
		return
	}
	b.store.Set(b.key, value)
}

// Bool reads the value as a boolean.
func (b Binding) Bool() bool {
	return b.Get() == "true"
}

// SetBool writes "true" or "false".
func (b Binding) SetBool(v bool) {
	b.Set(FormatBool(v))
}

// Number reads the value as a number, returning fallback when the value is
// empty or not numeric.
func (b Binding) Number(fallback float64) float64 {
	if v, ok := jsonutil.ParseNumber(b.Get()); ok {
		return v
	}
	return fallback
}

// SetNumber writes v in its decimal text form.
func (b Binding) SetNumber(v float64) {
	b.Set(jsonutil.FormatNumber(v))
}
