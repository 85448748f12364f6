// Package state provides the session key/value store that drives reactive
// UI values, read/write bindings over its keys, and text interpolation.
//
// Values are always strings: booleans are "true"/"false" and numbers use
// their decimal text form. A Store is owned by one goroutine and is not safe
// for concurrent use.
package state

import (
	"sort"

	"github.com/google/uuid"
)

// Listener is notified after every Set.
type Listener func(key, value string)

// Store maps state keys to their current values.
type Store struct {
	values map[string]string
	subs   map[int]Listener
	next   int
	newKey func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
		newKey: uuid.NewString,
	}
}

// Get returns the value for key, or "" when the key has never been set.
func (s *Store) Get(key string) string {
	return s.values[key]
}

// Lookup returns the value for key and whether the key exists.
func (s *Store) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, creating the key if needed, and notifies
// listeners. Every call notifies, including writes of an unchanged value.
func (s *Store) Set(key, value string) {
	s.values[key] = value
	s.notify(key, value)
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.values)
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all values.
func (s *Store) Snapshot() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clear removes every key. Listeners are kept and are not notified.
func (s *Store) Clear() {
	s.values = make(map[string]string)
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. The returned function is safe to call more than once.
func (s *Store) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	if s.subs == nil {
		s.subs = make(map[int]Listener)
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}

func (s *Store) notify(key, value string) {
	if len(s.subs) == 0 {
		return
	}
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn(key, value)
		}
	}
}
