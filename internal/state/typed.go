package state

import "dynui/internal/jsonutil"

// FormatBool returns the stored form of a boolean.
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// GetBool reports whether key holds "true".
func (s *Store) GetBool(key string) bool {
	return s.Get(key) == "true"
}

// SetBool stores "true" or "false".
func (s *Store) SetBool(key string, v bool) {
	s.Set(key, FormatBool(v))
}

// Toggle flips key between "true" and "false". Any value other than "true",
// including an unset key, flips to "true".
func (s *Store) Toggle(key string) string {
	next := FormatBool(!s.GetBool(key))
	s.Set(key, next)
	return next
}

// GetNumber parses the value of key as a number.
func (s *Store) GetNumber(key string) (float64, bool) {
	return jsonutil.ParseNumber(s.Get(key))
}

// SetNumber stores v in its decimal text form.
func (s *Store) SetNumber(key string, v float64) {
	s.Set(key, jsonutil.FormatNumber(v))
}
