package state

import "strings"

// Getter reads state values by key.
type Getter interface {
	Get(key string) string
}

// Interpolate replaces every {key} placeholder in text with the current value
// of key. Unset keys become "". Placeholders are scanned once, left to right,
// so braces inside substituted values are never expanded. "{}" and an
// unterminated "{" are copied through unchanged.
func Interpolate(text string, values Getter) string {
	if values == nil || !strings.Contains(text, "{") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		tail := rest[open+1:]
		end := strings.IndexAny(tail, "{}")
		switch {
		case end < 0:
			// no closing brace anywhere
			b.WriteString(rest[open:])
			return b.String()
		case tail[end] == '{' || end == 0:
			// nested opener or "{}": emit the brace literally and rescan after it
			b.WriteByte('{')
			rest = tail
			continue
		}
		b.WriteString(values.Get(tail[:end]))
		rest = tail[end+1:]
	}
	return b.String()
}
