package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	s := NewStore()
	s.Set("name", "Ada")
	s.Set("count", "3")
	s.Set("tricky", "{count}")

	tests := []struct {
		name string
		text string
		want string
	}{
		{"single", "Hello {name}", "Hello Ada"},
		{"missing key", "Hello {missing}", "Hello "},
		{"repeated", "{name} and {name}", "Ada and Ada"},
		{"several keys", "{name} has {count} items", "Ada has 3 items"},
		{"no placeholders", "plain text", "plain text"},
		{"empty braces", "set {} literal", "set {} literal"},
		{"unterminated", "open {name", "open {name"},
		{"nested opener", "a {{name}}", "a {Ada}"},
		{"no recursive expansion", "value={tricky}", "value={count}"},
		{"stray closer", "done} {name}", "done} Ada"},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.text, s))
		})
	}
}

func TestInterpolate_EmptyStore(t *testing.T) {
	assert.Equal(t, "Hello ", Interpolate("Hello {missing}", NewStore()))
}

func TestInterpolate_Idempotent(t *testing.T) {
	s := NewStore()
	s.Set("name", "Ada")
	once := Interpolate("Hi {name}!", s)
	assert.Equal(t, once, Interpolate(once, s))
}

func TestInterpolate_NilGetter(t *testing.T) {
	assert.Equal(t, "Hello {name}", Interpolate("Hello {name}", nil))
}

func TestInterpolate_DoesNotCreateKeys(t *testing.T) {
	s := NewStore()
	Interpolate("{a}{b}", s)
	assert.Equal(t, 0, s.Len())
}
