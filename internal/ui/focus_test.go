package ui

import "testing"

func TestFocusManager_NextPrevWrap(t *testing.T) {
	var changes []string
	f := &FocusManager{OnChange: func(from, to string) { changes = append(changes, from+">"+to) }}
	f.SetOrder([]string{"a#0", "b#0", "c#0"})

	if f.Current != "a#0" {
		t.Fatalf("SetOrder: expected focus on first stop, got %q", f.Current)
	}
	if got := f.Next(); got != "b#0" {
		t.Errorf("Next: expected b#0, got %q", got)
	}
	f.Next()
	if got := f.Next(); got != "a#0" {
		t.Errorf("Next: expected wrap to a#0, got %q", got)
	}
	if got := f.Prev(); got != "c#0" {
		t.Errorf("Prev: expected wrap to c#0, got %q", got)
	}
	if len(changes) != 5 {
		t.Errorf("OnChange: expected 5 changes, got %v", changes)
	}
}

func TestFocusManager_SetOrderKeepsSurvivingFocus(t *testing.T) {
	f := &FocusManager{}
	f.SetOrder([]string{"a#0", "b#0"})
	f.SetFocus("b#0")

	f.SetOrder([]string{"x#0", "b#0"})
	if f.Current != "b#0" {
		t.Errorf("SetOrder: expected focus to stay on b#0, got %q", f.Current)
	}

	f.SetOrder([]string{"x#0"})
	if f.Current != "x#0" {
		t.Errorf("SetOrder: expected focus to move to x#0, got %q", f.Current)
	}

	f.SetOrder(nil)
	if f.Current != "" {
		t.Errorf("SetOrder(nil): expected no focus, got %q", f.Current)
	}
	if f.Next() != "" || f.Prev() != "" {
		t.Error("Next/Prev on empty order: expected empty")
	}
}

func TestFocusManager_SetFocusUnknown(t *testing.T) {
	f := &FocusManager{Order: []string{"a#0"}}
	if f.SetFocus("missing") {
		t.Error("SetFocus: expected false for unknown key")
	}
	if !f.SetFocus("a#0") || f.Current != "a#0" {
		t.Errorf("SetFocus: expected a#0, got %q", f.Current)
	}
}
