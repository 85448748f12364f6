package progress

import (
	"errors"
	"testing"
	"time"
)

func TestStatus_Constants(t *testing.T) {
	if StatusRunning != "running" {
		t.Errorf("StatusRunning: expected 'running', got %q", StatusRunning)
	}
	if StatusDone != "done" {
		t.Errorf("StatusDone: expected 'done', got %q", StatusDone)
	}
	if StatusError != "error" {
		t.Errorf("StatusError: expected 'error', got %q", StatusError)
	}
	if StatusStale != "stale" {
		t.Errorf("StatusStale: expected 'stale', got %q", StatusStale)
	}
}

func TestChanEmitter_Emit_SetsTimestampWhenZero(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}

	emitter.Emit(Event{Source: "home", Status: StatusRunning})

	got := <-ch
	if got.Timestamp.IsZero() {
		t.Error("Emit: expected timestamp to be set when zero")
	}
	if got.Source != "home" || got.Status != StatusRunning {
		t.Errorf("Emit: got Source=%q Status=%q", got.Source, got.Status)
	}
}

func TestChanEmitter_Emit_PreservesTimestamp(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}

	ts := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	emitter.Emit(Event{Source: "home", Status: StatusDone, Timestamp: ts})

	got := <-ch
	if !got.Timestamp.Equal(ts) {
		t.Errorf("Emit: expected preserved timestamp %v, got %v", ts, got.Timestamp)
	}
}

func TestChanEmitter_Emit_DropsWhenFull(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}

	emitter.Emit(Event{Source: "first"})
	emitter.Emit(Event{Source: "dropped"})

	got := <-ch
	if got.Source != "first" {
		t.Errorf("Emit full: expected 'first', got %q", got.Source)
	}
	select {
	case <-ch:
		t.Error("Emit full: expected dropped event not to be sent")
	default:
	}
}

func TestChanEmitter_Emit_CarriesError(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}
	cause := errors.New("boom")

	emitter.Emit(Event{Source: "home", Status: StatusError, Err: cause, Metadata: map[string]string{"id": "1"}})

	got := <-ch
	if !errors.Is(got.Err, cause) {
		t.Errorf("Emit: expected error %v, got %v", cause, got.Err)
	}
	if got.Metadata["id"] != "1" {
		t.Errorf("Emit: expected metadata, got %v", got.Metadata)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Emit(Event{Status: StatusRunning})
	r.Emit(Event{Status: StatusDone})

	got := r.Statuses()
	if len(got) != 2 || got[0] != StatusRunning || got[1] != StatusDone {
		t.Errorf("Statuses: expected [running done], got %v", got)
	}
	if r.Events[0].Timestamp.IsZero() {
		t.Error("Recorder: expected timestamp to be set")
	}
}

func TestDiscard(t *testing.T) {
	Discard.Emit(Event{Status: StatusError})
}
