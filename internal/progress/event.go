// Package progress reports screen and defaults loads to whoever displays
// them (the terminal status line, logs).
package progress

import "time"

// Status indicates the state of a load.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	// StatusStale marks a result that arrived after a newer load was applied
	// and was therefore discarded.
	StatusStale Status = "stale"
)

// Event describes one step of a load.
type Event struct {
	Source    string // screen name or URL
	Status    Status
	Message   string
	Err       error
	Timestamp time.Time
	Metadata  map[string]string // optional: request id, component count, etc.
}

// Emitter receives load events. Implementations must not block.
type Emitter interface {
	Emit(ev Event)
}

// Discard drops every event.
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// ChanEmitter emits events to a channel.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; a slow display must not stall loading
	}
}

// Recorder keeps every event in memory. Useful in tests.
type Recorder struct {
	Events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	r.Events = append(r.Events, ev)
}

// Statuses returns the recorded statuses in order.
func (r *Recorder) Statuses() []Status {
	out := make([]Status, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Status
	}
	return out
}
