// Package session owns one interpreter session: the current screen, the
// component defaults, the state store and the navigation path.
//
// A Session is not safe for concurrent use. Hosts call it from a single
// goroutine; remote loads hand back a Task that may run elsewhere and whose
// result is fed back through Publish.
package session

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"dynui/internal/action"
	"dynui/internal/loader"
	"dynui/internal/nav"
	"dynui/internal/progress"
	"dynui/internal/screen"
	"dynui/internal/state"
	"dynui/internal/style"
)

var errEmptyResult = errors.New("load produced no screen")

// LoadResult is the outcome of one screen load.
type LoadResult struct {
	ID     ulid.ULID
	Source string
	Screen *screen.ScreenData
	Err    error
}

// Task performs a pending remote load. It touches no session state and may
// run on any goroutine.
type Task func() LoadResult

// Options carries the session's collaborators.
type Options struct {
	Loader  *loader.Loader
	Opener  action.Opener
	Emitter progress.Emitter
	Logger  *slog.Logger
}

// Session is the single owner of interpreter state.
type Session struct {
	loader     *loader.Loader
	store      *state.Store
	path       *nav.Path
	dispatcher *action.Dispatcher
	resolver   *style.Resolver
	emitter    progress.Emitter
	logger     *slog.Logger

	screen   *screen.ScreenData
	defaults screen.ComponentDefaults

	entropy     *ulid.MonotonicEntropy
	lastIssued  ulid.ULID
	lastApplied ulid.ULID
	lastSource  string
	lastErr     error
}

// New creates an empty session. Nothing is loaded until LoadScreen.
func New(opts Options) *Session {
	if opts.Loader == nil {
		opts.Loader = loader.New(loader.DefaultConfig(), loader.Options{Logger: opts.Logger})
	}
	if opts.Emitter == nil {
		opts.Emitter = progress.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	store := state.NewStore()
	path := &nav.Path{}
	return &Session{
		loader:     opts.Loader,
		store:      store,
		path:       path,
		dispatcher: action.NewDispatcher(store, path, opts.Opener, opts.Logger),
		resolver:   style.NewResolver(nil),
		emitter:    opts.Emitter,
		logger:     opts.Logger,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// LoadScreen refreshes the component defaults and then loads source.
// Local sources are loaded and published before LoadScreen returns, and the
// returned Task is nil. Remote sources return a Task; run it off the owner
// goroutine and pass its result to Publish.
func (s *Session) LoadScreen(ctx context.Context, source string) Task {
	s.refreshDefaults(ctx)

	id := s.nextID()
	s.lastSource = source
	s.emit(progress.Event{Source: source, Status: progress.StatusRunning, Metadata: idMeta(id)})

	if !loader.IsRemote(source) {
		sd, err := s.loader.LoadLocal(ctx, source)
		s.Publish(LoadResult{ID: id, Source: source, Screen: sd, Err: err})
		return nil
	}

	l := s.loader
	return func() LoadResult {
		sd, err := l.FetchRemote(ctx, source)
		return LoadResult{ID: id, Source: source, Screen: sd, Err: err}
	}
}

// LoadScreenSync loads source and waits for the result, remote or not.
// The returned error is the load's own failure, if any.
func (s *Session) LoadScreenSync(ctx context.Context, source string) error {
	task := s.LoadScreen(ctx, source)
	if task == nil {
		return s.lastErr
	}
	r := task()
	s.Publish(r)
	return r.Err
}

// Reload repeats the most recent LoadScreen source.
func (s *Session) Reload(ctx context.Context) Task {
	return s.LoadScreen(ctx, s.lastSource)
}

// Publish applies a load result. Results older than the newest one already
// published are discarded; a failed load leaves the current screen in place.
// Reports whether the screen was replaced.
func (s *Session) Publish(r LoadResult) bool {
	meta := idMeta(r.ID)
	if r.ID.Compare(s.lastApplied) <= 0 {
		s.logger.Debug("stale load discarded", "source", r.Source, "id", r.ID.String())
		s.emit(progress.Event{Source: r.Source, Status: progress.StatusStale, Metadata: meta})
		return false
	}
	s.lastApplied = r.ID

	if r.Err != nil || r.Screen == nil {
		err := r.Err
		if err == nil {
			err = errEmptyResult
		}
		s.lastErr = err
		s.logger.Warn("screen load failed", "source", r.Source, "err", err)
		s.emit(progress.Event{Source: r.Source, Status: progress.StatusError, Err: err, Metadata: meta})
		return false
	}

	s.screen = r.Screen
	s.lastErr = nil
	meta["components"] = strconv.Itoa(r.Screen.Count())
	s.logger.Info("screen published", "source", r.Source, "screen", r.Screen.ScreenName)
	s.emit(progress.Event{Source: r.Source, Status: progress.StatusDone, Message: r.Screen.ScreenName, Metadata: meta})
	return true
}

// Reset clears the state store and navigation path. The current screen and
// defaults are kept. Loads never reset on their own.
func (s *Session) Reset() {
	s.store.Clear()
	s.path.Reset()
}

// Pending reports whether a load was issued after the last published result.
func (s *Session) Pending() bool {
	return s.lastIssued.Compare(s.lastApplied) > 0
}

// Screen returns the current screen, or nil before the first successful load.
func (s *Session) Screen() *screen.ScreenData { return s.screen }

// Defaults returns the current component defaults.
func (s *Session) Defaults() screen.ComponentDefaults { return s.defaults }

// Store returns the session state store.
func (s *Session) Store() *state.Store { return s.store }

// Path returns the navigation path.
func (s *Session) Path() *nav.Path { return s.path }

// Source returns the most recently requested source.
func (s *Session) Source() string { return s.lastSource }

// Err returns the error of the most recent published load, if it failed.
func (s *Session) Err() error { return s.lastErr }

// Style resolves the effective style of c against the current defaults.
func (s *Session) Style(c *screen.Component) style.Style {
	return s.resolver.Resolve(c)
}

// Binding returns a two-way binding for key. A nil key yields a binding
// to a fresh, unique key.
func (s *Session) Binding(key *string) state.Binding {
	return s.store.Binding(key)
}

// Interpolate substitutes {key} references in text with store values.
func (s *Session) Interpolate(text string) string {
	return state.Interpolate(text, s.store)
}

// HandleAction dispatches a component's action. A nil action is a no-op.
// The error is advisory.
func (s *Session) HandleAction(ctx context.Context, a *screen.DynamicAction) error {
	if a == nil {
		return nil
	}
	return s.dispatcher.Dispatch(ctx, *a)
}

func (s *Session) refreshDefaults(ctx context.Context) {
	d, err := s.loader.LoadDefaults(ctx)
	if err != nil {
		s.logger.Warn("component defaults not refreshed", "err", err)
		return
	}
	s.defaults = d
	s.resolver = style.NewResolver(d)
}

func (s *Session) nextID() ulid.ULID {
	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		// Monotonic entropy overflowed within one millisecond.
		id = ulid.Make()
	}
	if id.Compare(s.lastIssued) <= 0 {
		id = ulid.MustNew(s.lastIssued.Time()+1, s.entropy)
	}
	s.lastIssued = id
	return id
}

func (s *Session) emit(ev progress.Event) {
	s.emitter.Emit(ev)
}

func idMeta(id ulid.ULID) map[string]string {
	return map[string]string{"id": id.String()}
}
