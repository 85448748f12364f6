package action

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynui/internal/nav"
	"dynui/internal/screen"
	"dynui/internal/state"
)

type recordingOpener struct {
	opened []string
	err    error
}

func (r *recordingOpener) Open(_ context.Context, u *url.URL) error {
	r.opened = append(r.opened, u.String())
	return r.err
}

type fixture struct {
	store  *state.Store
	path   *nav.Path
	opener *recordingOpener
	logs   *bytes.Buffer
	d      *Dispatcher
}

func newFixture() *fixture {
	f := &fixture{
		store:  state.NewStore(),
		path:   &nav.Path{},
		opener: &recordingOpener{},
		logs:   &bytes.Buffer{},
	}
	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.d = NewDispatcher(f.store, f.path, f.opener, logger)
	return f
}

func act(tag string, payload map[string]string) screen.DynamicAction {
	return screen.NewAction(tag, payload)
}

func TestDispatch_Navigate(t *testing.T) {
	f := newFixture()

	err := f.d.Dispatch(context.Background(), act("navigate", map[string]string{"destination": "detail"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"detail"}, f.path.Entries())
}

func TestDispatch_NavigateWithoutDestination(t *testing.T) {
	f := newFixture()

	err := f.d.Dispatch(context.Background(), act("navigate", nil))
	assert.ErrorIs(t, err, ErrMissingPayload)
	assert.Equal(t, 0, f.path.Len())

	err = f.d.Dispatch(context.Background(), act("navigate", map[string]string{"dest": "x"}))
	assert.ErrorIs(t, err, ErrMissingPayload)
	assert.Equal(t, 0, f.path.Len())
}

func TestDispatch_UpdateState(t *testing.T) {
	f := newFixture()

	err := f.d.Dispatch(context.Background(), act("updateState", map[string]string{"key": "x", "value": "5"}))
	require.NoError(t, err)
	assert.Equal(t, "5", f.store.Get("x"))
}

func TestDispatch_UpdateStateMissingPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"no payload", nil},
		{"no value", map[string]string{"key": "x"}},
		{"no key", map[string]string{"value": "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			err := f.d.Dispatch(context.Background(), act("updateState", tt.payload))
			assert.ErrorIs(t, err, ErrMissingPayload)
			assert.Equal(t, 0, f.store.Len())
		})
	}
}

func TestDispatch_ToggleTwice(t *testing.T) {
	f := newFixture()
	toggle := act("toggle", map[string]string{"key": "k"})

	require.NoError(t, f.d.Dispatch(context.Background(), toggle))
	assert.Equal(t, "true", f.store.Get("k"))

	require.NoError(t, f.d.Dispatch(context.Background(), toggle))
	assert.Equal(t, "false", f.store.Get("k"))
}

func TestDispatch_ToggleMissingKey(t *testing.T) {
	f := newFixture()
	err := f.d.Dispatch(context.Background(), act("toggle", map[string]string{}))
	assert.ErrorIs(t, err, ErrMissingPayload)
	assert.Equal(t, 0, f.store.Len())
}

func TestDispatch_OpenURL(t *testing.T) {
	f := newFixture()

	err := f.d.Dispatch(context.Background(), act("openURL", map[string]string{"url": "https://example.com/docs"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/docs"}, f.opener.opened)
	assert.Equal(t, 0, f.store.Len(), "openURL must not touch state")
	assert.Equal(t, 0, f.path.Len())
}

func TestDispatch_OpenURLInvalid(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative/path", "://missing-scheme"} {
		f := newFixture()
		err := f.d.Dispatch(context.Background(), act("openURL", map[string]string{"url": raw}))
		assert.ErrorIs(t, err, ErrInvalidURL, "url %q", raw)
		assert.Empty(t, f.opener.opened)
	}
}

func TestDispatch_OpenURLOpenerFailure(t *testing.T) {
	f := newFixture()
	f.opener.err = errors.New("no browser")

	err := f.d.Dispatch(context.Background(), act("openURL", map[string]string{"url": "https://example.com"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no browser")
}

func TestDispatch_OpenURLWithoutOpener(t *testing.T) {
	d := NewDispatcher(state.NewStore(), &nav.Path{}, nil, nil)
	err := d.Dispatch(context.Background(), act("openURL", map[string]string{"url": "mailto:ada@example.com"}))
	assert.NoError(t, err)
}

func TestDispatch_UnknownTypeIsDiagnosed(t *testing.T) {
	f := newFixture()

	err := f.d.Dispatch(context.Background(), act("reboot", map[string]string{"key": "k"}))
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.path.Len())
	assert.Contains(t, f.logs.String(), "action skipped")
	assert.Contains(t, f.logs.String(), "reboot")
}

func TestOpenerFunc(t *testing.T) {
	var got string
	o := OpenerFunc(func(_ context.Context, u *url.URL) error {
		got = u.Host
		return nil
	})
	u, ok := ParseURL("https://example.com/x")
	require.True(t, ok)
	require.NoError(t, o.Open(context.Background(), u))
	assert.Equal(t, "example.com", got)
}

func TestBrowserOpener_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	u, _ := ParseURL("https://example.com")
	assert.ErrorIs(t, BrowserOpener{}.Open(ctx, u), context.Canceled)
}
