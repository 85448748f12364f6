package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"dynui/internal/screen"
)

const homeScreen = `{"screenName":"Home","layout":"vertical","components":[
  {"id":"t","type":"Text","content":"Hi"}
]}`

const settingsScreen = `{"screenName":"Settings","layout":"vertical","components":[]}`

const defaultsJSON = `{"Button":{"cornerRadius":12,"backgroundColor":"#FF0000"},"textfield":{"fontSize":14}}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"defaultScreen.json":     {Data: []byte(homeScreen)},
		"settings.json":          {Data: []byte(settingsScreen)},
		"componentDefaults.json": {Data: []byte(defaultsJSON)},
		"broken.json":            {Data: []byte(`{"screenName":"x"}`)},
		"alt/defaults.json":      {Data: []byte(`{"Text":{"fontSize":30}}`)},
	}
}

func newTestLoader(t *testing.T, cfg Config, fsys fs.FS) (*Loader, *tracetest.InMemoryExporter) {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	l := New(cfg, Options{
		Resources: NewResourcesFS(fsys),
		Tracer:    tp.Tracer("test"),
	})
	return l, exp
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://example.com/screen", true},
		{"http://localhost:9877/screens/home", true},
		{"defaultScreen", false},
		{"ftp://example.com/x", false},
		{"HTTPS://example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.source); got != tt.want {
			t.Errorf("IsRemote(%q): expected %v, got %v", tt.source, tt.want, got)
		}
	}
}

func TestLoadLocal(t *testing.T) {
	l, exp := newTestLoader(t, DefaultConfig(), testFS())

	s, err := l.LoadLocal(context.Background(), "settings")
	require.NoError(t, err)
	assert.Equal(t, "Settings", s.ScreenName)

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "loader.local", spans[0].Name)
}

func TestLoadLocal_EmptySourceUsesDefaultScreen(t *testing.T) {
	l, _ := newTestLoader(t, DefaultConfig(), testFS())

	s, err := l.LoadLocal(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Home", s.ScreenName)
}

func TestLoadLocal_ConfiguredDefaultScreenOverridesSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultScreenFile = "settings"
	l, _ := newTestLoader(t, cfg, testFS())

	s, err := l.LoadScreen(context.Background(), "defaultScreen")
	require.NoError(t, err)
	assert.Equal(t, "Settings", s.ScreenName)
}

func TestLoadLocal_Missing(t *testing.T) {
	l, exp := newTestLoader(t, DefaultConfig(), testFS())

	_, err := l.LoadLocal(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestLoadLocal_DecodeError(t *testing.T) {
	l, _ := newTestLoader(t, DefaultConfig(), testFS())

	_, err := l.LoadLocal(context.Background(), "broken")
	var de *screen.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "layout", de.Field)
}

func TestLoadDefaults(t *testing.T) {
	l, _ := newTestLoader(t, DefaultConfig(), testFS())

	d, err := l.LoadDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, d.Types())

	tf, ok := d.For("TextField")
	require.True(t, ok)
	require.NotNil(t, tf.FontSize)
	assert.Equal(t, 14.0, *tf.FontSize)
}

func TestLoadDefaults_Idempotent(t *testing.T) {
	l, _ := newTestLoader(t, DefaultConfig(), testFS())

	first, err := l.LoadDefaults(context.Background())
	require.NoError(t, err)
	second, err := l.LoadDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadDefaults_ConfiguredFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComponentsDefaultsFile = "alt/defaults"
	l, _ := newTestLoader(t, cfg, testFS())

	d, err := l.LoadDefaults(context.Background())
	require.NoError(t, err)
	_, ok := d.For("Text")
	assert.True(t, ok)
	_, ok = d.For("Button")
	assert.False(t, ok)
}

func TestFetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(homeScreen))
	}))
	defer srv.Close()

	l, exp := newTestLoader(t, DefaultConfig(), testFS())
	s, err := l.LoadScreen(context.Background(), srv.URL+"/screens/home")
	require.NoError(t, err)
	assert.Equal(t, "Home", s.ScreenName)

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "loader.fetch", spans[0].Name)
}

func TestFetchRemote_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	l, _ := newTestLoader(t, DefaultConfig(), testFS())
	_, err := l.FetchRemote(context.Background(), srv.URL)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
	assert.Contains(t, te.Error(), "status 404")
}

func TestFetchRemote_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	l, _ := newTestLoader(t, DefaultConfig(), testFS())
	_, err := l.FetchRemote(context.Background(), srv.URL)

	var de *screen.DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestFetchRemote_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat(" ", MaxBodyBytes+1)))
	}))
	defer srv.Close()

	l, _ := newTestLoader(t, DefaultConfig(), testFS())
	_, err := l.FetchRemote(context.Background(), srv.URL)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 0, te.StatusCode)
}

func TestFetchRemote_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	l, _ := newTestLoader(t, DefaultConfig(), testFS())
	_, err := l.FetchRemote(context.Background(), url)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, url, te.Source)
	assert.NotNil(t, errors.Unwrap(te))
}

func TestResources_Path(t *testing.T) {
	r := NewResourcesFS(fstest.MapFS{})
	assert.Equal(t, "home.json", r.Path("home"))
	assert.Equal(t, "home.json", r.Path("home.json"))
	assert.Equal(t, "screens/home.json", r.Path("/screens/home"))
}

func TestResources_RejectsEscapes(t *testing.T) {
	r := NewResourcesFS(testFS())
	_, err := r.Read("../etc/passwd")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestResources_Nil(t *testing.T) {
	var r *Resources
	_, err := r.Read("home")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
