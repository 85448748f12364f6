// Package loader fetches screen descriptions and component defaults from
// local resources or remote URLs and decodes them.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"dynui/internal/screen"
	"dynui/internal/telemetry"
)

// MaxBodyBytes caps the size of a remote screen document.
const MaxBodyBytes = 8 << 20

// TransportError reports a remote fetch that produced no usable body.
type TransportError struct {
	Source     string
	StatusCode int // 0 when the request itself failed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Options carries the loader's collaborators. Zero values are filled in.
type Options struct {
	Resources *Resources
	Client    *http.Client
	Logger    *slog.Logger
	Tracer    oteltrace.Tracer
}

// Loader reads screens and defaults. It holds no mutable state and may be
// used from several goroutines.
type Loader struct {
	cfg       Config
	resources *Resources
	client    *http.Client
	logger    *slog.Logger
	tracer    oteltrace.Tracer
}

// New builds a loader for cfg.
func New(cfg Config, opts Options) *Loader {
	if opts.Resources == nil {
		dir := cfg.ResourcesDir
		if dir == "" {
			dir = DefaultResourcesDir
		}
		opts.Resources = NewResources(dir)
	}
	if opts.Client == nil {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = DefaultHTTPTimeout
		}
		opts.Client = &http.Client{Timeout: timeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Tracer()
	}
	return &Loader{
		cfg:       cfg,
		resources: opts.Resources,
		client:    opts.Client,
		logger:    opts.Logger,
		tracer:    opts.Tracer,
	}
}

// Config returns the loader's configuration.
func (l *Loader) Config() Config {
	return l.cfg
}

// IsRemote reports whether source names a remote screen.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// LoadDefaults reads and decodes the component defaults resource.
func (l *Loader) LoadDefaults(ctx context.Context) (screen.ComponentDefaults, error) {
	name := l.cfg.DefaultsResource()
	_, span := l.tracer.Start(ctx, "loader.defaults",
		oteltrace.WithAttributes(attribute.String("dynui.resource", name)))
	defer span.End()

	data, err := l.resources.Read(name)
	if err != nil {
		return nil, fail(span, err)
	}
	defaults, err := screen.DecodeDefaults(data)
	if err != nil {
		return nil, fail(span, fmt.Errorf("defaults %q: %w", name, err))
	}
	span.SetAttributes(attribute.Int("dynui.defaults.types", defaults.Types()))
	l.logger.Debug("component defaults loaded", "resource", name, "types", defaults.Types())
	return defaults, nil
}

// LoadLocal reads and decodes a local screen. The configured default screen
// file, if any, takes precedence over source.
func (l *Loader) LoadLocal(ctx context.Context, source string) (*screen.ScreenData, error) {
	name := l.cfg.ScreenResource(source)
	_, span := l.tracer.Start(ctx, "loader.local",
		oteltrace.WithAttributes(attribute.String("dynui.resource", name)))
	defer span.End()

	data, err := l.resources.Read(name)
	if err != nil {
		return nil, fail(span, err)
	}
	s, err := screen.Decode(data)
	if err != nil {
		return nil, fail(span, fmt.Errorf("screen %q: %w", name, err))
	}
	span.SetAttributes(attribute.Int("dynui.components", s.Count()))
	return s, nil
}

// FetchRemote GETs url and decodes the body as a screen.
// Non-2xx responses are transport errors.
func (l *Loader) FetchRemote(ctx context.Context, url string) (*screen.ScreenData, error) {
	ctx, span := l.tracer.Start(ctx, "loader.fetch",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(semconv.HTTPURLKey.String(url), semconv.HTTPMethodKey.String(http.MethodGet)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fail(span, &TransportError{Source: url, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fail(span, &TransportError{Source: url, Err: err})
	}
	defer resp.Body.Close()

	span.SetAttributes(semconv.HTTPStatusCodeKey.Int(resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(span, &TransportError{Source: url, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fail(span, &TransportError{Source: url, Err: err})
	}
	if len(body) > MaxBodyBytes {
		return nil, fail(span, &TransportError{Source: url, Err: fmt.Errorf("body exceeds %d bytes", MaxBodyBytes)})
	}

	s, err := screen.Decode(body)
	if err != nil {
		return nil, fail(span, fmt.Errorf("screen %s: %w", url, err))
	}
	span.SetAttributes(attribute.Int("dynui.components", s.Count()))
	return s, nil
}

// LoadScreen loads source from wherever it lives.
func (l *Loader) LoadScreen(ctx context.Context, source string) (*screen.ScreenData, error) {
	if IsRemote(source) {
		return l.FetchRemote(ctx, source)
	}
	return l.LoadLocal(ctx, source)
}

func fail(span oteltrace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
