package action

import (
	"context"
	"net/url"

	"github.com/pkg/browser"
)

// Opener hands an external URL to whatever presents external resources.
type Opener interface {
	Open(ctx context.Context, u *url.URL) error
}

// OpenerFunc adapts a function into an Opener.
type OpenerFunc func(ctx context.Context, u *url.URL) error

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, u *url.URL) error {
	return f(ctx, u)
}

// BrowserOpener opens URLs with the system browser.
type BrowserOpener struct{}

// Open launches the default browser for u.
func (BrowserOpener) Open(ctx context.Context, u *url.URL) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return browser.OpenURL(u.String())
}

// ParseURL parses s and requires an absolute URL: a scheme plus either a
// host ("https://example.com") or an opaque part ("mailto:ada@example.com").
func ParseURL(s string) (*url.URL, bool) {
	if s == "" {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if u.Host == "" && u.Opaque == "" {
		return nil, false
	}
	return u, true
}
