// Package action interprets user-triggered actions against the session
// state store and navigation path.
package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dynui/internal/nav"
	"dynui/internal/screen"
	"dynui/internal/state"
)

// Diagnostics returned by Dispatch. None of them is fatal: the action is
// skipped and the session carries on.
var (
	ErrUnknownAction  = errors.New("unknown action type")
	ErrMissingPayload = errors.New("missing action payload")
	ErrInvalidURL     = errors.New("invalid URL")
)

// Dispatcher applies one action at a time. It holds no state of its own.
type Dispatcher struct {
	store  *state.Store
	path   *nav.Path
	opener Opener
	logger *slog.Logger
}

// NewDispatcher wires a dispatcher to the session store and path.
// A nil opener makes openURL actions no-ops; a nil logger uses slog.Default.
func NewDispatcher(store *state.Store, path *nav.Path, opener Opener, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:  store,
		path:   path,
		opener: opener,
		logger: logger,
	}
}

// Dispatch interprets a. The returned error is a diagnostic only; it is
// also logged, and callers are free to ignore it.
func (d *Dispatcher) Dispatch(ctx context.Context, a screen.DynamicAction) error {
	err := d.apply(ctx, a)
	if err != nil {
		d.logger.Warn("action skipped", "type", a.Type, "err", err)
		return err
	}
	d.logger.Debug("action applied", "type", a.Type)
	return nil
}

func (d *Dispatcher) apply(ctx context.Context, a screen.DynamicAction) error {
	switch a.Kind {
	case screen.ActionNavigate:
		dest, err := payloadArg(a, screen.PayloadDestination)
		if err != nil {
			return err
		}
		d.path.Append(dest)
		return nil

	case screen.ActionUpdateState:
		key, err := payloadArg(a, screen.PayloadKey)
		if err != nil {
			return err
		}
		value, err := payloadArg(a, screen.PayloadValue)
		if err != nil {
			return err
		}
		d.store.Set(key, value)
		return nil

	case screen.ActionOpenURL:
		raw, err := payloadArg(a, screen.PayloadURL)
		if err != nil {
			return err
		}
		u, ok := ParseURL(raw)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
		}
		if d.opener == nil {
			return nil
		}
		if err := d.opener.Open(ctx, u); err != nil {
			return fmt.Errorf("open %s: %w", u, err)
		}
		return nil

	case screen.ActionToggle:
		key, err := payloadArg(a, screen.PayloadKey)
		if err != nil {
			return err
		}
		d.store.Toggle(key)
		return nil

	case screen.ActionUnknown:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

func payloadArg(a screen.DynamicAction, name string) (string, error) {
	v, ok := a.Arg(name)
	if !ok {
		return "", fmt.Errorf("%w: %s requires %q", ErrMissingPayload, a.Type, name)
	}
	return v, nil
}
