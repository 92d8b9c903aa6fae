// Package window wraps one target window and its owning application.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/types"
)

var (
	// ErrNoFocusedWindow means no application has focus or it has no focused window
	ErrNoFocusedWindow = errors.New("no focused window")
	// ErrAttributeUnavailable means a query failed or returned the wrong value type
	ErrAttributeUnavailable = errors.New("attribute unavailable")
)

// Handle is a proxy for one window. It holds references only; every query
// goes to the accessibility service. Resolve a new Handle for each tick.
type Handle struct {
	svc    ax.Service
	app    ax.Application
	window ax.Element
}

// Frontmost resolves the focused window of the frontmost application
func Frontmost(ctx context.Context, svc ax.Service) (*Handle, error) {
	app, err := svc.FrontmostApplication(ctx)
	if err != nil {
		logging.Debug().Err(err).Msg("no frontmost application")
		return nil, fmt.Errorf("%w: %w", ErrNoFocusedWindow, err)
	}
	return forApp(ctx, svc, app)
}

// ForApplication resolves the focused window of the application with pid
func ForApplication(ctx context.Context, svc ax.Service, pid int) (*Handle, error) {
	app, err := svc.Application(ctx, pid)
	if err != nil {
		logging.Debug().Err(err).Int("pid", pid).Msg("application not found")
		return nil, fmt.Errorf("%w: %w", ErrNoFocusedWindow, err)
	}
	return forApp(ctx, svc, app)
}

func forApp(ctx context.Context, svc ax.Service, app ax.Application) (*Handle, error) {
	v, err := svc.GetAttribute(ctx, app.Element, ax.AttrFocusedWindow)
	if err == nil {
		err = v.Expect(ax.TypeElement)
	}
	if err != nil {
		logging.Debug().Err(err).Int("pid", app.PID).Str("app", app.Name).Msg("no focused window")
		return nil, fmt.Errorf("%w: %s: %w", ErrNoFocusedWindow, app.Name, err)
	}

	return &Handle{svc: svc, app: app, window: v.Element}, nil
}

// New builds a handle from known references
func New(svc ax.Service, app ax.Application, window ax.Element) *Handle {
	return &Handle{svc: svc, app: app, window: window}
}

// Application returns the owning application
func (h *Handle) Application() ax.Application {
	return h.app
}

// Element returns the window element reference
func (h *Handle) Element() ax.Element {
	return h.window
}

// get reads an attribute and checks its value type
func (h *Handle) get(ctx context.Context, el ax.Element, attr ax.Attribute, want ax.ValueType) (ax.Value, error) {
	if el == "" {
		return ax.Value{}, fmt.Errorf("%w: %s: %w", ErrAttributeUnavailable, attr, ax.ErrInvalidElement)
	}

	v, err := h.svc.GetAttribute(ctx, el, attr)
	if err == nil {
		err = v.Expect(want)
	}
	if err != nil {
		logging.Debug().Err(err).Str("element", string(el)).Str("attribute", string(attr)).Msg("attribute read failed")
		return ax.Value{}, fmt.Errorf("%w: %s: %w", ErrAttributeUnavailable, attr, err)
	}
	return v, nil
}

// set issues exactly one write command
func (h *Handle) set(ctx context.Context, attr ax.Attribute, v ax.Value) error {
	if h.window == "" {
		return fmt.Errorf("%w: %s: %w", ErrAttributeUnavailable, attr, ax.ErrInvalidElement)
	}

	if err := h.svc.SetAttribute(ctx, h.window, attr, v); err != nil {
		logging.Warn().Err(err).Str("attribute", string(attr)).Str("value", v.String()).Msg("failed to set attribute")
		return fmt.Errorf("%w: %s: %w", ErrAttributeUnavailable, attr, err)
	}
	return nil
}

// Position returns the window origin in flipped-global coordinates
func (h *Handle) Position(ctx context.Context) (types.Point, error) {
	v, err := h.get(ctx, h.window, ax.AttrPosition, ax.TypePoint)
	if err != nil {
		return types.Point{}, err
	}
	return v.Point, nil
}

// SetPosition moves the window origin, in flipped-global coordinates
func (h *Handle) SetPosition(ctx context.Context, p types.Point) error {
	return h.set(ctx, ax.AttrPosition, ax.PointValue(p))
}

// Size returns the window size
func (h *Handle) Size(ctx context.Context) (types.Size, error) {
	v, err := h.get(ctx, h.window, ax.AttrSize, ax.TypeSize)
	if err != nil {
		return types.Size{}, err
	}
	return v.Size, nil
}

// SetSize resizes the window
func (h *Handle) SetSize(ctx context.Context, s types.Size) error {
	return h.set(ctx, ax.AttrSize, ax.SizeValue(s))
}

// AppTitle returns the owning application's title
func (h *Handle) AppTitle(ctx context.Context) (string, error) {
	v, err := h.get(ctx, h.app.Element, ax.AttrTitle, ax.TypeString)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

// WindowTitle returns the window's title
func (h *Handle) WindowTitle(ctx context.Context) (string, error) {
	v, err := h.get(ctx, h.window, ax.AttrTitle, ax.TypeString)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

// Activate brings the owning application to the front
func (h *Handle) Activate(ctx context.Context, opts ax.ActivationOptions) error {
	if err := h.svc.Activate(ctx, h.app.PID, opts); err != nil {
		logging.Warn().Err(err).Int("pid", h.app.PID).Msg("failed to activate application")
		return fmt.Errorf("activate %s: %w", h.app.Name, err)
	}
	return nil
}
