// Package app owns the lifecycle of one editing session: which application
// is targeted, how key events and named commands map onto geometry
// operations, and the refresh loop.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/config"
	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/geometry"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/types"
	"github.com/yourusername/mado-cli/internal/window"
)

// ErrClosed is returned when the user asks to close the session
var ErrClosed = errors.New("session closed")

// NoActiveWindowTitle is shown when no window can be read
const NoActiveWindowTitle = "No Active Window"

// State is one session against a target application
type State struct {
	svc  ax.Service
	topo display.Topology
	cfg  *config.Config

	target    ax.Application
	hasTarget bool
}

// New creates a session. A nil config means the built-in defaults.
func New(svc ax.Service, topo display.Topology, cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.Default()
	}
	return &State{svc: svc, topo: topo, cfg: cfg}
}

// Config returns the session configuration
func (s *State) Config() *config.Config {
	return s.cfg
}

// Open resolves the target application: the one with pid, or the frontmost
// application when pid is 0.
func (s *State) Open(ctx context.Context, pid int) error {
	var (
		app ax.Application
		err error
	)
	if pid == 0 {
		app, err = s.svc.FrontmostApplication(ctx)
	} else {
		app, err = s.svc.Application(ctx, pid)
	}
	if err != nil {
		s.hasTarget = false
		return fmt.Errorf("%w: %w", window.ErrNoFocusedWindow, err)
	}

	s.target = app
	s.hasTarget = true
	logging.Info().Int("pid", app.PID).Str("app", app.Name).Msg("session opened")
	return nil
}

// Close hands focus back to the target application
func (s *State) Close(ctx context.Context) error {
	if !s.hasTarget {
		return nil
	}
	logging.Info().Int("pid", s.target.PID).Msg("session closed")
	if err := s.svc.Activate(ctx, s.target.PID, ax.ActivateIgnoringOtherApps); err != nil {
		return fmt.Errorf("reactivate %s: %w", s.target.Name, err)
	}
	return nil
}

// Target returns the target application, if any
func (s *State) Target() (ax.Application, bool) {
	return s.target, s.hasTarget
}

// handle resolves a fresh window handle; handles are never reused
func (s *State) handle(ctx context.Context) (*window.Handle, error) {
	if s.hasTarget {
		return window.ForApplication(ctx, s.svc, s.target.PID)
	}
	return window.Frontmost(ctx, s.svc)
}

// geometry resolves a fresh handle and wraps it
func (s *State) geometry(ctx context.Context) (*geometry.Geometry, error) {
	h, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.New(h, s.topo, s.cfg.GetAlignMode()), nil
}

// Snapshot is what a refresh tick displays
type Snapshot struct {
	Available   bool              `json:"available"`
	PID         int               `json:"pid,omitempty"`
	AppTitle    string            `json:"appTitle,omitempty"`
	WindowTitle string            `json:"windowTitle,omitempty"`
	Frame       types.Rect        `json:"frame"` // monitor-local
	Monitor     display.Monitor   `json:"monitor"`
	Monitors    []display.Monitor `json:"monitors,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// Title returns the application title or the no-window placeholder
func (s Snapshot) Title() string {
	if !s.Available {
		return NoActiveWindowTitle
	}
	return s.AppTitle
}

// Global returns the frame in unflipped-global coordinates
func (s Snapshot) Global() types.Rect {
	return s.Frame.Offset(s.Monitor.Frame.Origin())
}

// Refresh reads the current window state. Failures are reported in the
// snapshot rather than returned.
func (s *State) Refresh(ctx context.Context) Snapshot {
	var snap Snapshot

	monitors, err := s.topo.Monitors(ctx)
	if err != nil {
		snap.Error = err.Error()
		return snap
	}
	snap.Monitors = monitors

	h, err := s.handle(ctx)
	if err != nil {
		snap.Error = err.Error()
		return snap
	}
	snap.PID = h.Application().PID

	// Window title is optional; many windows have none
	snap.WindowTitle, _ = h.WindowTitle(ctx)

	appTitle, err := h.AppTitle(ctx)
	if err != nil {
		snap.Error = err.Error()
		return snap
	}
	snap.AppTitle = appTitle

	p, err := geometry.New(h, s.topo, s.cfg.GetAlignMode()).Placement(ctx)
	if err != nil {
		snap.Error = err.Error()
		return snap
	}
	snap.Frame = p.Local
	snap.Monitor = p.Monitor
	snap.Available = true
	return snap
}

// SetFrame assigns a monitor-local frame, as a manual edit would
func (s *State) SetFrame(ctx context.Context, local types.Rect) error {
	g, err := s.geometry(ctx)
	if err != nil {
		return err
	}
	return g.SetFrame(ctx, local)
}

// Snap writes a preset's raw flipped-global rectangle directly to the
// window, bypassing monitor selection. An empty id means the default preset.
func (s *State) Snap(ctx context.Context, presetID string) error {
	if presetID == "" {
		presetID = config.DefaultPresetID
	}
	frame, err := s.cfg.PresetFrame(presetID)
	if err != nil {
		return err
	}

	h, err := s.handle(ctx)
	if err != nil {
		return err
	}

	logging.Info().Str("preset", presetID).Str("frame", frame.String()).Msg("snapping window")
	if err := h.SetPosition(ctx, frame.Origin()); err != nil {
		return err
	}
	return h.SetSize(ctx, frame.Size())
}
