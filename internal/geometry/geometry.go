package geometry

import (
	"context"
	"fmt"

	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/types"
)

// Window is the raw flipped-global accessor a Geometry drives.
// *window.Handle implements it.
type Window interface {
	Position(ctx context.Context) (types.Point, error)
	SetPosition(ctx context.Context, p types.Point) error
	Size(ctx context.Context) (types.Size, error)
	SetSize(ctx context.Context, s types.Size) error
}

// Geometry exposes one window's frame in monitor-local coordinates.
// Every call re-reads the window and the monitor list.
type Geometry struct {
	win  Window
	topo display.Topology
	mode AlignMode
}

// New wraps a window. An empty mode means AlignEdge.
func New(win Window, topo display.Topology, mode AlignMode) *Geometry {
	if mode == "" {
		mode = AlignEdge
	}
	return &Geometry{win: win, topo: topo, mode: mode}
}

// Mode returns the alignment mode
func (g *Geometry) Mode() AlignMode {
	return g.mode
}

// locate reads the raw frame and monitors and converts to local space
func (g *Geometry) locate(ctx context.Context) (Placement, error) {
	pos, err := g.win.Position(ctx)
	if err != nil {
		return Placement{}, fmt.Errorf("read position: %w", err)
	}
	size, err := g.win.Size(ctx)
	if err != nil {
		return Placement{}, fmt.Errorf("read size: %w", err)
	}

	monitors, err := g.topo.Monitors(ctx)
	if err != nil {
		return Placement{}, fmt.Errorf("list monitors: %w", err)
	}

	p, err := Locate(monitors, types.NewRect(pos, size))
	if err != nil {
		logging.Debug().Int("monitors", len(monitors)).Str("frame", types.NewRect(pos, size).String()).Msg("window has no owning monitor")
		return Placement{}, err
	}
	return p, nil
}

// Frame returns the window frame in monitor-local coordinates
func (g *Geometry) Frame(ctx context.Context) (types.Rect, error) {
	p, err := g.locate(ctx)
	if err != nil {
		return types.Rect{}, err
	}
	return p.Local, nil
}

// Placement returns the local frame together with its owning monitor
func (g *Geometry) Placement(ctx context.Context) (Placement, error) {
	return g.locate(ctx)
}

// Screen returns the monitor that owns the window
func (g *Geometry) Screen(ctx context.Context) (display.Monitor, error) {
	p, err := g.locate(ctx)
	if err != nil {
		return display.Monitor{}, err
	}
	return p.Monitor, nil
}

// SetFrame assigns a monitor-local frame. Position is written before size,
// one command each. Nothing is written if the current frame or owning
// monitor cannot be determined.
func (g *Geometry) SetFrame(ctx context.Context, local types.Rect) error {
	p, err := g.locate(ctx)
	if err != nil {
		return err
	}
	return g.commit(ctx, p, local)
}

func (g *Geometry) commit(ctx context.Context, p Placement, local types.Rect) error {
	global := p.Global(local)

	logging.Debug().
		Str("monitor", p.Monitor.ID).
		Str("local", local.String()).
		Str("global", global.String()).
		Msg("setting frame")

	if err := g.win.SetPosition(ctx, global.Origin()); err != nil {
		return err
	}
	return g.win.SetSize(ctx, global.Size())
}

// Apply runs one read, compute, write cycle
func (g *Geometry) Apply(ctx context.Context, op Op) error {
	p, err := g.locate(ctx)
	if err != nil {
		return err
	}
	return g.commit(ctx, p, op(p.Local, p.Usable()))
}

// Center centers the window in the usable frame
func (g *Geometry) Center(ctx context.Context) error {
	return g.Apply(ctx, CenterOp)
}

// AlignLeft moves the window to the usable left edge
func (g *Geometry) AlignLeft(ctx context.Context) error {
	return g.Apply(ctx, AlignLeftOp)
}

// AlignRight moves the window to the usable right edge
func (g *Geometry) AlignRight(ctx context.Context) error {
	return g.Apply(ctx, AlignRightOp(g.mode))
}

// AlignUp moves the window to the usable top edge
func (g *Geometry) AlignUp(ctx context.Context) error {
	return g.Apply(ctx, AlignUpOp(g.mode))
}

// AlignDown moves the window to the usable bottom edge
func (g *Geometry) AlignDown(ctx context.Context) error {
	return g.Apply(ctx, AlignDownOp)
}

// Align dispatches to the align operation for dir
func (g *Geometry) Align(ctx context.Context, dir types.Direction) error {
	return g.Apply(ctx, AlignOp(dir, g.mode))
}

// Maximize fills the usable frame
func (g *Geometry) Maximize(ctx context.Context) error {
	return g.Apply(ctx, MaximizeOp)
}

// MaximizeHorizontal fills the usable frame's width
func (g *Geometry) MaximizeHorizontal(ctx context.Context) error {
	return g.Apply(ctx, MaximizeHorizontalOp)
}

// MaximizeVertical fills the usable frame's height
func (g *Geometry) MaximizeVertical(ctx context.Context) error {
	return g.Apply(ctx, MaximizeVerticalOp)
}

// Move shifts the window by step in dir
func (g *Geometry) Move(ctx context.Context, dir types.Direction, step float64) error {
	return g.Apply(ctx, MoveOp(dir, step))
}

// Resize grows or shrinks the window by step in dir
func (g *Geometry) Resize(ctx context.Context, dir types.Direction, step float64) error {
	return g.Apply(ctx, ResizeOp(dir, step))
}
