// Package geometry converts window frames between flipped-global,
// unflipped-global and monitor-local coordinates and implements the
// center/align/maximize/move/resize operations.
//
// Flipped-global is what the accessibility layer reports: origin at the
// top-left of the primary monitor, Y growing downward. Unflipped-global has
// Y growing upward from the bottom of the primary monitor. Monitor-local is
// unflipped-global relative to the owning monitor's full-frame origin.
package geometry

import (
	"errors"

	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/types"
)

// ErrNoOwningMonitor means the window intersects no monitor, or there are none
var ErrNoOwningMonitor = errors.New("no owning monitor")

// PrimaryHeight is the max Y of the first monitor, the flip axis
func PrimaryHeight(monitors []display.Monitor) float64 {
	if len(monitors) == 0 {
		return 0
	}
	return monitors[0].Frame.MaxY()
}

// Flip converts between flipped-global and unflipped-global. It is its own
// inverse: Flip(Flip(r, h), h) == r.
func Flip(r types.Rect, primaryHeight float64) types.Rect {
	r.Y = primaryHeight - r.Height - r.Y
	return r
}

// OwningMonitor picks the monitor whose full frame has the largest
// intersection with an unflipped-global rect. Ties keep the earlier monitor.
func OwningMonitor(monitors []display.Monitor, unflipped types.Rect) (display.Monitor, error) {
	best := -1
	bestArea := 0.0
	for i, m := range monitors {
		area := m.Frame.Overlap(unflipped)
		if area > bestArea {
			best = i
			bestArea = area
		}
	}
	if best < 0 {
		return display.Monitor{}, ErrNoOwningMonitor
	}
	return monitors[best], nil
}

// Placement is a window frame expressed relative to its owning monitor
type Placement struct {
	Local         types.Rect
	Monitor       display.Monitor
	PrimaryHeight float64
}

// Locate converts a flipped-global frame into monitor-local coordinates
func Locate(monitors []display.Monitor, flipped types.Rect) (Placement, error) {
	if len(monitors) == 0 {
		return Placement{}, ErrNoOwningMonitor
	}

	primary := PrimaryHeight(monitors)
	unflipped := Flip(flipped, primary)

	owner, err := OwningMonitor(monitors, unflipped)
	if err != nil {
		return Placement{}, err
	}

	return Placement{
		Local:         unflipped.Offset(zero.Sub(owner.Frame.Origin())),
		Monitor:       owner,
		PrimaryHeight: primary,
	}, nil
}

var zero types.Point

// Global converts a monitor-local rect back to flipped-global using this
// placement's monitor
func (p Placement) Global(local types.Rect) types.Rect {
	unflipped := local.Offset(p.Monitor.Frame.Origin())
	return Flip(unflipped, p.PrimaryHeight)
}

// Usable returns the owning monitor's usable frame in local coordinates
func (p Placement) Usable() types.Rect {
	return p.Monitor.VisibleFrame.Offset(zero.Sub(p.Monitor.Frame.Origin()))
}

// Full returns the owning monitor's full frame in local coordinates
func (p Placement) Full() types.Rect {
	return types.NewRect(zero, p.Monitor.Frame.Size())
}
