package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xinerama"
	"github.com/BurntSushi/xgbutil/xrect"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/geometry"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/types"
)

// heads returns the physical heads in root coordinates, primary first. Without
// Xinerama the root window is the only head.
func (c *Conn) heads() ([]types.Rect, error) {
	if c.xu.ExtInitialized("XINERAMA") {
		hs, err := xinerama.PhysicalHeads(c.xu)
		if err != nil {
			return nil, fmt.Errorf("failed to query xinerama heads: %w", err)
		}
		if len(hs) > 0 {
			rects := make([]types.Rect, len(hs))
			for i, h := range hs {
				rects[i] = fromXRect(h)
			}
			return rects, nil
		}
	}

	geom, err := xwindow.New(c.xu, c.xu.RootWin()).Geometry()
	if err != nil {
		return nil, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return []types.Rect{fromXRect(geom)}, nil
}

// workarea returns the current desktop's EWMH work area in root coordinates
func (c *Conn) workarea() (types.Rect, bool) {
	areas, err := ewmh.WorkareaGet(c.xu)
	if err != nil || len(areas) == 0 {
		return types.Rect{}, false
	}

	idx := 0
	if desk, err := ewmh.CurrentDesktopGet(c.xu); err == nil && int(desk) < len(areas) {
		idx = int(desk)
	}
	wa := areas[idx]
	return types.Rect{X: float64(wa.X), Y: float64(wa.Y), Width: float64(wa.Width), Height: float64(wa.Height)}, true
}

// origin returns the primary head's top-left corner in root coordinates
func (c *Conn) origin() (types.Point, error) {
	hs, err := c.heads()
	if err != nil {
		return types.Point{}, err
	}
	return hs[0].Origin(), nil
}

// Monitors implements display.Topology
func (c *Conn) Monitors(ctx context.Context) ([]display.Monitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hs, err := c.heads()
	if err != nil {
		return nil, err
	}
	wa, ok := c.workarea()
	if !ok {
		logging.Debug().Msg("no _NET_WORKAREA, usable frames equal full frames")
	}
	return monitorsFromHeads(hs, wa, ok), nil
}

// monitorsFromHeads converts root-space heads to unflipped-global monitors.
// Each usable frame is the head clipped to the work area.
func monitorsFromHeads(heads []types.Rect, workarea types.Rect, hasWorkarea bool) []display.Monitor {
	if len(heads) == 0 {
		return nil
	}

	origin := heads[0].Origin()
	height := heads[0].Height

	monitors := make([]display.Monitor, len(heads))
	for i, h := range heads {
		visible := h
		if hasWorkarea {
			if clipped := h.Intersect(workarea); !clipped.IsZero() {
				visible = clipped
			}
		}

		monitors[i] = display.Monitor{
			ID:           fmt.Sprintf("head-%d", i),
			Name:         fmt.Sprintf("Head %d", i),
			Frame:        geometry.Flip(toFlipped(h, origin), height),
			VisibleFrame: geometry.Flip(toFlipped(visible, origin), height),
			IsMain:       i == 0,
		}
	}
	return monitors
}

// toFlipped rebases a root-space rect onto the primary head's origin
func toFlipped(r types.Rect, origin types.Point) types.Rect {
	return r.Offset(types.Point{X: -origin.X, Y: -origin.Y})
}

// toRoot is the inverse of toFlipped
func toRoot(r types.Rect, origin types.Point) types.Rect {
	return r.Offset(origin)
}

func fromXRect(r xrect.Rect) types.Rect {
	return types.Rect{
		X:      float64(r.X()),
		Y:      float64(r.Y()),
		Width:  float64(r.Width()),
		Height: float64(r.Height()),
	}
}
