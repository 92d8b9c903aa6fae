package geometry

import (
	"fmt"

	"github.com/yourusername/mado-cli/internal/types"
)

// AlignMode selects how the right and top edges are computed
type AlignMode string

const (
	// AlignEdge aligns to the usable frame's true right/top edge
	AlignEdge AlignMode = "edge"
	// AlignLegacy uses the usable frame's width/height as if its origin
	// were zero, matching earlier releases
	AlignLegacy AlignMode = "legacy"
)

// ParseAlignMode converts a string to an AlignMode. Empty means edge.
func ParseAlignMode(s string) (AlignMode, error) {
	switch AlignMode(s) {
	case "", AlignEdge:
		return AlignEdge, nil
	case AlignLegacy:
		return AlignLegacy, nil
	}
	return "", fmt.Errorf("unknown alignment mode %q (want edge or legacy)", s)
}

// Op computes a new local frame from the current local frame and the
// owning monitor's usable frame in local coordinates.
type Op func(frame, usable types.Rect) types.Rect

// CenterOp centers the window in the usable frame on both axes
func CenterOp(frame, usable types.Rect) types.Rect {
	half := frame.Size().Half()
	c := usable.Center()
	return types.NewRect(types.Point{X: c.X - half.Width, Y: c.Y - half.Height}, frame.Size())
}

// AlignLeftOp moves the window to the usable left edge
func AlignLeftOp(frame, usable types.Rect) types.Rect {
	frame.X = usable.X
	return frame
}

// AlignDownOp moves the window to the usable bottom edge
func AlignDownOp(frame, usable types.Rect) types.Rect {
	frame.Y = usable.Y
	return frame
}

// AlignRightOp moves the window to the usable right edge
func AlignRightOp(mode AlignMode) Op {
	return func(frame, usable types.Rect) types.Rect {
		if mode == AlignLegacy {
			frame.X = usable.Width - frame.Width
		} else {
			frame.X = usable.MaxX() - frame.Width
		}
		return frame
	}
}

// AlignUpOp moves the window to the usable top edge
func AlignUpOp(mode AlignMode) Op {
	return func(frame, usable types.Rect) types.Rect {
		if mode == AlignLegacy {
			frame.Y = usable.Height - frame.Height
		} else {
			frame.Y = usable.MaxY() - frame.Height
		}
		return frame
	}
}

// AlignOp returns the align operation for a direction
func AlignOp(dir types.Direction, mode AlignMode) Op {
	switch dir {
	case types.DirLeft:
		return AlignLeftOp
	case types.DirRight:
		return AlignRightOp(mode)
	case types.DirUp:
		return AlignUpOp(mode)
	default:
		return AlignDownOp
	}
}

// MaximizeOp fills the usable frame
func MaximizeOp(frame, usable types.Rect) types.Rect {
	return usable
}

// MaximizeHorizontalOp takes X and width from the usable frame
func MaximizeHorizontalOp(frame, usable types.Rect) types.Rect {
	frame.X = usable.X
	frame.Width = usable.Width
	return frame
}

// MaximizeVerticalOp takes Y and height from the usable frame
func MaximizeVerticalOp(frame, usable types.Rect) types.Rect {
	frame.Y = usable.Y
	frame.Height = usable.Height
	return frame
}

// MoveOp shifts the window by step. Up is +Y in local coordinates.
func MoveOp(dir types.Direction, step float64) Op {
	return func(frame, _ types.Rect) types.Rect {
		switch dir {
		case types.DirLeft:
			frame.X -= step
		case types.DirRight:
			frame.X += step
		case types.DirUp:
			frame.Y += step
		case types.DirDown:
			frame.Y -= step
		}
		return frame
	}
}

// minDimension keeps resizes from producing empty or negative frames
const minDimension = 1

// ResizeOp grows or shrinks the window by step. Right/Left change the width
// with the left edge fixed; Down/Up grow/shrink the height with the top
// edge fixed, matching how the accessibility layer anchors a size write.
func ResizeOp(dir types.Direction, step float64) Op {
	return func(frame, _ types.Rect) types.Rect {
		switch dir {
		case types.DirRight:
			frame.Width = max(frame.Width+step, minDimension)
		case types.DirLeft:
			frame.Width = max(frame.Width-step, minDimension)
		case types.DirDown, types.DirUp:
			delta := step
			if dir == types.DirUp {
				delta = -step
			}
			top := frame.MaxY()
			frame.Height = max(frame.Height+delta, minDimension)
			frame.Y = top - frame.Height
		}
		return frame
	}
}
