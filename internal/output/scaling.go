package output

import (
	"math"

	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/types"
)

// defaultBounds is used when there are no monitors to fit
var defaultBounds = types.Rect{Width: 1920, Height: 1080}

// ScalingContext maps unflipped-global points to terminal cells. Rows grow
// downward, so the top of the bounds is row 0.
type ScalingContext struct {
	// Union of all monitor frames
	Bounds types.Rect

	// Terminal dimensions in characters
	TermWidth  int
	TermHeight int

	// Columns per point; rows per point is Scale / AspectRatio
	Scale float64

	// Aspect ratio correction (terminal characters are typically 2:1 height:width)
	AspectRatio float64
}

// NewScalingContext fits the bounding box of monitors into the terminal,
// preserving proportions
func NewScalingContext(monitors []display.Monitor, termWidth, termHeight int) *ScalingContext {
	bounds := monitorBounds(monitors)
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = defaultBounds
	}

	termWidth = max(termWidth, 10)
	termHeight = max(termHeight, 5)

	const aspect = 2.0
	scale := math.Min(
		float64(termWidth-1)/bounds.Width,
		float64(termHeight-1)*aspect/bounds.Height,
	)

	return &ScalingContext{
		Bounds:      bounds,
		TermWidth:   termWidth,
		TermHeight:  termHeight,
		Scale:       scale,
		AspectRatio: aspect,
	}
}

// monitorBounds returns the union of monitor frames
func monitorBounds(monitors []display.Monitor) types.Rect {
	if len(monitors) == 0 {
		return types.Rect{}
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, m := range monitors {
		minX = math.Min(minX, m.Frame.X)
		minY = math.Min(minY, m.Frame.Y)
		maxX = math.Max(maxX, m.Frame.MaxX())
		maxY = math.Max(maxY, m.Frame.MaxY())
	}
	return types.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CanvasSize returns the canvas dimensions that hold the whole bounds
func (sc *ScalingContext) CanvasSize() (int, int) {
	w := int(math.Round(sc.Bounds.Width*sc.Scale)) + 1
	h := int(math.Round(sc.Bounds.Height*sc.Scale/sc.AspectRatio)) + 1
	return w, h
}

// PointToTerminal converts an unflipped-global point to a column and row
func (sc *ScalingContext) PointToTerminal(x, y float64) (int, int) {
	col := int(math.Round((x - sc.Bounds.X) * sc.Scale))
	row := int(math.Round((sc.Bounds.MaxY() - y) * sc.Scale / sc.AspectRatio))
	return col, row
}

// RectToTerminal converts an unflipped-global rectangle to a box. The box
// includes its border cells on both edges.
func (sc *ScalingContext) RectToTerminal(r types.Rect) (x, y, w, h int) {
	left, top := sc.PointToTerminal(r.X, r.MaxY())
	right, bottom := sc.PointToTerminal(r.MaxX(), r.Y)
	return left, top, right - left + 1, bottom - top + 1
}

// ClampToCanvas ensures a box stays within canvas bounds
func (sc *ScalingContext) ClampToCanvas(x, y, w, h int) (int, int, int, int) {
	cw, ch := sc.CanvasSize()

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > cw {
		w = cw - x
	}
	if y+h > ch {
		h = ch - y
	}

	// Ensure minimum size
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}

	return x, y, w, h
}
