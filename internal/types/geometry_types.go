package types

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size represents width and height
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Half returns a size with both dimensions halved
func (s Size) Half() Size {
	return Size{Width: s.Width / 2, Height: s.Height / 2}
}

// Rect represents a rectangle. Which coordinate space it lives in
// (flipped-global, unflipped-global or monitor-local) is decided by the caller.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRect builds a Rect from an origin and a size
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the rect's origin
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect's size
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the right edge
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the edge opposite the origin on the Y axis
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Offset translates the rect by the given vector
func (r Rect) Offset(v Point) Rect {
	return NewRect(r.Origin().Add(v), r.Size())
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Overlap returns the area of intersection between two Rects
func (r Rect) Overlap(other Rect) float64 {
	i := r.Intersect(other)
	return i.Width * i.Height
}

// Intersect returns the common part of two Rects, or the zero Rect
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	right := min(r.X+r.Width, other.X+other.Width)
	top := max(r.Y, other.Y)
	bottom := min(r.Y+r.Height, other.Y+other.Height)

	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsZero reports whether every field is zero
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// ApproxEqual compares two rects field by field within tolerance
func (r Rect) ApproxEqual(other Rect, tolerance float64) bool {
	return math.Abs(r.X-other.X) <= tolerance &&
		math.Abs(r.Y-other.Y) <= tolerance &&
		math.Abs(r.Width-other.Width) <= tolerance &&
		math.Abs(r.Height-other.Height) <= tolerance
}

// String formats the rect as "WxH @ (x, y)"
func (r Rect) String() string {
	return fmt.Sprintf("%.0fx%.0f @ (%.0f, %.0f)", r.Width, r.Height, r.X, r.Y)
}

// Direction represents an arrow-key direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}
