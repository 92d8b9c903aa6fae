// Package ax is the accessibility query/command interface used to read and
// write window attributes and to activate applications.
package ax

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/mado-cli/internal/types"
)

// Status errors. Any non-success status from a backend is one of these,
// possibly wrapped.
var (
	ErrInvalidElement       = errors.New("invalid element")
	ErrAttributeUnsupported = errors.New("attribute unsupported")
	ErrTypeMismatch         = errors.New("value type mismatch")
	ErrNoValue              = errors.New("no value")
	ErrNoApplication        = errors.New("no application")
)

// Element is an opaque reference to an accessibility element
type Element string

// Attribute names an accessibility attribute
type Attribute string

const (
	AttrPosition      Attribute = "AXPosition"
	AttrSize          Attribute = "AXSize"
	AttrTitle         Attribute = "AXTitle"
	AttrFocusedWindow Attribute = "AXFocusedWindow"
)

// ValueType tags the payload of a Value
type ValueType string

const (
	TypePoint   ValueType = "point"
	TypeSize    ValueType = "size"
	TypeString  ValueType = "string"
	TypeElement ValueType = "element"
)

// Value is a tagged attribute value. Only the field matching Type is meaningful.
type Value struct {
	Type    ValueType
	Point   types.Point
	Size    types.Size
	Str     string
	Element Element
}

// PointValue wraps a point
func PointValue(p types.Point) Value {
	return Value{Type: TypePoint, Point: p}
}

// SizeValue wraps a size
func SizeValue(s types.Size) Value {
	return Value{Type: TypeSize, Size: s}
}

// StringValue wraps a string
func StringValue(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// ElementValue wraps an element reference
func ElementValue(e Element) Value {
	return Value{Type: TypeElement, Element: e}
}

// Expect returns ErrTypeMismatch unless v carries the given type
func (v Value) Expect(t ValueType) error {
	if v.Type != t {
		return fmt.Errorf("%w: got %s, want %s", ErrTypeMismatch, v.Type, t)
	}
	return nil
}

func (v Value) String() string {
	switch v.Type {
	case TypePoint:
		return fmt.Sprintf("(%g, %g)", v.Point.X, v.Point.Y)
	case TypeSize:
		return fmt.Sprintf("%gx%g", v.Size.Width, v.Size.Height)
	case TypeString:
		return fmt.Sprintf("%q", v.Str)
	case TypeElement:
		return string(v.Element)
	default:
		return "<empty>"
	}
}

// Application identifies a running application and its accessibility element
type Application struct {
	PID     int
	Name    string
	Element Element
}

// ActivationOptions mirror the application activation flags
type ActivationOptions uint

const (
	ActivateAllWindows ActivationOptions = 1 << iota
	ActivateIgnoringOtherApps
)

// Names returns the wire names of the set flags
func (o ActivationOptions) Names() []string {
	var names []string
	if o&ActivateAllWindows != 0 {
		names = append(names, "allWindows")
	}
	if o&ActivateIgnoringOtherApps != 0 {
		names = append(names, "ignoringOtherApps")
	}
	return names
}

// Service is the accessibility query/command interface
type Service interface {
	FrontmostApplication(ctx context.Context) (Application, error)
	Application(ctx context.Context, pid int) (Application, error)
	GetAttribute(ctx context.Context, el Element, attr Attribute) (Value, error)
	SetAttribute(ctx context.Context, el Element, attr Attribute, v Value) error
	Activate(ctx context.Context, pid int, opts ActivationOptions) error
}
