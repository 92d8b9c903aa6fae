package models

import (
	"fmt"

	"github.com/yourusername/mado-cli/internal/types"
)

// Display represents a display as reported by the host's displays.list.
// Frame and VisibleFrame are unflipped-global rectangles.
type Display struct {
	UUID         string
	DisplayID    interface{} // Can be int or bool for overflow
	Name         string
	Frame        types.Rect
	VisibleFrame types.Rect
	IsMain       bool
	HasVisible   bool
}

// GetDisplayName returns the display name or a fallback
func (d *Display) GetDisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	// Fallback to UUID prefix
	if len(d.UUID) > 8 {
		return d.UUID[:8]
	}
	return d.UUID
}

// GetDisplayIDString returns formatted display ID (e.g., "1")
func (d *Display) GetDisplayIDString() string {
	switch v := d.DisplayID.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%.0f", v)
	case bool:
		return "large"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseDisplays extracts displays from a displays.list result. Entries
// without a UUID or without a frame are skipped. A missing visibleFrame
// falls back to the full frame.
func ParseDisplays(result map[string]interface{}) ([]Display, error) {
	raw, ok := result["displays"]
	if !ok {
		return nil, fmt.Errorf("missing displays in result")
	}
	list, ok := raw.([]interface{})
	if !ok {
		if raw == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("displays has unexpected type %T", raw)
	}

	var displays []Display
	for _, d := range list {
		entry, ok := d.(map[string]interface{})
		if !ok {
			continue
		}

		uuid := toString(entry["uuid"])
		if uuid == "" {
			continue
		}

		frame, ok := ParseFrame(entry["frame"])
		if !ok {
			continue
		}

		display := Display{
			UUID:         uuid,
			DisplayID:    entry["displayID"],
			Name:         toString(entry["name"]),
			Frame:        frame,
			VisibleFrame: frame,
			IsMain:       toBool(entry["isMain"]),
		}
		if visible, ok := ParseFrame(entry["visibleFrame"]); ok {
			display.VisibleFrame = visible
			display.HasVisible = true
		}

		displays = append(displays, display)
	}

	return displays, nil
}

// ParseFrame handles both object format {x,y,width,height} and array format [[x,y],[w,h]]
func ParseFrame(frame interface{}) (types.Rect, bool) {
	if frame == nil {
		return types.Rect{}, false
	}

	// Try object format: {x, y, width, height}
	if obj, ok := frame.(map[string]interface{}); ok {
		return types.Rect{
			X:      toFloat64(obj["x"]),
			Y:      toFloat64(obj["y"]),
			Width:  toFloat64(obj["width"]),
			Height: toFloat64(obj["height"]),
		}, true
	}

	// Try array format: [[x, y], [width, height]]
	if arr, ok := frame.([]interface{}); ok && len(arr) == 2 {
		origin, okOrigin := arr[0].([]interface{})
		size, okSize := arr[1].([]interface{})

		if okOrigin && okSize && len(origin) >= 2 && len(size) >= 2 {
			return types.Rect{
				X:      toFloat64(origin[0]),
				Y:      toFloat64(origin[1]),
				Width:  toFloat64(size[0]),
				Height: toFloat64(size[1]),
			}, true
		}
	}

	return types.Rect{}, false
}

// Type conversion helpers

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	default:
		return 0
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func toBool(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
