package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/mado-cli/internal/types"
)

var (
	// Frame patterns
	geometryPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)x(\d+(?:\.\d+)?)([+-]\d+(?:\.\d+)?)([+-]\d+(?:\.\d+)?)$`)
	listPattern     = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)$`)
)

// ParseFrameSpec parses a rectangle string
// Supported formats:
//   - "1280x774+58+48" - X11 geometry style, WxH then X and Y offsets
//   - "58,48,1280,774" - X, Y, width, height
func ParseFrameSpec(s string) (types.Rect, error) {
	s = strings.TrimSpace(s)

	if matches := geometryPattern.FindStringSubmatch(s); matches != nil {
		w, _ := strconv.ParseFloat(matches[1], 64)
		h, _ := strconv.ParseFloat(matches[2], 64)
		x, _ := strconv.ParseFloat(matches[3], 64)
		y, _ := strconv.ParseFloat(matches[4], 64)
		return types.Rect{X: x, Y: y, Width: w, Height: h}, nil
	}

	if matches := listPattern.FindStringSubmatch(s); matches != nil {
		x, _ := strconv.ParseFloat(matches[1], 64)
		y, _ := strconv.ParseFloat(matches[2], 64)
		w, _ := strconv.ParseFloat(matches[3], 64)
		h, _ := strconv.ParseFloat(matches[4], 64)
		return types.Rect{X: x, Y: y, Width: w, Height: h}, nil
	}

	return types.Rect{}, fmt.Errorf("invalid frame format: %s", s)
}

// FormatFrameSpec renders a rect in "WxH+X+Y" form
func FormatFrameSpec(r types.Rect) string {
	return fmt.Sprintf("%gx%g%+g%+g", r.Width, r.Height, r.X, r.Y)
}

// parseDuration parses a positive duration string
func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %s", s)
	}
	return d, nil
}
