// Package display supplies the ordered monitor list used for geometry math.
package display

import (
	"context"
	"fmt"

	"github.com/yourusername/mado-cli/internal/types"
)

// Monitor is one display. Frame and VisibleFrame are unflipped-global:
// Y grows upward from the bottom of the primary monitor.
type Monitor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Frame        types.Rect `json:"frame"`        // full screen bounds
	VisibleFrame types.Rect `json:"visibleFrame"` // excludes menu bar and dock
	IsMain       bool       `json:"isMain"`
}

func (m Monitor) String() string {
	name := m.Name
	if name == "" {
		name = m.ID
	}
	return fmt.Sprintf("%s %s", name, m.Frame)
}

// Topology lists monitors, primary first. The list may be empty.
// Implementations query live state on every call.
type Topology interface {
	Monitors(ctx context.Context) ([]Monitor, error)
}

// Static is a fixed monitor list
type Static []Monitor

// Monitors implements Topology
func (s Static) Monitors(ctx context.Context) ([]Monitor, error) {
	return append([]Monitor(nil), s...), nil
}

// PrimaryFirst returns monitors with the first IsMain monitor moved to the
// front, keeping the relative order of the rest.
func PrimaryFirst(monitors []Monitor) []Monitor {
	for i, m := range monitors {
		if !m.IsMain {
			continue
		}
		if i == 0 {
			return monitors
		}
		ordered := make([]Monitor, 0, len(monitors))
		ordered = append(ordered, m)
		ordered = append(ordered, monitors[:i]...)
		ordered = append(ordered, monitors[i+1:]...)
		return ordered
	}
	return monitors
}
