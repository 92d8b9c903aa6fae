package display

import (
	"context"
	"fmt"

	"github.com/yourusername/mado-cli/internal/client"
	"github.com/yourusername/mado-cli/internal/logging"
)

// RemoteTopology reads monitors from the accessibility host
type RemoteTopology struct {
	client *client.Client
}

// NewRemoteTopology wraps a host client
func NewRemoteTopology(c *client.Client) *RemoteTopology {
	return &RemoteTopology{client: c}
}

// Monitors calls displays.list once and converts the result
func (r *RemoteTopology) Monitors(ctx context.Context) ([]Monitor, error) {
	displays, err := r.client.ListDisplays(ctx)
	if err != nil {
		return nil, fmt.Errorf("displays.list failed: %w", err)
	}

	monitors := make([]Monitor, 0, len(displays))
	for _, d := range displays {
		monitors = append(monitors, Monitor{
			ID:           d.UUID,
			Name:         d.GetDisplayName(),
			Frame:        d.Frame,
			VisibleFrame: d.VisibleFrame,
			IsMain:       d.IsMain,
		})
	}

	logging.Debug().Int("count", len(monitors)).Msg("fetched displays")
	return PrimaryFirst(monitors), nil
}
