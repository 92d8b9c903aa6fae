// Package backend opens the accessibility service and display topology
// selected by configuration.
package backend

import (
	"fmt"
	"io"
	"time"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/client"
	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/x11"
)

const (
	Remote = "remote"
	X11    = "x11"
)

// Options selects and configures a backend
type Options struct {
	Name    string
	Socket  string
	Timeout time.Duration
}

// Backend bundles a service with its topology
type Backend struct {
	Name     string
	Service  ax.Service
	Topology display.Topology

	// Client is set for the remote backend only
	Client *client.Client

	closer io.Closer
}

// Open creates the backend named in opts. The remote backend connects
// lazily on its first request.
func Open(opts Options) (*Backend, error) {
	switch opts.Name {
	case "", Remote:
		c := client.NewClient(opts.Socket, opts.Timeout)
		logging.Debug().Str("socket", c.SocketPath()).Dur("timeout", opts.Timeout).Msg("using remote backend")
		return &Backend{
			Name:     Remote,
			Service:  ax.NewRemote(c),
			Topology: display.NewRemoteTopology(c),
			Client:   c,
			closer:   c,
		}, nil

	case X11:
		conn, err := x11.Open()
		if err != nil {
			return nil, err
		}
		return &Backend{
			Name:     X11,
			Service:  conn,
			Topology: conn,
			closer:   conn,
		}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want %s or %s)", opts.Name, Remote, X11)
}

// Close releases the backend's connection
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
