// Package x11 implements the accessibility service and display topology on
// an EWMH-compliant X window manager.
//
// X root coordinates have their origin at the top-left of the root window.
// Everything this package returns is rebased so the first physical head's
// top-left corner is the origin, matching the flipped-global convention;
// monitor frames are additionally unflipped against that head's height.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/logging"
)

// Conn is one X server connection. It serves both ax.Service and
// display.Topology.
type Conn struct {
	xu *xgbutil.XUtil
}

// Open connects to the X server named by $DISPLAY
func Open() (*Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	logging.Info().Bool("xinerama", xu.ExtInitialized("XINERAMA")).Msg("connected to X server")
	return &Conn{xu: xu}, nil
}

// Close cleanly disconnects from the X server
func (c *Conn) Close() error {
	c.xu.Conn().Close()
	return nil
}

var (
	_ ax.Service       = (*Conn)(nil)
	_ display.Topology = (*Conn)(nil)
)
