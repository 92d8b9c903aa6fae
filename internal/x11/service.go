package x11

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/shirou/gopsutil/process"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/types"
)

const (
	appPrefix    = "x11-app:"
	windowPrefix = "x11-win:"
)

func appElement(pid int) ax.Element {
	return ax.Element(appPrefix + strconv.Itoa(pid))
}

func windowElement(win xproto.Window) ax.Element {
	return ax.Element(windowPrefix + strconv.FormatUint(uint64(win), 10))
}

// parseElement splits an element into its kind prefix and numeric id
func parseElement(el ax.Element) (string, uint64, error) {
	s := string(el)
	for _, prefix := range []string{appPrefix, windowPrefix} {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimPrefix(s, prefix), 10, 32)
		if err != nil {
			break
		}
		return prefix, id, nil
	}
	return "", 0, fmt.Errorf("%w: %q", ax.ErrInvalidElement, s)
}

// processName returns the executable name of pid
func processName(pid int) (string, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return proc.Name()
}

// windowForPID returns the active window when pid owns it, otherwise the
// topmost managed window of pid
func (c *Conn) windowForPID(pid int) (xproto.Window, error) {
	if active, err := ewmh.ActiveWindowGet(c.xu); err == nil && active != 0 {
		if wp, err := ewmh.WmPidGet(c.xu, active); err == nil && int(wp) == pid {
			return active, nil
		}
	}

	clients, err := ewmh.ClientListStackingGet(c.xu)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ax.ErrNoApplication, err)
	}
	for i := len(clients) - 1; i >= 0; i-- {
		if wp, err := ewmh.WmPidGet(c.xu, clients[i]); err == nil && int(wp) == pid {
			return clients[i], nil
		}
	}
	return 0, fmt.Errorf("%w: no window for pid %d", ax.ErrNoApplication, pid)
}

func (c *Conn) application(pid int) ax.Application {
	name, err := processName(pid)
	if err != nil {
		logging.Debug().Err(err).Int("pid", pid).Msg("process name unavailable")
	}
	return ax.Application{PID: pid, Name: name, Element: appElement(pid)}
}

// FrontmostApplication implements ax.Service
func (c *Conn) FrontmostApplication(ctx context.Context) (ax.Application, error) {
	if err := ctx.Err(); err != nil {
		return ax.Application{}, err
	}

	active, err := ewmh.ActiveWindowGet(c.xu)
	if err != nil {
		return ax.Application{}, fmt.Errorf("%w: %w", ax.ErrNoApplication, err)
	}
	if active == 0 {
		return ax.Application{}, ax.ErrNoApplication
	}

	pid, err := ewmh.WmPidGet(c.xu, active)
	if err != nil {
		return ax.Application{}, fmt.Errorf("%w: window %d has no _NET_WM_PID: %w", ax.ErrNoApplication, active, err)
	}
	return c.application(int(pid)), nil
}

// Application implements ax.Service
func (c *Conn) Application(ctx context.Context, pid int) (ax.Application, error) {
	if err := ctx.Err(); err != nil {
		return ax.Application{}, err
	}
	if _, err := c.windowForPID(pid); err != nil {
		return ax.Application{}, err
	}
	return c.application(pid), nil
}

// GetAttribute implements ax.Service
func (c *Conn) GetAttribute(ctx context.Context, el ax.Element, attr ax.Attribute) (ax.Value, error) {
	if err := ctx.Err(); err != nil {
		return ax.Value{}, err
	}
	kind, id, err := parseElement(el)
	if err != nil {
		return ax.Value{}, err
	}

	if kind == appPrefix {
		return c.appAttribute(int(id), attr)
	}
	return c.windowAttribute(xproto.Window(id), attr)
}

func (c *Conn) appAttribute(pid int, attr ax.Attribute) (ax.Value, error) {
	switch attr {
	case ax.AttrTitle:
		name, err := processName(pid)
		if err != nil || name == "" {
			return ax.Value{}, fmt.Errorf("%w: process %d", ax.ErrNoValue, pid)
		}
		return ax.StringValue(name), nil
	case ax.AttrFocusedWindow:
		win, err := c.windowForPID(pid)
		if err != nil {
			return ax.Value{}, fmt.Errorf("%w: %w", ax.ErrNoValue, err)
		}
		return ax.ElementValue(windowElement(win)), nil
	}
	return ax.Value{}, fmt.Errorf("%w: %s on application", ax.ErrAttributeUnsupported, attr)
}

func (c *Conn) windowAttribute(win xproto.Window, attr ax.Attribute) (ax.Value, error) {
	switch attr {
	case ax.AttrTitle:
		name, err := ewmh.WmNameGet(c.xu, win)
		if err != nil || name == "" {
			name, err = icccm.WmNameGet(c.xu, win)
		}
		if err != nil {
			return ax.Value{}, fmt.Errorf("%w: %w", ax.ErrNoValue, err)
		}
		return ax.StringValue(name), nil
	case ax.AttrPosition, ax.AttrSize:
		frame, err := c.frame(win)
		if err != nil {
			return ax.Value{}, err
		}
		if attr == ax.AttrPosition {
			return ax.PointValue(frame.Origin()), nil
		}
		return ax.SizeValue(frame.Size()), nil
	}
	return ax.Value{}, fmt.Errorf("%w: %s on window", ax.ErrAttributeUnsupported, attr)
}

// frame returns the decorated window frame in flipped-global coordinates
func (c *Conn) frame(win xproto.Window) (types.Rect, error) {
	geom, err := xwindow.New(c.xu, win).DecorGeometry()
	if err != nil {
		return types.Rect{}, fmt.Errorf("%w: window %d: %w", ax.ErrInvalidElement, win, err)
	}
	origin, err := c.origin()
	if err != nil {
		return types.Rect{}, err
	}
	return toFlipped(fromXRect(geom), origin), nil
}

// SetAttribute implements ax.Service. Only window position and size are
// settable; the unchanged half of the frame is re-read first.
func (c *Conn) SetAttribute(ctx context.Context, el ax.Element, attr ax.Attribute, v ax.Value) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	kind, id, err := parseElement(el)
	if err != nil {
		return err
	}
	if kind != windowPrefix || (attr != ax.AttrPosition && attr != ax.AttrSize) {
		return fmt.Errorf("%w: cannot set %s", ax.ErrAttributeUnsupported, attr)
	}

	win := xproto.Window(id)
	frame, err := c.frame(win)
	if err != nil {
		return err
	}

	if attr == ax.AttrPosition {
		if err := v.Expect(ax.TypePoint); err != nil {
			return err
		}
		frame = types.NewRect(v.Point, frame.Size())
	} else {
		if err := v.Expect(ax.TypeSize); err != nil {
			return err
		}
		frame = types.NewRect(frame.Origin(), v.Size)
	}

	return c.moveResize(win, frame)
}

// moveResize sends _NET_MOVERESIZE_WINDOW for a decorated flipped-global
// frame. The request carries the client size, so frame extents are removed.
func (c *Conn) moveResize(win xproto.Window, frame types.Rect) error {
	origin, err := c.origin()
	if err != nil {
		return err
	}
	root := toRoot(frame, origin)

	var ext *ewmh.FrameExtents
	if e, err := ewmh.FrameExtentsGet(c.xu, win); err == nil {
		ext = e
	}
	w, h := clientSize(root.Size(), ext)

	logging.Debug().
		Uint32("window", uint32(win)).
		Str("root", root.String()).
		Int("clientWidth", w).
		Int("clientHeight", h).
		Msg("moveresize")

	requestOrConfigure(win,
		func() error { return ewmh.MoveresizeWindow(c.xu, win, int(root.X), int(root.Y), w, h) },
		func() { xwindow.New(c.xu, win).MoveResize(int(root.X), int(root.Y), w, h) },
	)
	return nil
}

// requestOrConfigure sends a window manager request and configures the
// window directly when the request fails
func requestOrConfigure(win xproto.Window, request func() error, configure func()) {
	if err := request(); err != nil {
		logging.Debug().Err(err).Uint32("window", uint32(win)).Msg("_NET_MOVERESIZE_WINDOW failed, configuring directly")
		configure()
	}
}

// clientSize subtracts decoration extents from a decorated size
func clientSize(decorated types.Size, ext *ewmh.FrameExtents) (int, int) {
	w, h := int(decorated.Width), int(decorated.Height)
	if ext != nil {
		w -= ext.Left + ext.Right
		h -= ext.Top + ext.Bottom
	}
	return max(w, 1), max(h, 1)
}

// Activate implements ax.Service. X has no notion of activating every window
// of an application, so opts only affect logging.
func (c *Conn) Activate(ctx context.Context, pid int, opts ax.ActivationOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	win, err := c.windowForPID(pid)
	if err != nil {
		return err
	}
	logging.Debug().Int("pid", pid).Strs("options", opts.Names()).Msg("activating window")
	return ewmh.ActiveWindowReq(c.xu, win)
}
