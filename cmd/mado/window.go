package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/mado-cli/internal/app"
	madoConfig "github.com/yourusername/mado-cli/internal/config"
	"github.com/yourusername/mado-cli/internal/output"
	"github.com/yourusername/mado-cli/internal/types"
)

// MARK: - Window Commands

// frameCmd is the parent command for frame subcommands
var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Get or set the window frame in monitor-local coordinates",
}

// frameGetCmd prints the local frame as a frame spec
var frameGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the window frame as WxH+X+Y",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.State) error {
			snap := s.Refresh(ctx)
			if !snap.Available {
				return fmt.Errorf("%s: %s", snap.Title(), snap.Error)
			}
			if jsonOutput {
				return printJSON(snap.Frame)
			}
			fmt.Println(madoConfig.FormatFrameSpec(snap.Frame))
			return nil
		})
	},
}

// frameSetCmd writes a local frame
var frameSetCmd = &cobra.Command{
	Use:   "set <WxH+X+Y | X,Y,W,H>",
	Short: "Set the window frame relative to its monitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := madoConfig.ParseFrameSpec(args[0])
		if err != nil {
			return err
		}
		return applyAndReport(cmd, "Frame set", func(ctx context.Context, s *app.State) error {
			return s.SetFrame(ctx, frame)
		})
	},
}

// centerCmd centers the window
var centerCmd = &cobra.Command{
	Use:   "center",
	Short: "Center the window within its monitor's usable area",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, app.CmdCenter, "Centered")
	},
}

// alignCmd pushes the window against one usable edge
var alignCmd = &cobra.Command{
	Use:       "align <left|right|up|down>",
	Short:     "Align the window to an edge of the usable area",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right", "up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, ok := types.ParseDirection(args[0])
		if !ok {
			return fmt.Errorf("invalid direction: %s (want left, right, up or down)", args[0])
		}
		return runCommand(cmd, app.Command("align-"+dir.String()), "Aligned "+dir.String())
	},
}

var (
	maximizeHorizontal bool
	maximizeVertical   bool
)

// maximizeCmd fills the usable area
var maximizeCmd = &cobra.Command{
	Use:   "maximize",
	Short: "Fill the usable area, or one axis of it",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case maximizeHorizontal:
			return runCommand(cmd, app.CmdMaximizeHorizontal, "Maximized horizontally")
		case maximizeVertical:
			return runCommand(cmd, app.CmdMaximizeVertical, "Maximized vertically")
		}
		return runCommand(cmd, app.CmdMaximize, "Maximized")
	},
}

// stepLarge selects the large step for move and resize
var stepLarge bool

// moveCmd nudges the window
var moveCmd = &cobra.Command{
	Use:       "move <left|right|up|down>",
	Short:     "Move the window by one step",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right", "up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArrow(cmd, args[0], false)
	},
}

// resizeCmd grows or shrinks the window with its top edge fixed
var resizeCmd = &cobra.Command{
	Use:   "resize <left|right|up|down>",
	Short: "Resize the window by one step",
	Long: `Resizes the window by one step while its top-left corner stays put.
Right and down grow the window; left and up shrink it.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right", "up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArrow(cmd, args[0], true)
	},
}

// snapCmd applies a configured preset
var snapCmd = &cobra.Command{
	Use:   "snap [preset]",
	Short: "Snap the window to a configured preset",
	Long: `Sets the window to a preset rectangle from the config file. Preset
frames are raw screen coordinates (top-left origin). Without an argument
the default preset is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := madoConfig.DefaultPresetID
		if len(args) > 0 {
			id = args[0]
		}
		return applyAndReport(cmd, "Snapped to "+id, func(ctx context.Context, s *app.State) error {
			return s.Snap(ctx, id)
		})
	},
}

// runCommand runs a named command and reports the result
func runCommand(cmd *cobra.Command, c app.Command, label string) error {
	return applyAndReport(cmd, label, func(ctx context.Context, s *app.State) error {
		return s.Run(ctx, c)
	})
}

// runArrow replays an arrow key press for move and resize
func runArrow(cmd *cobra.Command, arg string, resize bool) error {
	ev, ok := arrowEvent(arg)
	if !ok {
		return fmt.Errorf("invalid direction: %s (want left, right, up or down)", arg)
	}
	ev.Shift = stepLarge
	ev.Alt = resize

	label := "Moved " + arg
	if resize {
		label = "Resized " + arg
	}
	return applyAndReport(cmd, label, func(ctx context.Context, s *app.State) error {
		return s.HandleKey(ctx, ev)
	})
}

func arrowEvent(s string) (app.KeyEvent, bool) {
	keys := map[string]app.Key{
		"left":  app.KeyLeft,
		"right": app.KeyRight,
		"up":    app.KeyUp,
		"down":  app.KeyDown,
	}
	k, ok := keys[strings.ToLower(s)]
	if !ok {
		return app.KeyEvent{}, false
	}
	return app.KeyEvent{Key: k}, true
}

// applyAndReport runs fn in a session, then prints the refreshed window
func applyAndReport(cmd *cobra.Command, label string, fn func(ctx context.Context, s *app.State) error) error {
	return withSession(cmd, func(ctx context.Context, s *app.State) error {
		if err := fn(ctx, s); err != nil {
			return err
		}

		snap := s.Refresh(ctx)
		if jsonOutput {
			return printJSON(snap)
		}

		printSuccess(label)
		if snap.Available {
			output.PrintSnapshot(os.Stdout, snap)
		}
		return nil
	})
}

// signalContext cancels ctx on SIGINT or SIGTERM
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
