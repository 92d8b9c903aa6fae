package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yourusername/mado-cli/internal/app"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/output"
)

const (
	clearScreen = "\033[H\033[2J"
	footerLines = 2
	keyHelp     = "arrows move  shift: large step  alt: resize  c center  m maximize  w/e max h/v  h/j/k/l align  s snap  q quit"
)

// interactiveCmd drives the target window from the keyboard
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Move and resize a window with the keyboard",
	Long: `Puts the terminal in raw mode and applies key presses to the target
window while drawing its position on the monitor layout.

The target is the application given by --pid, otherwise whichever
application is frontmost when the session starts. Run it from a launcher or
pass --pid when the terminal itself would be frontmost.

Keys:
  arrows          move by the small step
  shift+arrows    move by the large step
  alt+arrows      resize (shift for the large step)
  c               center
  m               maximize
  w / e           maximize horizontally / vertically
  h / j / k / l   align left / down / up / right
  s               snap to the default preset
  q, esc, ctrl-c  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("interactive mode needs a terminal on stdin")
		}

		return withSession(cmd, func(ctx context.Context, s *app.State) error {
			if _, ok := s.Target(); !ok {
				if err := s.Open(ctx, 0); err != nil {
					logging.Debug().Err(err).Msg("no frontmost window at start")
				}
			}

			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("failed to enter raw mode: %w", err)
			}
			defer term.Restore(fd, oldState)

			ctx, stop := signalContext(ctx)
			defer stop()

			err = runInteractive(ctx, s)

			fmt.Print(clearScreen)
			if closeErr := s.Close(context.Background()); closeErr != nil {
				logging.Debug().Err(closeErr).Msg("failed to reactivate target")
			}
			return err
		})
	},
}

// runInteractive reads keys until quit and redraws on every key and tick
func runInteractive(ctx context.Context, s *app.State) error {
	input := make(chan []byte)
	go readInput(ctx, input)

	ticker := time.NewTicker(s.Config().GetPollInterval())
	defer ticker.Stop()

	var lastErr error
	render(s.Refresh(ctx), lastErr)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			render(s.Refresh(ctx), lastErr)

		case data, ok := <-input:
			if !ok {
				return nil
			}
			for _, ev := range app.DecodeKeys(data) {
				if isQuit(ev) {
					return nil
				}
				lastErr = handleInteractiveKey(ctx, s, ev)
				if errors.Is(lastErr, app.ErrClosed) {
					return nil
				}
			}
			render(s.Refresh(ctx), lastErr)
		}
	}
}

func handleInteractiveKey(ctx context.Context, s *app.State, ev app.KeyEvent) error {
	if c, ok := app.CommandForKey(ev); ok {
		return s.Run(ctx, c)
	}
	return s.HandleKey(ctx, ev)
}

func isQuit(ev app.KeyEvent) bool {
	if ev.Key != app.KeyRune {
		return false
	}
	if ev.Ctrl {
		return ev.Rune == 'c' || ev.Rune == 'd'
	}
	return ev.Rune == 'q' && !ev.Alt && !ev.Cmd
}

// readInput forwards raw stdin reads until stdin closes
func readInput(ctx context.Context, out chan<- []byte) {
	defer close(out)

	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			select {
			case out <- data:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// render redraws the screen. Raw mode needs explicit carriage returns.
func render(snap app.Snapshot, lastErr error) {
	opts := output.DefaultVisualizationOptions()
	opts.MaxHeight -= footerLines

	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(output.Visualize(snap, opts))
	sb.WriteString(keyHelp)
	sb.WriteString("\n")
	if lastErr != nil {
		sb.WriteString(errorColor.Sprint("✗ "))
		sb.WriteString(lastErr.Error())
		sb.WriteString("\n")
	}

	fmt.Print(strings.ReplaceAll(sb.String(), "\n", "\r\n"))
}
