package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/mado-cli/internal/app"
	"github.com/yourusername/mado-cli/internal/display"
)

// headerLines is the room kept for the header and legend around the canvas
const headerLines = 3

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  height,
	}
}

// Visualize renders the monitor layout with the target window drawn on top
func Visualize(snap app.Snapshot, opts VisualizationOptions) string {
	var sb strings.Builder

	sb.WriteString(header(snap))
	sb.WriteString("\n")

	if len(snap.Monitors) == 0 {
		sb.WriteString("No displays found\n")
		return sb.String()
	}

	sb.WriteString(renderLayout(snap, opts))
	sb.WriteString("\n")
	return sb.String()
}

func header(snap app.Snapshot) string {
	if !snap.Available {
		return snap.Title()
	}
	title := snap.Title()
	if snap.WindowTitle != "" {
		title = fmt.Sprintf("%s - %s", title, snap.WindowTitle)
	}
	return fmt.Sprintf("%s  %s on %s", title, snap.Frame, monitorLabel(snap.Monitor))
}

// renderLayout draws every monitor, its usable area edge and the window
func renderLayout(snap app.Snapshot, opts VisualizationOptions) string {
	sc := NewScalingContext(snap.Monitors, opts.MaxWidth, opts.MaxHeight-headerLines)
	cw, ch := sc.CanvasSize()
	canvas := NewCanvas(cw, ch, opts.UseUnicode)

	for i, m := range snap.Monitors {
		x, y, w, h := sc.ClampToCanvas(sc.RectToTerminal(m.Frame))
		canvas.DrawBox(x, y, w, h)
		canvas.DrawText(x+1, y, truncate(fmt.Sprintf(" %d %s ", i, monitorLabel(m)), w-2))

		// Mark the menu bar and dock as unusable
		if m.VisibleFrame != m.Frame && !m.VisibleFrame.IsZero() {
			_, uy, _, uh := sc.ClampToCanvas(sc.RectToTerminal(m.VisibleFrame))
			for row := y + 1; row < y+h-1; row++ {
				if row > uy && row < uy+uh-1 {
					continue
				}
				canvas.FillRect(x+1, row, w-2, 1, '.')
			}
		}
	}

	if snap.Available {
		x, y, w, h := sc.ClampToCanvas(sc.RectToTerminal(snap.Global()))
		canvas.FillRect(x, y, w, h, ' ')
		canvas.DrawWindowBox(x, y, w, h)
		if h >= 3 {
			label := fmt.Sprintf("%s %.0fx%.0f", snap.Title(), snap.Frame.Width, snap.Frame.Height)
			canvas.DrawTextCentered(x+1, y+h/2, w-2, label)
		}
	}

	return canvas.String()
}

func monitorLabel(m display.Monitor) string {
	if m.Name != "" {
		return m.Name
	}
	if m.ID != "" {
		return m.ID
	}
	return "display"
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintVisualization prints a colored visualization
func PrintVisualization(w io.Writer, snap app.Snapshot, opts VisualizationOptions) {
	result := Visualize(snap, opts)

	if color.NoColor {
		fmt.Fprint(w, result)
		return
	}
	color.New(color.FgCyan).Fprint(w, result)
}
