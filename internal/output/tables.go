package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/mado-cli/internal/app"
	"github.com/yourusername/mado-cli/internal/config"
	"github.com/yourusername/mado-cli/internal/display"
	"github.com/yourusername/mado-cli/internal/types"
)

// PrintDisplaysTable prints monitors in list order; index 0 is the primary
func PrintDisplaysTable(w io.Writer, monitors []display.Monitor) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Name", "ID", "Frame", "Usable", "Main")

	for i, m := range monitors {
		main := ""
		if m.IsMain {
			main = "yes"
		}

		table.Append(
			fmt.Sprintf("%d", i),
			truncate(m.Name, 25),
			truncate(m.ID, 12),
			m.Frame.String(),
			m.VisibleFrame.String(),
			main,
		)
	}

	table.Render()
}

// PrintPresetsTable prints the configured snap presets
func PrintPresetsTable(w io.Writer, presets []config.PresetConfig) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Frame", "Description")

	for _, p := range presets {
		table.Append(p.ID, p.Frame, truncate(p.Description, 40))
	}

	table.Render()
}

// PrintSnapshot prints detailed information about the target window
func PrintSnapshot(w io.Writer, snap app.Snapshot) {
	fmt.Fprintf(w, "Application: %s\n", snap.Title())
	if !snap.Available {
		if snap.Error != "" {
			fmt.Fprintf(w, "Reason: %s\n", snap.Error)
		}
		return
	}

	if snap.WindowTitle != "" {
		fmt.Fprintf(w, "Window: %s\n", snap.WindowTitle)
	}
	fmt.Fprintf(w, "PID: %d\n", snap.PID)
	fmt.Fprintf(w, "Position: %s\n", formatPoint(snap.Frame.Origin()))
	fmt.Fprintf(w, "Size: %.0fx%.0f\n", snap.Frame.Width, snap.Frame.Height)
	fmt.Fprintf(w, "Frame (local): %s\n", snap.Frame)
	fmt.Fprintf(w, "Frame (global): %s\n", snap.Global())
	fmt.Fprintf(w, "Monitor: %s\n", snap.Monitor)
	fmt.Fprintf(w, "Usable: %s\n", snap.Monitor.VisibleFrame)
}

// Helper functions

func formatPoint(p types.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)])
	}
	return string(r[:maxLen-3]) + "..."
}
