package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/mado-cli/internal/app"
	"github.com/yourusername/mado-cli/internal/types"
)

func TestLoadDisplays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displays.json")
	data := `[
  {"id": "ext", "name": "External", "frame": {"x": 1440, "y": 0, "width": 1920, "height": 1080},
   "visibleFrame": {"x": 1440, "y": 0, "width": 1920, "height": 1055}, "isMain": false},
  {"id": "builtin", "name": "Built-in", "frame": {"x": 0, "y": 0, "width": 1440, "height": 900},
   "visibleFrame": {"x": 0, "y": 70, "width": 1440, "height": 805}, "isMain": true}
]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	topo, err := loadDisplays(path)
	if err != nil {
		t.Fatalf("loadDisplays() error = %v", err)
	}
	if len(topo) != 2 || topo[0].ID != "builtin" {
		t.Fatalf("loadDisplays() = %+v, want main display first", topo)
	}
	if want := (types.Rect{X: 0, Y: 70, Width: 1440, Height: 805}); topo[0].VisibleFrame != want {
		t.Errorf("VisibleFrame = %v, want %v", topo[0].VisibleFrame, want)
	}

	if _, err := loadDisplays(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("loadDisplays(missing) error = nil")
	}
}

func TestArrowEvent(t *testing.T) {
	tests := []struct {
		in   string
		want app.Key
		ok   bool
	}{
		{"left", app.KeyLeft, true},
		{"Right", app.KeyRight, true},
		{"up", app.KeyUp, true},
		{"down", app.KeyDown, true},
		{"sideways", app.KeyNone, false},
	}

	for _, tt := range tests {
		ev, ok := arrowEvent(tt.in)
		if ok != tt.ok || ev.Key != tt.want {
			t.Errorf("arrowEvent(%q) = %v, %v; want %v, %v", tt.in, ev.Key, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   app.KeyEvent
		want bool
	}{
		{"q", app.KeyEvent{Key: app.KeyRune, Rune: 'q'}, true},
		{"ctrl-c", app.KeyEvent{Key: app.KeyRune, Rune: 'c', Ctrl: true}, true},
		{"ctrl-d", app.KeyEvent{Key: app.KeyRune, Rune: 'd', Ctrl: true}, true},
		{"c centers", app.KeyEvent{Key: app.KeyRune, Rune: 'c'}, false},
		{"alt-q", app.KeyEvent{Key: app.KeyRune, Rune: 'q', Alt: true}, false},
		{"arrow", app.KeyEvent{Key: app.KeyLeft}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuit(tt.ev); got != tt.want {
				t.Errorf("isQuit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameSnapshot(t *testing.T) {
	a := app.Snapshot{Available: true, AppTitle: "Terminal", Frame: types.Rect{X: 1, Y: 2, Width: 3, Height: 4}}
	b := a
	if !sameSnapshot(a, b) {
		t.Error("sameSnapshot(identical) = false")
	}

	b.Frame.X = 5
	if sameSnapshot(a, b) {
		t.Error("sameSnapshot(moved) = true")
	}
}
