package backend_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yourusername/mado-cli/internal/app"
	"github.com/yourusername/mado-cli/internal/backend"
	"github.com/yourusername/mado-cli/internal/client/clienttest"
	"github.com/yourusername/mado-cli/internal/models"
	"github.com/yourusername/mado-cli/internal/types"
)

// host is a scripted accessibility host with one window
type host struct {
	mu    sync.Mutex
	frame types.Rect // flipped-global
}

func (h *host) handle(req *models.Request) *models.MessageEnvelope {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch req.Method {
	case "displays.list":
		return models.NewResponse(req.ID, map[string]interface{}{
			"displays": []interface{}{
				map[string]interface{}{
					"uuid":         "builtin",
					"name":         "Built-in Retina Display",
					"frame":        map[string]interface{}{"x": 0.0, "y": 0.0, "width": 1440.0, "height": 900.0},
					"visibleFrame": map[string]interface{}{"x": 0.0, "y": 70.0, "width": 1440.0, "height": 805.0},
					"isMain":       true,
				},
			},
		})

	case "ax.frontmostApplication", "ax.application":
		return models.NewResponse(req.ID, map[string]interface{}{
			"pid": 42.0, "localizedName": "Terminal", "element": "app-42",
		})

	case "ax.getAttribute":
		key := req.Params["element"].(string) + "/" + req.Params["attribute"].(string)
		var value map[string]interface{}
		switch key {
		case "app-42/AXFocusedWindow":
			value = map[string]interface{}{"type": "element", "element": "win-42"}
		case "app-42/AXTitle":
			value = map[string]interface{}{"type": "string", "string": "Terminal"}
		case "win-42/AXTitle":
			value = map[string]interface{}{"type": "string", "string": "zsh"}
		case "win-42/AXPosition":
			value = map[string]interface{}{"type": "point", "point": map[string]interface{}{"x": h.frame.X, "y": h.frame.Y}}
		case "win-42/AXSize":
			value = map[string]interface{}{"type": "size", "size": map[string]interface{}{"width": h.frame.Width, "height": h.frame.Height}}
		default:
			return models.NewErrorResponse(req.ID, models.CodeAttributeUnsupported, key+" unsupported")
		}
		return models.NewResponse(req.ID, map[string]interface{}{"value": value})

	case "ax.setAttribute":
		value := req.Params["value"].(map[string]interface{})
		switch req.Params["attribute"] {
		case "AXPosition":
			p := value["point"].(map[string]interface{})
			h.frame.X, h.frame.Y = p["x"].(float64), p["y"].(float64)
		case "AXSize":
			s := value["size"].(map[string]interface{})
			h.frame.Width, h.frame.Height = s["width"].(float64), s["height"].(float64)
		}
		return models.NewResponse(req.ID, map[string]interface{}{})

	case "app.activate":
		return models.NewResponse(req.ID, map[string]interface{}{})
	}
	return models.NewErrorResponse(req.ID, models.CodeUnknownMethod, "unknown method: "+req.Method)
}

func (h *host) Frame() types.Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frame
}

func TestRemoteSession(t *testing.T) {
	state := &host{frame: types.Rect{X: 100, Y: 125, Width: 400, Height: 300}}
	h := clienttest.NewHost(t, state.handle)

	b, err := backend.Open(backend.Options{Name: backend.Remote, Socket: h.SocketPath, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()

	if b.Client == nil || b.Name != backend.Remote {
		t.Fatalf("Open() = %+v, want remote backend with a client", b)
	}

	ctx := context.Background()
	s := app.New(b.Service, b.Topology, nil)
	if err := s.Open(ctx, 0); err != nil {
		t.Fatalf("Open(0) error = %v", err)
	}

	snap := s.Refresh(ctx)
	if !snap.Available {
		t.Fatalf("Refresh() unavailable: %s", snap.Error)
	}
	if want := (types.Rect{X: 100, Y: 475, Width: 400, Height: 300}); snap.Frame != want {
		t.Errorf("Frame = %v, want %v", snap.Frame, want)
	}
	if snap.Title() != "Terminal" || snap.WindowTitle != "zsh" || snap.Monitor.Name != "Built-in Retina Display" {
		t.Errorf("snapshot = %+v", snap)
	}

	if err := s.Run(ctx, app.CmdMaximize); err != nil {
		t.Fatalf("Run(maximize) error = %v", err)
	}
	if got, want := state.Frame(), (types.Rect{X: 0, Y: 25, Width: 1440, Height: 805}); got != want {
		t.Errorf("frame after maximize = %v, want %v", got, want)
	}

	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	methods := h.Methods()
	if last := methods[len(methods)-1]; last != "app.activate" {
		t.Errorf("last method = %s, want app.activate", last)
	}
}

func TestRemoteHostDown(t *testing.T) {
	b, err := backend.Open(backend.Options{Name: backend.Remote, Socket: "/nonexistent/mado.sock", Timeout: time.Second})
	if err != nil {
		t.Fatalf("Open() error = %v, want lazy connect", err)
	}
	defer b.Close()

	snap := app.New(b.Service, b.Topology, nil).Refresh(context.Background())
	if snap.Available || !strings.Contains(snap.Error, "failed to connect") {
		t.Errorf("Refresh() with host down = %+v", snap)
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, err := backend.Open(backend.Options{Name: "wayland"}); err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Open(wayland) error = %v, want unknown backend", err)
	}
}
