package ax_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yourusername/mado-cli/internal/ax"
	"github.com/yourusername/mado-cli/internal/client"
	"github.com/yourusername/mado-cli/internal/client/clienttest"
	"github.com/yourusername/mado-cli/internal/models"
	"github.com/yourusername/mado-cli/internal/types"
)

func newRemote(t *testing.T, handler clienttest.HandlerFunc) (*ax.Remote, *clienttest.Host) {
	t.Helper()
	h := clienttest.NewHost(t, handler)
	c := client.NewClient(h.SocketPath, 2*time.Second)
	t.Cleanup(func() { c.Close() })
	return ax.NewRemote(c), h
}

func TestRemoteGetAttributeValues(t *testing.T) {
	values := map[string]map[string]interface{}{
		"AXPosition":      {"type": "point", "point": map[string]interface{}{"x": 100.0, "y": 50.0}},
		"AXSize":          {"type": "size", "size": map[string]interface{}{"width": 200.0, "height": 150.0}},
		"AXTitle":         {"type": "string", "string": "notes.txt"},
		"AXFocusedWindow": {"type": "element", "element": "win-7"},
	}
	r, _ := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
		attr, _ := req.Params["attribute"].(string)
		return models.NewResponse(req.ID, map[string]interface{}{"value": values[attr]})
	})
	ctx := context.Background()

	tests := []struct {
		attr ax.Attribute
		want ax.Value
	}{
		{ax.AttrPosition, ax.PointValue(types.Point{X: 100, Y: 50})},
		{ax.AttrSize, ax.SizeValue(types.Size{Width: 200, Height: 150})},
		{ax.AttrTitle, ax.StringValue("notes.txt")},
		{ax.AttrFocusedWindow, ax.ElementValue("win-7")},
	}

	for _, tt := range tests {
		t.Run(string(tt.attr), func(t *testing.T) {
			got, err := r.GetAttribute(ctx, "win-7", tt.attr)
			if err != nil {
				t.Fatalf("GetAttribute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetAttribute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoteMapsErrorCodes(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{models.CodeInvalidElement, ax.ErrInvalidElement},
		{models.CodeAttributeUnsupported, ax.ErrAttributeUnsupported},
		{models.CodeTypeMismatch, ax.ErrTypeMismatch},
		{models.CodeNoValue, ax.ErrNoValue},
		{models.CodeNoApplication, ax.ErrNoApplication},
	}

	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			r, _ := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
				return models.NewErrorResponse(req.ID, tt.code, "failed")
			})
			_, err := r.GetAttribute(context.Background(), "win-1", ax.AttrSize)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			var serr *client.ServerError
			if !errors.As(err, &serr) {
				t.Errorf("error %v lost the server error", err)
			}
		})
	}
}

func TestRemoteUnknownCodePassesThrough(t *testing.T) {
	r, _ := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
		return models.NewErrorResponse(req.ID, models.CodeInternal, "boom")
	})
	err := r.Activate(context.Background(), 1, 0)
	if err == nil || errors.Is(err, ax.ErrInvalidElement) {
		t.Errorf("Activate() error = %v, want plain server error", err)
	}
}

func TestRemoteMissingPayload(t *testing.T) {
	r, _ := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
		return models.NewResponse(req.ID, map[string]interface{}{"value": map[string]interface{}{"type": "point"}})
	})
	_, err := r.GetAttribute(context.Background(), "win-1", ax.AttrPosition)
	if !errors.Is(err, ax.ErrNoValue) {
		t.Errorf("error = %v, want ErrNoValue", err)
	}
}

func TestRemoteSetAttributeAndActivate(t *testing.T) {
	r, h := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
		return models.NewResponse(req.ID, nil)
	})
	ctx := context.Background()

	if err := r.SetAttribute(ctx, "win-1", ax.AttrSize, ax.SizeValue(types.Size{Width: 640, Height: 480})); err != nil {
		t.Fatalf("SetAttribute() error = %v", err)
	}
	if err := r.Activate(ctx, 99, ax.ActivateAllWindows|ax.ActivateIgnoringOtherApps); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	reqs := h.Requests()
	if got := h.Methods(); len(got) != 2 || got[0] != "ax.setAttribute" || got[1] != "app.activate" {
		t.Fatalf("methods = %v", got)
	}
	value, _ := reqs[0].Params["value"].(map[string]interface{})
	size, _ := value["size"].(map[string]interface{})
	if value["type"] != "size" || size["width"] != 640.0 || size["height"] != 480.0 {
		t.Errorf("value = %v, want size 640x480", value)
	}
	opts, _ := reqs[1].Params["options"].([]interface{})
	if len(opts) != 2 || opts[0] != "allWindows" || opts[1] != "ignoringOtherApps" {
		t.Errorf("options = %v", opts)
	}
}

func TestRemoteSetAttributeRejectsEmptyValue(t *testing.T) {
	r, h := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
		return models.NewResponse(req.ID, nil)
	})
	err := r.SetAttribute(context.Background(), "win-1", ax.AttrSize, ax.Value{})
	if !errors.Is(err, ax.ErrTypeMismatch) {
		t.Errorf("error = %v, want ErrTypeMismatch", err)
	}
	if len(h.Requests()) != 0 {
		t.Errorf("requests = %d, want none sent", len(h.Requests()))
	}
}

func TestRemoteFrontmostApplication(t *testing.T) {
	r, _ := newRemote(t, func(req *models.Request) *models.MessageEnvelope {
		return models.NewResponse(req.ID, map[string]interface{}{
			"pid": 311.0, "localizedName": "Safari", "element": "app-311",
		})
	})
	app, err := r.FrontmostApplication(context.Background())
	if err != nil {
		t.Fatalf("FrontmostApplication() error = %v", err)
	}
	if app != (ax.Application{PID: 311, Name: "Safari", Element: "app-311"}) {
		t.Errorf("FrontmostApplication() = %+v", app)
	}
}
