package models

import (
	"encoding/json"
	"testing"

	"github.com/yourusername/mado-cli/internal/types"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   types.Rect
		wantOK bool
	}{
		{
			name:   "object format",
			input:  map[string]interface{}{"x": 0.0, "y": 25.0, "width": 1440.0, "height": 875.0},
			want:   types.Rect{X: 0, Y: 25, Width: 1440, Height: 875},
			wantOK: true,
		},
		{
			name: "array format",
			input: []interface{}{
				[]interface{}{-1920.0, 0.0},
				[]interface{}{1920.0, 1080.0},
			},
			want:   types.Rect{X: -1920, Y: 0, Width: 1920, Height: 1080},
			wantOK: true,
		},
		{"nil", nil, types.Rect{}, false},
		{"short array", []interface{}{[]interface{}{1.0}}, types.Rect{}, false},
		{"string", "0,0,100,100", types.Rect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFrame(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseFrame() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseDisplays(t *testing.T) {
	var result map[string]interface{}
	raw := `{
		"displays": [
			{"uuid": "AAAA-1", "name": "Built-in", "displayID": 1, "isMain": true,
			 "frame": {"x": 0, "y": 0, "width": 1440, "height": 900},
			 "visibleFrame": {"x": 0, "y": 70, "width": 1440, "height": 805}},
			{"uuid": "", "frame": {"x": 1440, "y": 0, "width": 100, "height": 100}},
			{"uuid": "BBBB-2", "frame": [[1440, 0], [2560, 1440]]},
			{"uuid": "CCCC-3"}
		]
	}`
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	displays, err := ParseDisplays(result)
	if err != nil {
		t.Fatalf("ParseDisplays() error = %v", err)
	}
	if len(displays) != 2 {
		t.Fatalf("len(displays) = %d, want 2", len(displays))
	}

	first := displays[0]
	if !first.IsMain || first.GetDisplayName() != "Built-in" || first.GetDisplayIDString() != "1" {
		t.Errorf("first display = %+v", first)
	}
	if want := (types.Rect{X: 0, Y: 70, Width: 1440, Height: 805}); first.VisibleFrame != want {
		t.Errorf("VisibleFrame = %v, want %v", first.VisibleFrame, want)
	}

	second := displays[1]
	if second.HasVisible {
		t.Error("second display HasVisible = true, want false")
	}
	if second.VisibleFrame != second.Frame {
		t.Errorf("VisibleFrame = %v, want fallback to Frame %v", second.VisibleFrame, second.Frame)
	}
	if got := second.GetDisplayName(); got != "BBBB-2" {
		t.Errorf("GetDisplayName() = %q, want %q", got, "BBBB-2")
	}
}

func TestParseDisplaysMissingKey(t *testing.T) {
	if _, err := ParseDisplays(map[string]interface{}{}); err == nil {
		t.Error("ParseDisplays() error = nil, want error for missing displays")
	}
}

func TestDecodeResult(t *testing.T) {
	result := map[string]interface{}{
		"value": map[string]interface{}{
			"type":  "point",
			"point": map[string]interface{}{"x": 100.0, "y": 50.0},
		},
	}

	var got GetAttributeResult
	if err := DecodeResult(result, &got); err != nil {
		t.Fatalf("DecodeResult() error = %v", err)
	}
	if got.Value.Type != ValuePoint || got.Value.Point == nil {
		t.Fatalf("Value = %+v, want point", got.Value)
	}
	if *got.Value.Point != (types.Point{X: 100, Y: 50}) {
		t.Errorf("Point = %v, want (100, 50)", *got.Value.Point)
	}
}

func TestEncodeParamsOmitsEmptyPayloads(t *testing.T) {
	title := "Terminal"
	params, err := EncodeParams(AttributeValue{Type: ValueString, String: &title})
	if err != nil {
		t.Fatalf("EncodeParams() error = %v", err)
	}
	if params["string"] != "Terminal" {
		t.Errorf("params[string] = %v, want Terminal", params["string"])
	}
	for _, key := range []string{"point", "size", "element"} {
		if _, ok := params[key]; ok {
			t.Errorf("params contains %q, want omitted", key)
		}
	}
}

func TestErrorResponse(t *testing.T) {
	env := NewErrorResponse("abc", CodeInvalidElement, "element gone")
	if !env.Response.IsError() {
		t.Fatal("IsError() = false, want true")
	}
	if got := env.Response.GetError(); got != "element gone" {
		t.Errorf("GetError() = %q, want %q", got, "element gone")
	}
	if NewResponse("abc", nil).Response.IsError() {
		t.Error("NewResponse().IsError() = true, want false")
	}
}
