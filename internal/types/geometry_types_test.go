package types

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{
			name: "origin rect",
			rect: Rect{X: 0, Y: 0, Width: 100, Height: 100},
			want: Point{X: 50, Y: 50},
		},
		{
			name: "offset rect",
			rect: Rect{X: 100, Y: 200, Width: 50, Height: 80},
			want: Point{X: 125, Y: 240},
		},
		{
			name: "zero size",
			rect: Rect{X: 10, Y: 20, Width: 0, Height: 0},
			want: Point{X: 10, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.Center()
			if got.X != tt.want.X || got.Y != tt.want.Y {
				t.Errorf("Center() = (%v, %v), want (%v, %v)", got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center point", Point{X: 50, Y: 50}, true},
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"bottom-right corner", Point{X: 100, Y: 100}, true},
		{"outside right", Point{X: 150, Y: 50}, false},
		{"outside left", Point{X: -10, Y: 50}, false},
		{"outside top", Point{X: 50, Y: -10}, false},
		{"outside bottom", Point{X: 50, Y: 150}, false},
		{"on edge", Point{X: 100, Y: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirLeft, "left"},
		{DirRight, "right"},
		{DirUp, "up"},
		{DirDown, "down"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.want {
				t.Errorf("Direction.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		wantDir Direction
		wantOK  bool
	}{
		{"left", DirLeft, true},
		{"right", DirRight, true},
		{"up", DirUp, true},
		{"down", DirDown, true},
		{"invalid", 0, false},
		{"LEFT", 0, false}, // case sensitive
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotDir, gotOK := ParseDirection(tt.input)
			if gotDir != tt.wantDir || gotOK != tt.wantOK {
				t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, %v)",
					tt.input, gotDir, gotOK, tt.wantDir, tt.wantOK)
			}
		})
	}
}

func TestDirectionIota(t *testing.T) {
	// Verify iota ordering
	if DirLeft != 0 {
		t.Errorf("DirLeft = %d, want 0", DirLeft)
	}
	if DirRight != 1 {
		t.Errorf("DirRight = %d, want 1", DirRight)
	}
	if DirUp != 2 {
		t.Errorf("DirUp = %d, want 2", DirUp)
	}
	if DirDown != 3 {
		t.Errorf("DirDown = %d, want 3", DirDown)
	}
}

func TestRectOverlap(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		other Rect
		want  float64
	}{
		{"identical", base, 10000},
		{"half overlap", Rect{X: 50, Y: 0, Width: 100, Height: 100}, 5000},
		{"corner", Rect{X: 90, Y: 90, Width: 20, Height: 20}, 100},
		{"touching edge", Rect{X: 100, Y: 0, Width: 50, Height: 50}, 0},
		{"disjoint", Rect{X: 200, Y: 200, Width: 10, Height: 10}, 0},
		{"contained", Rect{X: 10, Y: 10, Width: 10, Height: 10}, 100},
		{"negative origin", Rect{X: -50, Y: -50, Width: 100, Height: 100}, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlap(tt.other); got != tt.want {
				t.Errorf("Overlap() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlap(base); got != tt.want {
				t.Errorf("Overlap() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 300, Height: 400}

	if got := r.Origin(); got != (Point{X: 10, Y: 20}) {
		t.Errorf("Origin() = %v, want (10, 20)", got)
	}
	if got := r.Size(); got != (Size{Width: 300, Height: 400}) {
		t.Errorf("Size() = %v, want 300x400", got)
	}
	if got := r.MaxX(); got != 310 {
		t.Errorf("MaxX() = %v, want 310", got)
	}
	if got := r.MaxY(); got != 420 {
		t.Errorf("MaxY() = %v, want 420", got)
	}
	if got := NewRect(r.Origin(), r.Size()); got != r {
		t.Errorf("NewRect(Origin, Size) = %v, want %v", got, r)
	}
}

func TestRectOffset(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	got := r.Offset(Point{X: -10, Y: 5})
	want := Rect{X: 0, Y: 25, Width: 30, Height: 40}
	if got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 4}
	b := Point{X: 1, Y: -2}

	if got := a.Add(b); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add() = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v, want (2, 6)", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Add then Sub = %v, want %v", got, a)
	}
}

func TestSizeHalf(t *testing.T) {
	if got := (Size{Width: 401, Height: 300}).Half(); got != (Size{Width: 200.5, Height: 150}) {
		t.Errorf("Half() = %v, want 200.5x150", got)
	}
}

func TestRectApproxEqual(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 0.4, Y: -0.4, Width: 100.2, Height: 99.9}

	if !a.ApproxEqual(b, 0.5) {
		t.Errorf("ApproxEqual(%v, 0.5) = false, want true", b)
	}
	if a.ApproxEqual(b, 0.1) {
		t.Errorf("ApproxEqual(%v, 0.1) = true, want false", b)
	}
}

func TestRectString(t *testing.T) {
	r := Rect{X: 58, Y: 48, Width: 1280, Height: 774}
	if got, want := r.String(), "1280x774 @ (58, 48)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !(Rect{}).IsZero() {
		t.Error("IsZero() on empty rect = false, want true")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if got, want := a.Intersect(Rect{X: 50, Y: 25, Width: 100, Height: 50}), (Rect{X: 50, Y: 25, Width: 50, Height: 50}); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if got := a.Intersect(Rect{X: 100, Y: 0, Width: 10, Height: 10}); !got.IsZero() {
		t.Errorf("Intersect(touching) = %v, want zero", got)
	}
}
