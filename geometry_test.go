package smartcrop

import (
	"image"
	"testing"
)

func TestRectangle_Contains(t *testing.T) {
	outer := Rect(10, 10, 100, 50)

	tests := []struct {
		name  string
		inner Rectangle
		want  bool
	}{
		{"itself", outer, true},
		{"strictly inside", Rect(20, 20, 10, 10), true},
		{"touching right edge", Rect(100, 10, 10, 50), true},
		{"one past right edge", Rect(101, 10, 10, 50), false},
		{"starts left of outer", Rect(9, 10, 10, 10), false},
		{"taller than outer", Rect(10, 10, 10, 51), false},
		{"disjoint", Rect(200, 200, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectangle_Intersects(t *testing.T) {
	r := Rect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"overlapping", Rect(5, 5, 10, 10), true},
		{"contained", Rect(2, 2, 2, 2), true},
		{"adjacent right", Rect(10, 0, 10, 10), false},
		{"adjacent below", Rect(0, 10, 10, 10), false},
		{"single shared pixel", Rect(9, 9, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(r); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectangle_Derived(t *testing.T) {
	r := Rect(3, 4, 5, 6)
	if r.Right() != 8 || r.Bottom() != 10 {
		t.Errorf("Right/Bottom: got %d/%d, want 8/10", r.Right(), r.Bottom())
	}
	if got, want := r.Bounds(), image.Rect(3, 4, 8, 10); got != want {
		t.Errorf("Bounds: got %v, want %v", got, want)
	}
	if got := r.String(); got != "3,4 5x6" {
		t.Errorf("String: got %q", got)
	}
}

func TestRectangle_ScaleRoundsHalfToEven(t *testing.T) {
	got := Rect(5, 7, 9, 3).scale(0.5)
	want := Rect(2, 4, 4, 2)
	if got != want {
		t.Errorf("scale: got %v, want %v", got, want)
	}

	got = Rect(64, 0, 256, 256).unscale(0.64)
	want = Rect(100, 0, 400, 400)
	if got != want {
		t.Errorf("unscale: got %v, want %v", got, want)
	}
}

func TestRectangle_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Rectangle
		want Rectangle
	}{
		{"inside", Rect(1, 1, 5, 5), Rect(1, 1, 5, 5)},
		{"overflows right", Rect(8, 0, 5, 5), Rect(8, 0, 2, 5)},
		{"negative origin", Rect(-3, -1, 5, 5), Rect(0, 0, 2, 4)},
		{"beyond image", Rect(20, 20, 5, 5), Rect(10, 10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.clamp(10, 10); got != tt.want {
				t.Errorf("clamp: got %v, want %v", got, tt.want)
			}
		})
	}
}
