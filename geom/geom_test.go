package geom

import "testing"

func TestRectContainsEdgesInclusive(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	corners := [][2]float32{
		{10, 20},
		{110, 20},
		{10, 70},
		{110, 70},
	}
	for _, c := range corners {
		if !r.Contains(c[0], c[1]) {
			t.Fatalf("expected corner (%v, %v) to be contained", c[0], c[1])
		}
	}

	if r.Contains(110.001, 20) {
		t.Fatalf("expected point just past the right edge to be outside")
	}
	if r.Contains(10, 70.001) {
		t.Fatalf("expected point just past the bottom edge to be outside")
	}
	if r.Contains(9.999, 20) {
		t.Fatalf("expected point just before the left edge to be outside")
	}
}

func TestNewRectClampsNegativeDimensions(t *testing.T) {
	r := NewRect(0, 0, -5, -10)
	if r.Width != 0 || r.Height != 0 {
		t.Fatalf("expected zero dimensions, got %vx%v", r.Width, r.Height)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 10, 10, 10) // touching corner counts
	c := NewRect(30, 30, 5, 5)

	if !a.Intersects(b) {
		t.Fatalf("expected touching rects to intersect")
	}
	if a.Intersects(c) {
		t.Fatalf("expected disjoint rects not to intersect")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("expected lo for input below range, got %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("expected hi for input above range, got %d", got)
	}
	if got := Clamp(0.5, 0.0, 1.0); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	// Boundary inputs return the boundary itself.
	if got := Clamp(0, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Clamp(10, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}
