// Package geom provides the geometric primitives shared by components,
// input events and render commands. Coordinates are logical pixels with
// the origin at the top-left corner.
package geom

import "cmp"

// Point is an integer position in logical pixels.
type Point struct {
	X int
	Y int
}

// Rect describes a rectangular region. Width and Height are never negative.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewRect builds a Rect, clamping negative dimensions to zero.
func NewRect(x, y, width, height float32) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains reports whether (x, y) lies inside the rectangle. All four
// edges are inclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width && other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height && other.Y <= r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Clamp returns v limited to [lo, hi]. lo must not exceed hi.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
