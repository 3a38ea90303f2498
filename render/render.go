// Package render defines the drawing command stream: pure-data commands
// that a render backend executes inside a frame. Coordinates are
// logical pixels with the origin at the top-left.
package render

import (
	"github.com/oakui/oak/geom"
)

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// RGB returns an opaque color. Channels are clamped to [0, 1].
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a color with explicit alpha. Channels are clamped to
// [0, 1].
func RGBA(r, g, b, a float32) Color {
	return Color{
		R: geom.Clamp(r, 0, 1),
		G: geom.Clamp(g, 0, 1),
		B: geom.Clamp(b, 0, 1),
		A: geom.Clamp(a, 0, 1),
	}
}

// Black is the defined background color a failed frame reverts to.
var Black = RGB(0, 0, 0)

// TextAlign positions text relative to its x coordinate.
type TextAlign int

const (
	// AlignLeft places x at the left edge of the text box.
	AlignLeft TextAlign = iota
	// AlignCenter places x at the horizontal center of the text box.
	AlignCenter
	// AlignRight places x at the right edge of the text box.
	AlignRight
)

// Command is the tagged sum of drawing commands. Commands are pure
// data: no callbacks, no references outliving the batch.
type Command interface{ isCommand() }

// Clear fills the whole frame with a color.
type Clear struct {
	Color Color
}

// FillRect fills a rectangle.
type FillRect struct {
	Rect  geom.Rect
	Color Color
}

// StrokeRect outlines a rectangle with the given stroke width.
type StrokeRect struct {
	Rect  geom.Rect
	Color Color
	Width float32
}

// Line draws a straight segment.
type Line struct {
	X1, Y1 float32
	X2, Y2 float32
	Color  Color
	Width  float32
}

// Text draws a string. Y is the baseline; Align controls how X relates
// to the text box.
type Text struct {
	Text     string
	X, Y     float32
	FontSize float32
	Color    Color
	Align    TextAlign
}

func (Clear) isCommand()      {}
func (FillRect) isCommand()   {}
func (StrokeRect) isCommand() {}
func (Line) isCommand()       {}
func (Text) isCommand()       {}
