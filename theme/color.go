// Package theme provides the color model and theme documents consumed
// by components and render backends. Colors parse from hex strings,
// 0-255 RGB arrays and HSL triples, and theme documents round-trip
// through JSON and YAML without losing their encoding.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/oakui/oak/render"
)

// Color is a normalized RGBA color with channels in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// RGB returns an opaque color with channels clamped to [0, 1].
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a color with channels clamped to [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// FromHSL converts hue (degrees), saturation and lightness (both in
// [0, 1]) into an opaque color.
func FromHSL(h, s, l float64) Color {
	c := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// ParseHex parses #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("malformed color %q: missing '#' prefix", s)
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("malformed color %q: want 6 or 8 hex digits", s)
	}
	val, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("malformed color %q: %w", s, err)
	}

	a := uint64(0xff)
	if len(digits) == 8 {
		a = val & 0xff
		val >>= 8
	}
	return Color{
		R: float64(val>>16&0xff) / 255,
		G: float64(val>>8&0xff) / 255,
		B: float64(val&0xff) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) Hex() string {
	hex := fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
	if c.A < 1 {
		hex += fmt.Sprintf("%02x", channel(c.A))
	}
	return hex
}

// HSL returns hue (degrees), saturation and lightness.
func (c Color) HSL() (h, s, l float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
}

// ToRender converts to the render pipeline's color type.
func (c Color) ToRender() render.Color {
	return render.RGBA(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Equal reports channel equality within an 8-bit quantization step,
// the precision every supported encoding can represent.
func (c Color) Equal(other Color) bool {
	const eps = 1.0 / 255
	return abs(c.R-other.R) <= eps &&
		abs(c.G-other.G) <= eps &&
		abs(c.B-other.B) <= eps &&
		abs(c.A-other.A) <= eps
}

func channel(v float64) int {
	return int(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
