package theme

import (
	"encoding/json"
	"fmt"
)

// ColorSpec is a color as written in a theme document. Exactly one
// encoding is set; documents round-trip without changing encoding.
//
//	{"hex": "#336699"}
//	{"rgb": [51, 102, 153]} or {"rgb": [51, 102, 153, 128]}   0-255 channels
//	{"hsl": [210, 0.5, 0.4]} or {"hsl": [210, 0.5, 0.4, 0.5]} h degrees, s/l/a in [0,1]
type ColorSpec struct {
	Hex string    `json:"hex,omitempty" yaml:"hex,omitempty"`
	RGB []int     `json:"rgb,omitempty" yaml:"rgb,flow,omitempty"`
	HSL []float64 `json:"hsl,omitempty" yaml:"hsl,flow,omitempty"`
}

// HexSpec returns the spec for a hex-encoded color.
func HexSpec(hex string) ColorSpec { return ColorSpec{Hex: hex} }

// RGBSpec returns the spec for 0-255 channel values.
func RGBSpec(channels ...int) ColorSpec { return ColorSpec{RGB: channels} }

// HSLSpec returns the spec for an HSL triple with optional alpha.
func HSLSpec(vals ...float64) ColorSpec { return ColorSpec{HSL: vals} }

// Resolve converts the spec into a normalized color.
func (s ColorSpec) Resolve() (Color, error) {
	set := 0
	if s.Hex != "" {
		set++
	}
	if len(s.RGB) > 0 {
		set++
	}
	if len(s.HSL) > 0 {
		set++
	}
	if set != 1 {
		return Color{}, fmt.Errorf("color spec must use exactly one encoding, found %d", set)
	}

	switch {
	case s.Hex != "":
		return ParseHex(s.Hex)
	case len(s.RGB) > 0:
		if len(s.RGB) != 3 && len(s.RGB) != 4 {
			return Color{}, fmt.Errorf("rgb encoding wants 3 or 4 channels, got %d", len(s.RGB))
		}
		for _, ch := range s.RGB {
			if ch < 0 || ch > 255 {
				return Color{}, fmt.Errorf("rgb channel %d out of range 0-255", ch)
			}
		}
		a := 255
		if len(s.RGB) == 4 {
			a = s.RGB[3]
		}
		return Color{
			R: float64(s.RGB[0]) / 255,
			G: float64(s.RGB[1]) / 255,
			B: float64(s.RGB[2]) / 255,
			A: float64(a) / 255,
		}, nil
	default:
		if len(s.HSL) != 3 && len(s.HSL) != 4 {
			return Color{}, fmt.Errorf("hsl encoding wants 3 or 4 values, got %d", len(s.HSL))
		}
		sat, light := s.HSL[1], s.HSL[2]
		if sat < 0 || sat > 1 || light < 0 || light > 1 {
			return Color{}, fmt.Errorf("hsl saturation and lightness must be in [0,1]")
		}
		c := FromHSL(s.HSL[0], sat, light)
		if len(s.HSL) == 4 {
			a := s.HSL[3]
			if a < 0 || a > 1 {
				return Color{}, fmt.Errorf("hsl alpha must be in [0,1]")
			}
			c.A = a
		}
		return c, nil
	}
}

// Theme is a named set of role colors.
type Theme struct {
	Name   string               `json:"name" yaml:"name"`
	Colors map[string]ColorSpec `json:"colors" yaml:"colors"`
}

// Validate resolves every color in the theme.
func (t *Theme) Validate() error {
	for name, spec := range t.Colors {
		if _, err := spec.Resolve(); err != nil {
			return fmt.Errorf("color %q: %w", name, err)
		}
	}
	return nil
}

// Color resolves the named color.
func (t *Theme) Color(name string) (Color, error) {
	spec, ok := t.Colors[name]
	if !ok {
		return Color{}, fmt.Errorf("theme %q has no color %q", t.Name, name)
	}
	return spec.Resolve()
}

// Equivalent reports whether two themes resolve to the same colors
// under the same names.
func (t *Theme) Equivalent(other *Theme) bool {
	if t.Name != other.Name || len(t.Colors) != len(other.Colors) {
		return false
	}
	for name, spec := range t.Colors {
		otherSpec, ok := other.Colors[name]
		if !ok {
			return false
		}
		a, errA := spec.Resolve()
		b, errB := otherSpec.Resolve()
		if errA != nil || errB != nil || !a.Equal(b) {
			return false
		}
	}
	return true
}

// ParseJSON decodes and validates a JSON theme document.
func ParseJSON(data []byte) (*Theme, error) {
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme json: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// JSON serializes the theme, preserving each color's encoding.
func (t *Theme) JSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
