package color

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a kepler.gl color: an [r, g, b] or [r, g, b, a] array.
// Components are kept as float64, the renderer accepts fractional values
// (threeDBuildingColor is usually written that way).
type Color struct {
	R, G, B  float64
	A        float64
	HasAlpha bool
}

func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// Components returns the color as it appears in the document.
func (c Color) Components() []float64 {
	if c.HasAlpha {
		return []float64{c.R, c.G, c.B, c.A}
	}
	return []float64{c.R, c.G, c.B}
}

// Valid reports whether all components are within [0, 255].
func (c Color) Valid() bool {
	for _, v := range c.Components() {
		if math.IsNaN(v) || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Hex returns the #RRGGBB form, alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", byteOf(c.R), byteOf(c.G), byteOf(c.B))
}

func (c Color) String() string {
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

func byteOf(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ParseHex parses #RGB, #RRGGBB and #RRGGBBAA. The leading # is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	if len(h) == 8 {
		return RGBA(float64(v>>24&0xff), float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)), nil
	}
	return RGB(float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)), nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Components())
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var comps []float64
	if err := json.Unmarshal(b, &comps); err != nil {
		return fmt.Errorf("color must be a numeric array: %w", err)
	}
	switch len(comps) {
	case 3:
		*c = RGB(comps[0], comps[1], comps[2])
	case 4:
		*c = RGBA(comps[0], comps[1], comps[2], comps[3])
	default:
		return fmt.Errorf("color must have 3 or 4 components, got %d", len(comps))
	}
	return nil
}
