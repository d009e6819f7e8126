package color

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/hsluv/hsluv-go"
)

// Range is a named gradient of color stops.
type Range struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Colors   []string        `json:"colors"`
	Reversed *bool           `json:"reversed,omitempty"`
	// value to color pairs of a custom ordinal range, kept as written
	ColorMap json.RawMessage `json:"colorMap,omitempty"`
}

const (
	Sequential  = "sequential"
	Diverging   = "diverging"
	Qualitative = "qualitative"
	Singlehue   = "singlehue"
)

// Validate checks that every stop is a parsable hex color.
func (r Range) Validate() error {
	if len(r.Colors) == 0 {
		return fmt.Errorf("color range %q has no colors", r.Name)
	}
	for i, c := range r.Colors {
		if _, err := ParseHex(c); err != nil {
			return fmt.Errorf("color range %q stop %d: %w", r.Name, i, err)
		}
	}
	return nil
}

// Reverse returns a copy with the stops in reverse order and the
// reversed flag toggled.
func (r Range) Reverse() Range {
	out := r
	out.Colors = make([]string, len(r.Colors))
	for i, c := range r.Colors {
		out.Colors[len(r.Colors)-1-i] = c
	}
	reversed := r.Reversed == nil || !*r.Reversed
	out.Reversed = &reversed
	return out
}

// Resample returns a copy with n stops spread evenly along the gradient.
// Interpolation happens in HSLuv so the steps are perceptually even.
func (r Range) Resample(n int) (Range, error) {
	if n < 2 {
		return Range{}, fmt.Errorf("resample needs at least 2 stops, got %d", n)
	}
	stops := make([]hsl, len(r.Colors))
	for i, c := range r.Colors {
		col, err := ParseHex(c)
		if err != nil {
			return Range{}, err
		}
		stops[i] = toHSLuv(col)
	}
	if len(stops) == 0 {
		return Range{}, fmt.Errorf("color range %q has no colors", r.Name)
	}

	out := r
	out.Colors = make([]string, n)
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * float64(len(stops)-1)
		lo := int(math.Floor(pos))
		if lo >= len(stops)-1 {
			out.Colors[i] = fromHSLuv(stops[len(stops)-1]).Hex()
			continue
		}
		out.Colors[i] = fromHSLuv(mix(stops[lo], stops[lo+1], pos-float64(lo))).Hex()
	}
	return out, nil
}

// Interpolate returns n hex stops between two hex colors.
func Interpolate(from, to string, n int) ([]string, error) {
	r, err := Range{Colors: []string{from, to}}.Resample(n)
	if err != nil {
		return nil, err
	}
	return r.Colors, nil
}

type hsl struct {
	h, s, l float64
}

func toHSLuv(c Color) hsl {
	h, s, l := hsluv.HsluvFromRGB(c.R/255, c.G/255, c.B/255)
	return hsl{h, s, l}
}

func fromHSLuv(v hsl) Color {
	r, g, b := hsluv.HsluvToRGB(v.h, v.s, v.l)
	return RGB(clamp01(r)*255, clamp01(g)*255, clamp01(b)*255)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// grey stops carry no meaningful hue
const achromatic = 1e-6

func mix(a, b hsl, t float64) hsl {
	ah, bh := a.h, b.h
	if a.s < achromatic {
		ah = bh
	}
	if b.s < achromatic {
		bh = ah
	}
	d := bh - ah
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	h := math.Mod(ah+d*t+360, 360)
	return hsl{
		h: h,
		s: a.s + (b.s-a.s)*t,
		l: a.l + (b.l-a.l)*t,
	}
}
