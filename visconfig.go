package keplergl

import (
	"encoding/json"

	"github.com/flywave/go-keplergl/color"
)

// Range is a [min, max] pair such as sizeRange or heightRange.
type Range [2]float64

// VisConfig holds the per-layer rendering properties. Which members are
// present depends on the layer type; members this package does not model
// are kept in Extra and written back unchanged.
type VisConfig struct {
	Opacity                   Opt[float64]     `json:"opacity,omitzero"`
	StrokeOpacity             Opt[float64]     `json:"strokeOpacity,omitzero"`
	Thickness                 Opt[float64]     `json:"thickness,omitzero"`
	StrokeColor               Opt[color.Color] `json:"strokeColor,omitzero"`
	ColorRange                *color.Range     `json:"colorRange,omitempty"`
	StrokeColorRange          *color.Range     `json:"strokeColorRange,omitempty"`
	Radius                    Opt[float64]     `json:"radius,omitzero"`
	FixedRadius               Opt[bool]        `json:"fixedRadius,omitzero"`
	Outline                   Opt[bool]        `json:"outline,omitzero"`
	Coverage                  Opt[float64]     `json:"coverage,omitzero"`
	WorldUnitSize             Opt[float64]     `json:"worldUnitSize,omitzero"`
	TrailLength               Opt[float64]     `json:"trailLength,omitzero"`
	SizeRange                 Opt[Range]       `json:"sizeRange,omitzero"`
	RadiusRange               Opt[Range]       `json:"radiusRange,omitzero"`
	HeightRange               Opt[Range]       `json:"heightRange,omitzero"`
	ElevationScale            Opt[float64]     `json:"elevationScale,omitzero"`
	EnableElevationZoomFactor Opt[bool]        `json:"enableElevationZoomFactor,omitzero"`
	Stroked                   Opt[bool]        `json:"stroked,omitzero"`
	Filled                    Opt[bool]        `json:"filled,omitzero"`
	Enable3d                  Opt[bool]        `json:"enable3d,omitzero"`
	Wireframe                 Opt[bool]        `json:"wireframe,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// colors returns the single colors set on the vis config, keyed by member name.
func (v *VisConfig) colors() map[string]color.Color {
	out := map[string]color.Color{}
	if c, ok := v.StrokeColor.Get(); ok {
		out["strokeColor"] = c
	}
	return out
}

// ranges returns the color ranges set on the vis config, keyed by member name.
func (v *VisConfig) ranges() map[string]*color.Range {
	out := map[string]*color.Range{}
	if v.ColorRange != nil {
		out["colorRange"] = v.ColorRange
	}
	if v.StrokeColorRange != nil {
		out["strokeColorRange"] = v.StrokeColorRange
	}
	return out
}
