package keplergl

import "encoding/json"

type ScaleType string

const (
	Linear     ScaleType = "linear"
	Sqrt       ScaleType = "sqrt"
	Log        ScaleType = "log"
	Ordinal    ScaleType = "ordinal"
	Quantile   ScaleType = "quantile"
	Quantize   ScaleType = "quantize"
	PointScale ScaleType = "point"
)

var scaleTypes = map[ScaleType]bool{
	Linear: true, Sqrt: true, Log: true, Ordinal: true, Quantile: true, Quantize: true, PointScale: true,
}

func (s ScaleType) Known() bool {
	return scaleTypes[s]
}

// VisualChannels maps dataset fields to visual properties. An unset
// field (null) means the property is constant.
type VisualChannels struct {
	ColorField       Opt[FieldRef]  `json:"colorField,omitzero"`
	ColorScale       Opt[ScaleType] `json:"colorScale,omitzero"`
	StrokeColorField Opt[FieldRef]  `json:"strokeColorField,omitzero"`
	StrokeColorScale Opt[ScaleType] `json:"strokeColorScale,omitzero"`
	SizeField        Opt[FieldRef]  `json:"sizeField,omitzero"`
	SizeScale        Opt[ScaleType] `json:"sizeScale,omitzero"`
	HeightField      Opt[FieldRef]  `json:"heightField,omitzero"`
	HeightScale      Opt[ScaleType] `json:"heightScale,omitzero"`
	RadiusField      Opt[FieldRef]  `json:"radiusField,omitzero"`
	RadiusScale      Opt[ScaleType] `json:"radiusScale,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// Channel is one field/scale pair of VisualChannels.
type Channel struct {
	Name  string
	Field Opt[FieldRef]
	Scale Opt[ScaleType]
}

// Channels lists the modeled channels in document order.
func (c *VisualChannels) Channels() []Channel {
	return []Channel{
		{"color", c.ColorField, c.ColorScale},
		{"strokeColor", c.StrokeColorField, c.StrokeColorScale},
		{"size", c.SizeField, c.SizeScale},
		{"height", c.HeightField, c.HeightScale},
		{"radius", c.RadiusField, c.RadiusScale},
	}
}
