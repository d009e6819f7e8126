package keplergl

import (
	"encoding/json"

	"github.com/flywave/go-keplergl/color"
)

type LayerType string

const (
	GeoJSON LayerType = "geojson"
	Trip    LayerType = "trip"
	Point   LayerType = "point"
	Arc     LayerType = "arc"
	Line    LayerType = "line"
	Hexagon LayerType = "hexagon"
	Grid    LayerType = "grid"
	Heatmap LayerType = "heatmap"
	Cluster LayerType = "cluster"
	Icon    LayerType = "icon"
	H3      LayerType = "hexagonId"
	S2      LayerType = "s2"
)

var layerTypes = map[LayerType]bool{
	GeoJSON: true, Trip: true, Point: true, Arc: true, Line: true, Hexagon: true,
	Grid: true, Heatmap: true, Cluster: true, Icon: true, H3: true, S2: true,
}

func (t LayerType) Known() bool {
	return layerTypes[t]
}

type Layer struct {
	ID             string         `json:"id"`
	Type           LayerType      `json:"type"`
	Config         LayerConfig    `json:"config"`
	VisualChannels VisualChannels `json:"visualChannels,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

type LayerConfig struct {
	DataID         string                 `json:"dataId"`
	Label          string                 `json:"label"`
	Color          Opt[color.Color]       `json:"color,omitzero"`
	ColorRange     *color.Range           `json:"colorRange,omitempty"`
	HighlightColor Opt[color.Color]       `json:"highlightColor,omitzero"`
	Columns        map[string]Opt[string] `json:"columns,omitzero"`
	IsVisible      bool                   `json:"isVisible"`
	VisConfig      VisConfig              `json:"visConfig"`
	Hidden         Opt[bool]              `json:"hidden,omitzero"`
	TextLabel      []TextLabel            `json:"textLabel,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// FieldRef points at a column of the layer's dataset.
type FieldRef struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type TextLabel struct {
	Field     Opt[FieldRef] `json:"field,omitzero"`
	Color     color.Color   `json:"color"`
	Size      float64       `json:"size"`
	Offset    [2]float64    `json:"offset"`
	Anchor    string        `json:"anchor"`
	Alignment string        `json:"alignment"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// DefaultTextLabel is the unbound label kepler.gl attaches to every layer.
func DefaultTextLabel() TextLabel {
	return TextLabel{
		Field:     Null[FieldRef](),
		Color:     color.RGB(255, 255, 255),
		Size:      18,
		Anchor:    "start",
		Alignment: "center",
	}
}
