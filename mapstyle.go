package keplergl

import (
	"encoding/json"

	"github.com/flywave/go-keplergl/color"
)

// Base map layer groups toggled through visibleLayerGroups.
const (
	GroupLabel      = "label"
	GroupRoad       = "road"
	GroupBorder     = "border"
	GroupBuilding   = "building"
	GroupWater      = "water"
	GroupLand       = "land"
	Group3DBuilding = "3d building"
)

var styleTypes = map[string]bool{
	"dark": true, "light": true, "muted": true, "muted_night": true, "satellite": true, "voyager": true,
}

type MapStyle struct {
	StyleType           string                     `json:"styleType"`
	TopLayerGroups      map[string]bool            `json:"topLayerGroups,omitzero"`
	VisibleLayerGroups  map[string]bool            `json:"visibleLayerGroups,omitzero"`
	ThreeDBuildingColor Opt[color.Color]           `json:"threeDBuildingColor,omitzero"`
	MapStyles           map[string]json.RawMessage `json:"mapStyles,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// DefaultLayerGroups is the base map layer visibility kepler.gl starts with.
func DefaultLayerGroups() map[string]bool {
	return map[string]bool{
		GroupLabel:      true,
		GroupRoad:       true,
		GroupBorder:     false,
		GroupBuilding:   true,
		GroupWater:      true,
		GroupLand:       true,
		Group3DBuilding: false,
	}
}

// KnownStyle reports whether styleType is a built-in base map or one of
// the custom styles declared in MapStyles.
func (s *MapStyle) KnownStyle() bool {
	if styleTypes[s.StyleType] {
		return true
	}
	_, ok := s.MapStyles[s.StyleType]
	return ok
}
