package keplergl

import "encoding/json"

type VisState struct {
	Filters           []Filter           `json:"filters,omitzero"`
	Layers            []Layer            `json:"layers,omitzero"`
	InteractionConfig *InteractionConfig `json:"interactionConfig,omitempty"`
	LayerBlending     Opt[string]        `json:"layerBlending,omitzero"`
	SplitMaps         []SplitMap         `json:"splitMaps,omitzero"`
	AnimationConfig   *AnimationConfig   `json:"animationConfig,omitempty"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// Layer returns the layer with the given id.
func (v *VisState) Layer(id string) (*Layer, bool) {
	for i := range v.Layers {
		if v.Layers[i].ID == id {
			return &v.Layers[i], true
		}
	}
	return nil, false
}

// LayersForData returns the layers drawing the dataset dataID.
func (v *VisState) LayersForData(dataID string) []*Layer {
	var out []*Layer
	for i := range v.Layers {
		if v.Layers[i].Config.DataID == dataID {
			out = append(out, &v.Layers[i])
		}
	}
	return out
}

// DataIDs returns the datasets referenced by layers and filters, in order
// of first reference.
func (v *VisState) DataIDs() []string {
	seen := map[string]bool{}
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, l := range v.Layers {
		add(l.Config.DataID)
	}
	for _, f := range v.Filters {
		for _, id := range f.DataID {
			add(id)
		}
	}
	return ids
}

type FilterType string

const (
	RangeFilter       FilterType = "range"
	SelectFilter      FilterType = "select"
	MultiSelectFilter FilterType = "multiSelect"
	TimeRangeFilter   FilterType = "timeRange"
	InputFilter       FilterType = "input"
	PolygonFilter     FilterType = "polygon"
)

var filterTypes = map[FilterType]bool{
	RangeFilter: true, SelectFilter: true, MultiSelectFilter: true,
	TimeRangeFilter: true, InputFilter: true, PolygonFilter: true,
}

func (t FilterType) Known() bool {
	return filterTypes[t]
}

// Filter restricts the rows of one or more datasets. DataID and Name are
// parallel: Name[i] is the filtered field of dataset DataID[i].
type Filter struct {
	DataID          []string      `json:"dataId"`
	ID              string        `json:"id"`
	Name            []string      `json:"name"`
	Type            FilterType    `json:"type"`
	Value           Opt[any]      `json:"value,omitzero"`
	Enlarged        Opt[bool]     `json:"enlarged,omitzero"`
	PlotType        Opt[string]   `json:"plotType,omitzero"`
	AnimationWindow Opt[string]   `json:"animationWindow,omitzero"`
	YAxis           Opt[FieldRef] `json:"yAxis,omitzero"`
	Speed           Opt[float64]  `json:"speed,omitzero"`
	LayerID         []string      `json:"layerId,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// FieldFor returns the field filtered on dataset dataID.
func (f *Filter) FieldFor(dataID string) (string, bool) {
	for i, id := range f.DataID {
		if id == dataID && i < len(f.Name) {
			return f.Name[i], true
		}
	}
	return "", false
}

type InteractionConfig struct {
	Tooltip    *TooltipConfig `json:"tooltip,omitempty"`
	Brush      *BrushConfig   `json:"brush,omitempty"`
	Geocoder   *Toggle        `json:"geocoder,omitempty"`
	Coordinate *Toggle        `json:"coordinate,omitempty"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// TooltipConfig lists the fields shown on hover, per dataset.
type TooltipConfig struct {
	FieldsToShow map[string][]TooltipField `json:"fieldsToShow"`
	CompareMode  Opt[bool]                 `json:"compareMode,omitzero"`
	CompareType  Opt[string]               `json:"compareType,omitzero"`
	Enabled      bool                      `json:"enabled"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

type TooltipField struct {
	Name   string      `json:"name"`
	Format Opt[string] `json:"format,omitzero"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

type BrushConfig struct {
	Size    float64 `json:"size"`
	Enabled bool    `json:"enabled"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

type Toggle struct {
	Enabled bool `json:"enabled"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// SplitMap selects the layers shown on one side of a split view.
type SplitMap struct {
	Layers map[string]bool `json:"layers"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

type AnimationConfig struct {
	CurrentTime Opt[float64] `json:"currentTime,omitzero"`
	Speed       float64      `json:"speed"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}
