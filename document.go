package keplergl

import "encoding/json"

// Version is the schema version written by this package.
const Version = "v1"

var knownVersions = map[string]bool{Version: true}

// Document is a saved kepler.gl map configuration.
type Document struct {
	Version string `json:"version"`
	Config  Config `json:"config"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

type Config struct {
	VisState VisState `json:"visState"`
	MapState MapState `json:"mapState"`
	MapStyle MapStyle `json:"mapStyle"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

// New returns an empty v1 document with the list members initialized,
// so they encode as [] the way kepler.gl writes them.
func New() *Document {
	return &Document{
		Version: Version,
		Config: Config{
			VisState: VisState{
				Filters:   []Filter{},
				Layers:    []Layer{},
				SplitMaps: []SplitMap{},
			},
			MapStyle: MapStyle{
				StyleType:          "dark",
				TopLayerGroups:     map[string]bool{},
				VisibleLayerGroups: DefaultLayerGroups(),
			},
		},
	}
}
