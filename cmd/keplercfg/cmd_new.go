package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	keplergl "github.com/flywave/go-keplergl"
	"github.com/flywave/go-keplergl/builder"
)

var (
	newLayers   []string
	newTooltips []string
	newBBox     string
	newOutput   string
	newFormat   string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Build a map config from settings and layer definitions",
	Long: `Creates a map config with the camera, base map and color range from
the settings file and one layer per --layer flag.

Layers are given as TYPE:DATASET[:LABEL], TYPE is geojson or trip.
Tooltips are given as DATASET:FIELD[,FIELD...].

Example:
  keplercfg new --layer geojson:Grid_json --layer trip:Trips \
    --tooltip Trips:creation_id,agent_type --bbox 10.4,53.3,10.7,53.5 -o map.json`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringArrayVarP(&newLayers, "layer", "l", nil, "Layer as TYPE:DATASET[:LABEL] (repeatable)")
	newCmd.Flags().StringArrayVarP(&newTooltips, "tooltip", "t", nil, "Tooltip fields as DATASET:FIELD[,FIELD...] (repeatable)")
	newCmd.Flags().StringVar(&newBBox, "bbox", "", "Fit the camera to minLon,minLat,maxLon,maxLat")
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Output file (default: stdout)")
	newCmd.Flags().StringVar(&newFormat, "to", "json", "Output format for stdout: json or yaml")
}

func parseLayerSpec(s string) (builder.LayerSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[1] == "" {
		return builder.LayerSpec{}, fmt.Errorf("invalid layer %q, want TYPE:DATASET[:LABEL]", s)
	}
	spec := builder.LayerSpec{Type: keplergl.LayerType(parts[0]), DataID: parts[1]}
	if len(parts) == 3 {
		spec.Label = parts[2]
	}
	return spec, nil
}

func parseTooltip(s string) (string, []string, error) {
	dataID, fields, ok := strings.Cut(s, ":")
	if !ok || dataID == "" {
		return "", nil, fmt.Errorf("invalid tooltip %q, want DATASET:FIELD[,FIELD...]", s)
	}
	var names []string
	for _, f := range strings.Split(fields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			names = append(names, f)
		}
	}
	return dataID, names, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	f, err := keplergl.ParseFormat(newFormat)
	if err != nil {
		return err
	}

	b := builder.New(settings)
	for _, l := range newLayers {
		spec, err := parseLayerSpec(l)
		if err != nil {
			return err
		}
		id, err := b.AddLayer(spec)
		if err != nil {
			return err
		}
		logger.Debug("layer added", zap.String("id", id), zap.String("type", string(spec.Type)), zap.String("data", spec.DataID))
	}
	for _, t := range newTooltips {
		dataID, fields, err := parseTooltip(t)
		if err != nil {
			return err
		}
		b.AddTooltip(dataID, fields...)
	}
	if newBBox != "" {
		bound, err := parseBBox(newBBox)
		if err != nil {
			return err
		}
		b.FitBounds(bound)
	}

	doc, err := b.Build()
	if err != nil {
		return err
	}
	return writeDocument(cmd, doc, newOutput, f)
}
