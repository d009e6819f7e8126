package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	keplergl "github.com/flywave/go-keplergl"
)

var (
	fitBBox    string
	fitGeoJSON string
	fitWidth   float64
	fitHeight  float64
	fitPadding float64
	fitWrite   bool
)

var fitCmd = &cobra.Command{
	Use:   "fit FILE",
	Short: "Point the camera of a map config at a bounding box",
	Long: `Sets latitude, longitude and zoom so the bounding box fills the
viewport. The box comes from --bbox or from the extent of a GeoJSON file.
The viewport defaults to the camera settings.

Example:
  keplercfg fit map.json --geojson grid.geojson --write`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVar(&fitBBox, "bbox", "", "Bounding box as minLon,minLat,maxLon,maxLat")
	fitCmd.Flags().StringVar(&fitGeoJSON, "geojson", "", "Fit to the extent of this GeoJSON FeatureCollection")
	fitCmd.Flags().Float64Var(&fitWidth, "width", 0, "Viewport width in pixels")
	fitCmd.Flags().Float64Var(&fitHeight, "height", 0, "Viewport height in pixels")
	fitCmd.Flags().Float64Var(&fitPadding, "padding", -1, "Padding in pixels")
	fitCmd.Flags().BoolVarP(&fitWrite, "write", "w", false, "Rewrite FILE instead of printing")
}

func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q, want minLon,minLat,maxLon,maxLat", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		v[i] = f
	}
	if v[0] > v[2] || v[1] > v[3] {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q, min is greater than max", s)
	}
	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}

func geoJSONBound(path string) (orb.Bound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return orb.Bound{}, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return orb.Bound{}, fmt.Errorf("%s: %w", path, err)
	}
	b, ok := keplergl.BoundOf(fc)
	if !ok {
		return orb.Bound{}, fmt.Errorf("%s: no geometries", path)
	}
	return b, nil
}

func runFit(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	var bound orb.Bound
	switch {
	case fitBBox != "" && fitGeoJSON != "":
		return fmt.Errorf("--bbox and --geojson are exclusive")
	case fitBBox != "":
		bound, err = parseBBox(fitBBox)
	case fitGeoJSON != "":
		bound, err = geoJSONBound(fitGeoJSON)
	default:
		return fmt.Errorf("one of --bbox or --geojson is required")
	}
	if err != nil {
		return err
	}

	w, h, pad := settings.Camera.Width, settings.Camera.Height, settings.Camera.Padding
	if fitWidth > 0 {
		w = fitWidth
	}
	if fitHeight > 0 {
		h = fitHeight
	}
	if fitPadding >= 0 {
		pad = fitPadding
	}

	path := args[0]
	doc, err := keplergl.Load(path)
	if err != nil {
		return err
	}
	doc.Config.MapState = doc.Config.MapState.FitBounds(bound, w, h, pad)
	ms := doc.Config.MapState
	logger.Info("camera fitted", zap.Float64("latitude", ms.Latitude),
		zap.Float64("longitude", ms.Longitude), zap.Float64("zoom", ms.Zoom))

	f, err := keplergl.FormatOf(path)
	if err != nil {
		return err
	}
	if fitWrite {
		return writeDocument(cmd, doc, path, f)
	}
	return writeDocument(cmd, doc, "", f)
}
