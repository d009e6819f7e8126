package keplergl

import (
	"encoding/json"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// MapState is the camera.
type MapState struct {
	Bearing    float64 `json:"bearing"`
	DragRotate bool    `json:"dragRotate"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Pitch      float64 `json:"pitch"`
	Zoom       float64 `json:"zoom"`
	IsSplit    bool    `json:"isSplit"`

	Extra  map[string]json.RawMessage `json:"-"`
	layout layout
}

const (
	MinZoom  = 0
	MaxZoom  = 22
	MaxPitch = 85

	// zoom used when fitting a single point
	PointZoom = 15

	// world size in pixels at zoom 0 for the renderer's 512px tiles
	worldSize = 512
	maxLat    = 85.051129
)

// FitBounds returns a copy of m centered on b with the largest zoom that
// shows all of b in a width x height viewport, keeping padding pixels free
// on every side. Bearing and pitch are reset.
func (m MapState) FitBounds(b orb.Bound, width, height, padding float64) MapState {
	x0, y0 := mercator(b.Min)
	x1, y1 := mercator(b.Max)
	dx, dy := math.Abs(x1-x0), math.Abs(y1-y0)

	w := math.Max(width-2*padding, 1)
	h := math.Max(height-2*padding, 1)

	zoom := math.Inf(1)
	if dx > 0 {
		zoom = math.Log2(w / (dx * worldSize))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(h/(dy*worldSize)))
	}
	if math.IsInf(zoom, 1) {
		zoom = PointZoom
	}

	m.Longitude = (b.Min.Lon() + b.Max.Lon()) / 2
	m.Latitude = unmercatorY((y0 + y1) / 2)
	m.Zoom = math.Max(MinZoom, math.Min(MaxZoom, zoom))
	m.Bearing = 0
	m.Pitch = 0
	return m
}

// BoundOf returns the bound of all feature geometries. ok is false when
// the collection has no geometry.
func BoundOf(fc *geojson.FeatureCollection) (b orb.Bound, ok bool) {
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		fb := f.Geometry.Bound()
		if !ok {
			b, ok = fb, true
			continue
		}
		b = b.Union(fb)
	}
	return b, ok
}

// mercator projects p to the unit square, y grows southwards.
func mercator(p orb.Point) (float64, float64) {
	lat := math.Max(-maxLat, math.Min(maxLat, p.Lat()))
	x := (p.Lon() + 180) / 360
	sin := math.Sin(lat * math.Pi / 180)
	y := 0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)
	return x, y
}

func unmercatorY(y float64) float64 {
	n := math.Pi - 2*math.Pi*y
	return 180 / math.Pi * math.Atan(math.Sinh(n))
}
