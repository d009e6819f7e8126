package builder

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	keplergl "github.com/flywave/go-keplergl"
	"github.com/flywave/go-keplergl/color"
	"github.com/flywave/go-keplergl/config"
)

// layer colors handed out in order to layers without an explicit color
var layerColors = []color.Color{
	color.RGB(231, 0, 213),
	color.RGB(23, 184, 190),
	color.RGB(246, 209, 138),
	color.RGB(18, 147, 154),
	color.RGB(221, 178, 124),
	color.RGB(136, 87, 44),
}

var highlightColor = color.RGBA(252, 242, 26, 255)

// LayerSpec describes a layer to add. Zero members take the defaults.
type LayerSpec struct {
	ID         string
	Type       keplergl.LayerType
	DataID     string
	Label      string
	Color      *color.Color
	ColorRange string
	Hidden     bool
	// geojson only
	Filled    bool
	Thickness float64
	// column name of the geometry, "_geojson" by default
	GeometryColumn string
}

// Builder assembles a map document from settings and layer specs.
type Builder struct {
	settings config.Settings
	doc      *keplergl.Document
	ids      map[string]bool
	newID    func() string
}

// New returns a Builder whose camera, style and animation come from s.
func New(s config.Settings) *Builder {
	doc := keplergl.New()
	doc.Config.MapState = keplergl.MapState{
		Latitude:   s.Camera.Latitude,
		Longitude:  s.Camera.Longitude,
		Zoom:       s.Camera.Zoom,
		DragRotate: s.Camera.DragRotate,
	}
	style := &doc.Config.MapStyle
	style.StyleType = s.Style.Type
	for _, g := range s.Style.HiddenGroups {
		style.VisibleLayerGroups[g] = false
	}
	if c, ok := s.BuildingColor(); ok {
		style.ThreeDBuildingColor = keplergl.Some(c)
	}
	style.MapStyles = map[string]json.RawMessage{}
	doc.Config.VisState.LayerBlending = keplergl.Some(s.Layers.Blending)
	doc.Config.VisState.AnimationConfig = &keplergl.AnimationConfig{
		CurrentTime: keplergl.Null[float64](),
		Speed:       s.Animation.Speed,
	}

	return &Builder{
		settings: s,
		doc:      doc,
		ids:      map[string]bool{},
		newID:    shortID,
	}
}

// shortID returns a 7 character id in the style kepler.gl generates.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

func (b *Builder) uniqueID(id string) (string, error) {
	if id != "" {
		if b.ids[id] {
			return "", fmt.Errorf("duplicate id %q", id)
		}
		b.ids[id] = true
		return id, nil
	}
	for {
		id = b.newID()
		if !b.ids[id] {
			b.ids[id] = true
			return id, nil
		}
	}
}

func (b *Builder) colorRange(name string) (*color.Range, error) {
	if name == "" {
		name = b.settings.Layers.ColorRange
	}
	r, ok := color.LookupRange(name)
	if !ok {
		return nil, fmt.Errorf("unknown color range %q", name)
	}
	return &r, nil
}

// AddLayer appends a geojson or trip layer and returns its id.
func (b *Builder) AddLayer(spec LayerSpec) (string, error) {
	if spec.DataID == "" {
		return "", fmt.Errorf("layer needs a dataset")
	}
	if spec.Type != keplergl.GeoJSON && spec.Type != keplergl.Trip {
		return "", fmt.Errorf("unsupported layer type %q, only %s and %s layers can be built",
			spec.Type, keplergl.GeoJSON, keplergl.Trip)
	}
	cr, err := b.colorRange(spec.ColorRange)
	if err != nil {
		return "", err
	}
	id, err := b.uniqueID(spec.ID)
	if err != nil {
		return "", err
	}

	label := spec.Label
	if label == "" {
		label = spec.DataID
	}
	geometry := spec.GeometryColumn
	if geometry == "" {
		geometry = "_geojson"
	}

	var l keplergl.Layer
	if spec.Type == keplergl.GeoJSON {
		l = b.geoJSONLayer(spec, cr)
	} else {
		l = b.tripLayer(spec, cr)
	}
	l.ID = id
	l.Config.DataID = spec.DataID
	l.Config.Label = label
	l.Config.HighlightColor = keplergl.Some(highlightColor)
	l.Config.Columns = map[string]keplergl.Opt[string]{"geojson": keplergl.Some(geometry)}
	l.Config.IsVisible = !spec.Hidden
	l.Config.Hidden = keplergl.Some(false)
	l.Config.TextLabel = []keplergl.TextLabel{keplergl.DefaultTextLabel()}

	b.doc.Config.VisState.Layers = append(b.doc.Config.VisState.Layers, l)
	return id, nil
}

func (b *Builder) geoJSONLayer(spec LayerSpec, cr *color.Range) keplergl.Layer {
	c := layerColors[len(b.doc.Config.VisState.Layers)%len(layerColors)]
	if spec.Color != nil {
		c = *spec.Color
	}
	thickness := spec.Thickness
	if thickness == 0 {
		thickness = 0.5
	}
	stroke := *cr
	stroke.Colors = append([]string(nil), cr.Colors...)

	return keplergl.Layer{
		Type: keplergl.GeoJSON,
		Config: keplergl.LayerConfig{
			Color: keplergl.Some(c),
			VisConfig: keplergl.VisConfig{
				Opacity:                   keplergl.Some(b.settings.Layers.Opacity),
				StrokeOpacity:             keplergl.Some(b.settings.Layers.Opacity),
				Thickness:                 keplergl.Some(thickness),
				StrokeColor:               keplergl.Null[color.Color](),
				ColorRange:                cr,
				StrokeColorRange:          &stroke,
				Radius:                    keplergl.Some(10.0),
				SizeRange:                 keplergl.Some(keplergl.Range{0, 10}),
				RadiusRange:               keplergl.Some(keplergl.Range{0, 50}),
				HeightRange:               keplergl.Some(keplergl.Range{0, 500}),
				ElevationScale:            keplergl.Some(5.0),
				EnableElevationZoomFactor: keplergl.Some(true),
				Stroked:                   keplergl.Some(true),
				Filled:                    keplergl.Some(spec.Filled),
				Enable3d:                  keplergl.Some(false),
				Wireframe:                 keplergl.Some(false),
			},
		},
		VisualChannels: keplergl.VisualChannels{
			ColorField:       keplergl.Null[keplergl.FieldRef](),
			ColorScale:       keplergl.Some(keplergl.Quantile),
			StrokeColorField: keplergl.Null[keplergl.FieldRef](),
			StrokeColorScale: keplergl.Some(keplergl.Quantile),
			SizeField:        keplergl.Null[keplergl.FieldRef](),
			SizeScale:        keplergl.Some(keplergl.Linear),
			HeightField:      keplergl.Null[keplergl.FieldRef](),
			HeightScale:      keplergl.Some(keplergl.Linear),
			RadiusField:      keplergl.Null[keplergl.FieldRef](),
			RadiusScale:      keplergl.Some(keplergl.Linear),
		},
	}
}

func (b *Builder) tripLayer(spec LayerSpec, cr *color.Range) keplergl.Layer {
	thickness := spec.Thickness
	if thickness == 0 {
		thickness = 4.5
	}
	visRange := *cr
	visRange.Colors = append([]string(nil), cr.Colors...)

	l := keplergl.Layer{
		Type: keplergl.Trip,
		Config: keplergl.LayerConfig{
			ColorRange: cr,
			VisConfig: keplergl.VisConfig{
				Opacity:     keplergl.Some(b.settings.Layers.Opacity),
				Thickness:   keplergl.Some(thickness),
				ColorRange:  &visRange,
				TrailLength: keplergl.Some(180.0),
				SizeRange:   keplergl.Some(keplergl.Range{0, 10}),
			},
		},
		VisualChannels: keplergl.VisualChannels{
			ColorField: keplergl.Null[keplergl.FieldRef](),
			ColorScale: keplergl.Some(keplergl.Quantile),
			SizeField:  keplergl.Null[keplergl.FieldRef](),
			SizeScale:  keplergl.Some(keplergl.Linear),
		},
	}
	if spec.Color != nil {
		l.Config.Color = keplergl.Some(*spec.Color)
	}
	return l
}

func (b *Builder) interaction() *keplergl.InteractionConfig {
	vs := &b.doc.Config.VisState
	if vs.InteractionConfig == nil {
		vs.InteractionConfig = &keplergl.InteractionConfig{
			Tooltip: &keplergl.TooltipConfig{
				FieldsToShow: map[string][]keplergl.TooltipField{},
				CompareMode:  keplergl.Some(false),
				CompareType:  keplergl.Some("absolute"),
				Enabled:      true,
			},
			Brush:      &keplergl.BrushConfig{Size: 0.5},
			Geocoder:   &keplergl.Toggle{},
			Coordinate: &keplergl.Toggle{},
		}
	}
	return vs.InteractionConfig
}

// AddTooltip shows fields of dataID on hover.
func (b *Builder) AddTooltip(dataID string, fields ...string) {
	tt := b.interaction().Tooltip
	list := tt.FieldsToShow[dataID]
	if list == nil {
		list = []keplergl.TooltipField{}
	}
	for _, f := range fields {
		list = append(list, keplergl.TooltipField{Name: f, Format: keplergl.Null[string]()})
	}
	tt.FieldsToShow[dataID] = list
}

// AddFilter appends f and returns its id, generating one when f.ID is empty.
func (b *Builder) AddFilter(f keplergl.Filter) (string, error) {
	id, err := b.uniqueID(f.ID)
	if err != nil {
		return "", err
	}
	f.ID = id
	b.doc.Config.VisState.Filters = append(b.doc.Config.VisState.Filters, f)
	return id, nil
}

func (b *Builder) SetCamera(latitude, longitude, zoom float64) {
	ms := &b.doc.Config.MapState
	ms.Latitude, ms.Longitude, ms.Zoom = latitude, longitude, zoom
}

// FitBounds moves the camera onto bound using the configured viewport.
func (b *Builder) FitBounds(bound orb.Bound) {
	c := b.settings.Camera
	b.doc.Config.MapState = b.doc.Config.MapState.FitBounds(bound, c.Width, c.Height, c.Padding)
}

// SetAnimationTime sets the animation cursor in epoch milliseconds.
func (b *Builder) SetAnimationTime(ms float64) {
	b.doc.Config.VisState.AnimationConfig.CurrentTime = keplergl.Some(ms)
}

// Build validates and returns the document. Every dataset a layer draws
// gets a tooltip entry, possibly empty.
func (b *Builder) Build() (*keplergl.Document, error) {
	tt := b.interaction().Tooltip
	for _, id := range b.doc.Config.VisState.DataIDs() {
		if _, ok := tt.FieldsToShow[id]; !ok {
			tt.FieldsToShow[id] = []keplergl.TooltipField{}
		}
	}
	if err := keplergl.Validate(b.doc); err != nil {
		return nil, err
	}
	return b.doc, nil
}
