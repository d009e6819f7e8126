package keplergl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flywave/go-keplergl/color"
)

// Problem is one violated constraint, Path is a JSON-pointer-like location.
type Problem struct {
	Path string
	Msg  string
}

func (p Problem) String() string {
	return p.Path + ": " + p.Msg
}

type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid map config: " + e.Problems[0].String()
	}
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("invalid map config: %d problems: %s", len(e.Problems), strings.Join(parts, "; "))
}

type validator struct {
	problems []Problem
}

func (v *validator) addf(path, format string, args ...interface{}) {
	v.problems = append(v.problems, Problem{Path: path, Msg: fmt.Sprintf(format, args...)})
}

func (v *validator) color(path string, c color.Color) {
	if !c.Valid() {
		v.addf(path, "color components must be within [0, 255], got %v", c.Components())
	}
}

func (v *validator) colorOpt(path string, c Opt[color.Color]) {
	if c, ok := c.Get(); ok {
		v.color(path, c)
	}
}

func (v *validator) colorRange(path string, r *color.Range) {
	if err := r.Validate(); err != nil {
		v.addf(path, "%v", err)
	}
}

func (v *validator) between(path string, o Opt[float64], min, max float64) {
	if f, ok := o.Get(); ok && (f < min || f > max) {
		v.addf(path, "must be within [%g, %g], got %g", min, max, f)
	}
}

func (v *validator) rangeOpt(path string, o Opt[Range]) {
	if r, ok := o.Get(); ok && r[0] > r[1] {
		v.addf(path, "min %g is greater than max %g", r[0], r[1])
	}
}

// Validate checks d against the document invariants and returns a
// *ValidationError listing every problem found.
func Validate(d *Document) error {
	v := &validator{}

	if !knownVersions[d.Version] {
		v.addf("/version", "unsupported version %q", d.Version)
	}

	vs := &d.Config.VisState
	ids := map[string]bool{}
	for i := range vs.Layers {
		v.layer(fmt.Sprintf("/config/visState/layers/%d", i), &vs.Layers[i], ids)
	}
	for i := range vs.Filters {
		v.filter(fmt.Sprintf("/config/visState/filters/%d", i), &vs.Filters[i])
	}
	for i, sm := range vs.SplitMaps {
		for _, id := range sortedKeys(sm.Layers) {
			if !ids[id] {
				v.addf(fmt.Sprintf("/config/visState/splitMaps/%d/layers/%s", i, id), "unknown layer")
			}
		}
	}
	if ic := vs.InteractionConfig; ic != nil && ic.Tooltip != nil {
		for _, dataID := range sortedKeys(ic.Tooltip.FieldsToShow) {
			for j, f := range ic.Tooltip.FieldsToShow[dataID] {
				if f.Name == "" {
					v.addf(fmt.Sprintf("/config/visState/interactionConfig/tooltip/fieldsToShow/%s/%d", dataID, j), "empty field name")
				}
			}
		}
	}
	if ac := vs.AnimationConfig; ac != nil && ac.Speed < 0 {
		v.addf("/config/visState/animationConfig/speed", "must not be negative")
	}

	ms := d.Config.MapState
	v.between("/config/mapState/latitude", Some(ms.Latitude), -90, 90)
	v.between("/config/mapState/longitude", Some(ms.Longitude), -180, 180)
	v.between("/config/mapState/zoom", Some(ms.Zoom), MinZoom, MaxZoom)
	v.between("/config/mapState/pitch", Some(ms.Pitch), 0, MaxPitch)

	style := &d.Config.MapStyle
	if !style.KnownStyle() {
		v.addf("/config/mapStyle/styleType", "unknown style %q", style.StyleType)
	}
	v.colorOpt("/config/mapStyle/threeDBuildingColor", style.ThreeDBuildingColor)

	if len(v.problems) > 0 {
		return &ValidationError{Problems: v.problems}
	}
	return nil
}

func (v *validator) layer(path string, l *Layer, ids map[string]bool) {
	switch {
	case l.ID == "":
		v.addf(path+"/id", "missing layer id")
	case ids[l.ID]:
		v.addf(path+"/id", "duplicate layer id %q", l.ID)
	}
	ids[l.ID] = true

	if !l.Type.Known() {
		v.addf(path+"/type", "unknown layer type %q", l.Type)
	}

	c := &l.Config
	if c.DataID == "" {
		v.addf(path+"/config/dataId", "missing dataset reference")
	}
	v.colorOpt(path+"/config/color", c.Color)
	v.colorOpt(path+"/config/highlightColor", c.HighlightColor)
	if c.ColorRange != nil {
		v.colorRange(path+"/config/colorRange", c.ColorRange)
	}
	for i, tl := range c.TextLabel {
		v.color(fmt.Sprintf("%s/config/textLabel/%d/color", path, i), tl.Color)
	}

	vc := &c.VisConfig
	v.between(path+"/config/visConfig/opacity", vc.Opacity, 0, 1)
	v.between(path+"/config/visConfig/strokeOpacity", vc.StrokeOpacity, 0, 1)
	cols := vc.colors()
	for _, name := range sortedKeys(cols) {
		v.color(path+"/config/visConfig/"+name, cols[name])
	}
	ranges := vc.ranges()
	for _, name := range sortedKeys(ranges) {
		v.colorRange(path+"/config/visConfig/"+name, ranges[name])
	}
	v.rangeOpt(path+"/config/visConfig/sizeRange", vc.SizeRange)
	v.rangeOpt(path+"/config/visConfig/radiusRange", vc.RadiusRange)
	v.rangeOpt(path+"/config/visConfig/heightRange", vc.HeightRange)

	for _, ch := range l.VisualChannels.Channels() {
		if s, ok := ch.Scale.Get(); ok && !s.Known() {
			v.addf(path+"/visualChannels/"+ch.Name+"Scale", "unknown scale %q", s)
		}
		if f, ok := ch.Field.Get(); ok && f.Name == "" {
			v.addf(path+"/visualChannels/"+ch.Name+"Field", "empty field name")
		}
	}
}

func (v *validator) filter(path string, f *Filter) {
	if f.ID == "" {
		v.addf(path+"/id", "missing filter id")
	}
	if !f.Type.Known() {
		v.addf(path+"/type", "unknown filter type %q", f.Type)
	}
	if len(f.DataID) == 0 {
		v.addf(path+"/dataId", "missing dataset reference")
	}
	if len(f.Name) != len(f.DataID) {
		v.addf(path+"/name", "%d field names for %d datasets", len(f.Name), len(f.DataID))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
