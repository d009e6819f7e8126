package keplergl

import "reflect"

// Every record of the document keeps its decoded layout and unknown
// members, see decodeRecord and encodeRecord.
type (
	documentFields          Document
	configFields            Config
	visStateFields          VisState
	layerFields             Layer
	layerConfigFields       LayerConfig
	textLabelFields         TextLabel
	visConfigFields         VisConfig
	visualChannelsFields    VisualChannels
	filterFields            Filter
	interactionConfigFields InteractionConfig
	tooltipConfigFields     TooltipConfig
	tooltipFieldFields      TooltipField
	brushConfigFields       BrushConfig
	toggleFields            Toggle
	splitMapFields          SplitMap
	animationConfigFields   AnimationConfig
	mapStateFields          MapState
	mapStyleFields          MapStyle
)

func (d Document) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(d), d.layout, d.Extra)
}

func (d *Document) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*documentFields)(d), &d.layout, &d.Extra)
}

func (c Config) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *Config) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*configFields)(c), &c.layout, &c.Extra)
}

func (v VisState) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(v), v.layout, v.Extra)
}

func (v *VisState) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*visStateFields)(v), &v.layout, &v.Extra)
}

func (l Layer) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(l), l.layout, l.Extra)
}

func (l *Layer) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*layerFields)(l), &l.layout, &l.Extra)
}

func (c LayerConfig) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *LayerConfig) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*layerConfigFields)(c), &c.layout, &c.Extra)
}

func (t TextLabel) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(t), t.layout, t.Extra)
}

func (t *TextLabel) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*textLabelFields)(t), &t.layout, &t.Extra)
}

func (v VisConfig) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(v), v.layout, v.Extra)
}

func (v *VisConfig) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*visConfigFields)(v), &v.layout, &v.Extra)
}

func (c VisualChannels) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *VisualChannels) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*visualChannelsFields)(c), &c.layout, &c.Extra)
}

func (f Filter) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(f), f.layout, f.Extra)
}

func (f *Filter) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*filterFields)(f), &f.layout, &f.Extra)
}

func (c InteractionConfig) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *InteractionConfig) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*interactionConfigFields)(c), &c.layout, &c.Extra)
}

func (c TooltipConfig) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *TooltipConfig) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*tooltipConfigFields)(c), &c.layout, &c.Extra)
}

func (f TooltipField) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(f), f.layout, f.Extra)
}

func (f *TooltipField) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*tooltipFieldFields)(f), &f.layout, &f.Extra)
}

func (c BrushConfig) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *BrushConfig) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*brushConfigFields)(c), &c.layout, &c.Extra)
}

func (t Toggle) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(t), t.layout, t.Extra)
}

func (t *Toggle) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*toggleFields)(t), &t.layout, &t.Extra)
}

func (s SplitMap) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(s), s.layout, s.Extra)
}

func (s *SplitMap) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*splitMapFields)(s), &s.layout, &s.Extra)
}

func (c AnimationConfig) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(c), c.layout, c.Extra)
}

func (c *AnimationConfig) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*animationConfigFields)(c), &c.layout, &c.Extra)
}

func (m MapState) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(m), m.layout, m.Extra)
}

func (m *MapState) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*mapStateFields)(m), &m.layout, &m.Extra)
}

func (s MapStyle) MarshalJSON() ([]byte, error) {
	return encodeRecord(reflect.ValueOf(s), s.layout, s.Extra)
}

func (s *MapStyle) UnmarshalJSON(b []byte) error {
	return decodeRecord(b, (*mapStyleFields)(s), &s.layout, &s.Extra)
}
