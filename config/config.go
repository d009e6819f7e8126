// Package config loads the settings new map documents are built from.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/flywave/go-keplergl/color"
)

type Settings struct {
	Style     StyleSettings     `toml:"style"`
	Camera    CameraSettings    `toml:"camera"`
	Layers    LayerSettings     `toml:"layers"`
	Animation AnimationSettings `toml:"animation"`
}

type StyleSettings struct {
	Type string `toml:"type"`
	// hex, e.g. "#0A111F"
	BuildingColor string   `toml:"building_color"`
	HiddenGroups  []string `toml:"hidden_groups"`
}

type CameraSettings struct {
	Latitude   float64 `toml:"latitude"`
	Longitude  float64 `toml:"longitude"`
	Zoom       float64 `toml:"zoom"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Padding    float64 `toml:"padding"`
	DragRotate bool    `toml:"drag_rotate"`
}

type LayerSettings struct {
	ColorRange string  `toml:"color_range"`
	Opacity    float64 `toml:"opacity"`
	Blending   string  `toml:"blending"`
}

type AnimationSettings struct {
	Speed float64 `toml:"speed"`
}

// Default returns the settings the drone simulation map was saved with.
func Default() Settings {
	return Settings{
		Style: StyleSettings{
			Type:          "dark",
			BuildingColor: "#0A111F",
			HiddenGroups:  []string{"border", "3d building"},
		},
		Camera: CameraSettings{
			Latitude:  53.39925475360021,
			Longitude: 10.561190176985892,
			Zoom:      11,
			Width:     1280,
			Height:    800,
			Padding:   20,
		},
		Layers: LayerSettings{
			ColorRange: color.DefaultRange,
			Opacity:    0.8,
			Blending:   "normal",
		},
		Animation: AnimationSettings{Speed: 0.5},
	}
}

// Parse reads TOML settings over the defaults. Unknown keys are an error.
func Parse(r io.Reader) (Settings, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("unknown settings: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads settings from path. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Style.BuildingColor != "" {
		if _, err := color.ParseHex(s.Style.BuildingColor); err != nil {
			return fmt.Errorf("style.building_color: %w", err)
		}
	}
	if _, ok := color.LookupRange(s.Layers.ColorRange); !ok {
		return fmt.Errorf("layers.color_range: unknown range %q (known: %s)",
			s.Layers.ColorRange, strings.Join(color.RangeNames(), ", "))
	}
	if s.Layers.Opacity < 0 || s.Layers.Opacity > 1 {
		return fmt.Errorf("layers.opacity must be within [0, 1], got %g", s.Layers.Opacity)
	}
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return fmt.Errorf("camera.width and camera.height must be positive")
	}
	return nil
}

// BuildingColor returns the parsed building color, ok is false when unset.
func (s Settings) BuildingColor() (color.Color, bool) {
	if s.Style.BuildingColor == "" {
		return color.Color{}, false
	}
	c, err := color.ParseHex(s.Style.BuildingColor)
	return c, err == nil
}
