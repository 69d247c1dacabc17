// Package theme holds the overlay's styling knobs, loadable from YAML so a
// host application can restyle arcs without recompiling.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme configures stroke styling per arc category and the class names the
// overlay looks for in the host tree. Zero values fall back to Default().
type Theme struct {
	SlurColor     string  `yaml:"slurColor"`
	BeatLoopColor string  `yaml:"beatLoopColor"`
	OrnamentColor string  `yaml:"ornamentColor"`
	SlurWidth     float64 `yaml:"slurWidth"`
	BeatLoopWidth float64 `yaml:"beatLoopWidth"`
	OrnamentWidth float64 `yaml:"ornamentWidth"`

	// ContentClass marks the child of each line element where notation
	// content starts; its left offset is the gutter.
	ContentClass string `yaml:"contentClass"`

	// BakedCurveGlyphs declares that the grid font already bakes slur and
	// beat-loop curves, suppressing their SVG and PDF strokes.
	BakedCurveGlyphs bool `yaml:"bakedCurveGlyphs"`
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		SlurColor:     "#1a1a1a",
		BeatLoopColor: "#1a1a1a",
		OrnamentColor: "#666666",
		SlurWidth:     1.5,
		BeatLoopWidth: 1.2,
		OrnamentWidth: 1,
		ContentClass:  "line-content",
	}
}

// Load reads a YAML theme file and merges it over Default(): fields absent
// from the file keep their default value.
func Load(path string) (Theme, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t.Normalize(), nil
}

// Normalize backfills zero values, so a partial theme (or the zero value)
// cannot produce invisible strokes or an unmatched content class.
func (t Theme) Normalize() Theme {
	d := Default()
	if t.SlurColor == "" {
		t.SlurColor = d.SlurColor
	}
	if t.BeatLoopColor == "" {
		t.BeatLoopColor = d.BeatLoopColor
	}
	if t.OrnamentColor == "" {
		t.OrnamentColor = d.OrnamentColor
	}
	if t.SlurWidth <= 0 {
		t.SlurWidth = d.SlurWidth
	}
	if t.BeatLoopWidth <= 0 {
		t.BeatLoopWidth = d.BeatLoopWidth
	}
	if t.OrnamentWidth <= 0 {
		t.OrnamentWidth = d.OrnamentWidth
	}
	if t.ContentClass == "" {
		t.ContentClass = d.ContentClass
	}
	return t
}
