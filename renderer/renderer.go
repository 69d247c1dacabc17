// Package renderer defines the interface for static exports of an annotated
// score: the grid glyphs plus the same arcs the live overlay would draw.
package renderer

import (
	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/theme"
)

// Scene is everything a static export needs. Gutter is the uniform left
// offset to content start, matching what the live overlay would measure.
type Scene struct {
	Display *displaylist.DisplayList
	Theme   theme.Theme
	Gutter  float64

	// CurveGlyphsBaked mirrors the overlay's render gate: when set, slur and
	// beat-loop strokes are suppressed (the glyphs carry them), ornament
	// arcs never are.
	CurveGlyphsBaked bool
}

// Renderer renders a scene into a final document, e.g. a PDF byte slice.
type Renderer interface {
	Render(scene *Scene) ([]byte, error)
}
