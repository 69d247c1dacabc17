// Package displaylist defines the wire model produced by the external
// document/layout engine. Field names and JSON tags follow the engine's
// output exactly; this package adds no layout logic of its own.
package displaylist

// DisplayList is the per-render output of the document engine: everything the
// display needs, pre-positioned, with no further layout work required.
type DisplayList struct {
	Header *DocumentHeader `json:"header,omitempty"`
	Lines  []RenderLine    `json:"lines"`
}

// DocumentHeader carries optional title/composer text shown above the grid.
type DocumentHeader struct {
	Title    string `json:"title,omitempty"`
	Composer string `json:"composer,omitempty"`
}

// RenderLine is one notation line. Arc coordinates are line-local with the
// cumulative line offset Y already factored in by the engine; the overlay
// subtracts Y and re-adds the measured element top when composing.
type RenderLine struct {
	LineIndex int     `json:"line_index"`
	Y         float64 `json:"y"`
	Height    float64 `json:"height"`
	Label     string  `json:"label,omitempty"`

	Cells []RenderCell `json:"cells"`

	Slurs        []RenderArc `json:"slurs,omitempty"`
	BeatLoops    []RenderArc `json:"beat_loops,omitempty"`
	OrnamentArcs []RenderArc `json:"ornament_arcs,omitempty"`
}

// RenderArc is a pre-positioned arc descriptor. ID is stable across renders
// for the same logical arc and is the reconciliation key.
type RenderArc struct {
	ID     string  `json:"id"`
	StartX float64 `json:"start_x"`
	StartY float64 `json:"start_y"`
	EndX   float64 `json:"end_x"`
	EndY   float64 `json:"end_y"`
	CP1X   float64 `json:"cp1_x"`
	CP1Y   float64 `json:"cp1_y"`
	CP2X   float64 `json:"cp2_x"`
	CP2Y   float64 `json:"cp2_y"`
	Color  string  `json:"color"`
	// Direction is "up" or "down"; empty means the category default
	// (slurs and ornament arcs up, beat loops down).
	Direction string `json:"direction,omitempty"`
}

// HasControlPoints reports whether the engine supplied control points. An
// all-zero quad means "derive them"; a real arc cannot have both control
// points at the origin.
func (a RenderArc) HasControlPoints() bool {
	return a.CP1X != 0 || a.CP1Y != 0 || a.CP2X != 0 || a.CP2Y != 0
}

// RenderCell is one positioned glyph cell of the text grid. The overlay only
// reads cells through the legacy span-derivation path; the preview renderer
// draws them.
type RenderCell struct {
	Char    string   `json:"char"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	W       float64  `json:"w"`
	H       float64  `json:"h"`
	Classes []string `json:"classes,omitempty"`
}
