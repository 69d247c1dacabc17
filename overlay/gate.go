package overlay

// shouldRenderCurvesAsSVG decides, per category and per render call, whether
// SVG drawing is needed at all. When the grid bakes curve glyphs into its own
// font output, slurs and beat loops would be double-drawn; ornament arcs have
// no glyph form and always go through SVG.
func shouldRenderCurvesAsSVG(cat Category, curveGlyphsBaked bool) bool {
	if cat == CategoryOrnament {
		return true
	}
	return !curveGlyphsBaked
}
