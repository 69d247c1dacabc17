package overlay

import (
	"fmt"

	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/dom"
	"github.com/ByLCY/ligature/geometry"
)

// Cell role classes written by the grid renderer for cells inside a slur
// span. A span runs from a slur-first cell to the next slur-last cell.
const (
	classSlurFirst  = "slur-first"
	classSlurMiddle = "slur-middle"
	classSlurLast   = "slur-last"
)

// DeriveSlurs is the legacy geometry source: instead of descriptors from the
// document engine, it reconstructs slur spans by scanning the rendered line's
// cell role classes. The result uses the standard descriptor shape — line
// local coordinates, control points from geometry.ComputeArc — so downstream
// code never sees where an arc came from. Ids are deterministic per line and
// ordinal, keeping reconciliation stable across renders.
//
// contentClass names the line's content child (the gutter reference); lineY
// is the engine's cumulative offset for the line, matching what its
// descriptors would carry.
func DeriveSlurs(lineEl *dom.Element, lineIndex int, lineY float64, contentClass, color string) []displaylist.RenderArc {
	if lineEl == nil {
		return nil
	}
	content := lineEl.FindClass(contentClass)
	if content == nil {
		return nil
	}
	gutter := content.Layout.Left

	var arcs []displaylist.RenderArc
	var first *dom.Element
	ordinal := 0

	for _, cell := range content.Children() {
		switch {
		case cell.HasClass(classSlurFirst):
			first = cell
		case cell.HasClass(classSlurLast):
			if first == nil {
				continue
			}
			arcs = append(arcs, deriveSpan(first, cell, lineEl, lineIndex, lineY, gutter, color, ordinal))
			first = nil
			ordinal++
		}
	}
	return arcs
}

// deriveSpan builds one descriptor from the first and last cells of a span.
// Endpoints sit at the cells' horizontal centers, pushed outward by the
// extension offset for visual clearance past the cell boundary.
func deriveSpan(first, last, lineEl *dom.Element, lineIndex int, lineY, gutter float64, color string, ordinal int) displaylist.RenderArc {
	x0 := first.Layout.Left + first.Layout.Width/2 - gutter - geometry.ExtensionOffset
	x1 := last.Layout.Left + last.Layout.Width/2 - gutter + geometry.ExtensionOffset
	y := first.Layout.Top - lineEl.Layout.Top + lineY

	arc := geometry.ComputeArc(x0, y, x1, y, geometry.Up)
	return displaylist.RenderArc{
		ID:        fmt.Sprintf("line%d-slur%d", lineIndex, ordinal),
		StartX:    x0,
		StartY:    y,
		EndX:      x1,
		EndY:      y,
		CP1X:      arc.CP1.X,
		CP1Y:      arc.CP1.Y,
		CP2X:      arc.CP2.X,
		CP2Y:      arc.CP2.Y,
		Color:     color,
		Direction: "up",
	}
}
