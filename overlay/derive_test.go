package overlay

import (
	"testing"

	"github.com/ByLCY/ligature/dom"
	"github.com/ByLCY/ligature/geometry"
)

// buildCellLine assembles a rendered line whose content child holds fixed
// width cells; roles maps cell position to a slur role class.
func buildCellLine(top, gutter, cellWidth float64, n int, roles map[int]string) *dom.Element {
	line := dom.NewElement("div")
	line.SetAttribute("class", "notation-line")
	line.Layout = dom.Box{Top: top, Height: 40}
	content := dom.NewElement("span")
	content.SetAttribute("class", "line-content")
	content.Layout = dom.Box{Top: top, Left: gutter}
	line.AppendChild(content)

	for i := 0; i < n; i++ {
		cell := dom.NewElement("span")
		cls := "notation-cell"
		if role, ok := roles[i]; ok {
			cls += " " + role
		}
		cell.SetAttribute("class", cls)
		cell.Layout = dom.Box{
			Top:    top + 12,
			Left:   gutter + float64(i)*cellWidth,
			Width:  cellWidth,
			Height: 24,
		}
		content.AppendChild(cell)
	}
	return line
}

func TestDeriveSlursFromCellRoles(t *testing.T) {
	// Cells 1..3 form a slur: slur-first, slur-middle, slur-last.
	line := buildCellLine(0, 30, 12, 5, map[int]string{
		1: classSlurFirst,
		2: classSlurMiddle,
		3: classSlurLast,
	})

	arcs := DeriveSlurs(line, 0, 0, "line-content", "#000")
	if len(arcs) != 1 {
		t.Fatalf("expected 1 derived slur, got %d", len(arcs))
	}
	a := arcs[0]
	if a.ID != "line0-slur0" {
		t.Fatalf("unexpected id %q", a.ID)
	}
	// Cell 1 center is at 12*1+6=18 line-local; cell 3 center at 42. The
	// extension offset pushes both outward by 4.
	if a.StartX != 14 || a.EndX != 46 {
		t.Fatalf("endpoints = (%g, %g), want (14, 46)", a.StartX, a.EndX)
	}
	if a.StartY != 12 || a.EndY != 12 {
		t.Fatalf("derived y = (%g, %g), want cell top 12", a.StartY, a.EndY)
	}
	if a.Direction != "up" {
		t.Fatalf("derived slur direction = %q", a.Direction)
	}
	if !a.HasControlPoints() {
		t.Fatal("derived descriptor must carry computed control points")
	}

	// Control points must match the geometry engine for the same endpoints.
	want := geometry.ComputeArc(14, 12, 46, 12, geometry.Up)
	if a.CP1X != want.CP1.X || a.CP1Y != want.CP1.Y || a.CP2X != want.CP2.X || a.CP2Y != want.CP2.Y {
		t.Fatal("derived control points disagree with ComputeArc")
	}
}

func TestDeriveSlursMultipleSpans(t *testing.T) {
	line := buildCellLine(0, 0, 10, 8, map[int]string{
		0: classSlurFirst,
		2: classSlurLast,
		4: classSlurFirst,
		6: classSlurLast,
	})
	arcs := DeriveSlurs(line, 3, 0, "line-content", "#000")
	if len(arcs) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(arcs))
	}
	if arcs[0].ID != "line3-slur0" || arcs[1].ID != "line3-slur1" {
		t.Fatalf("ids not deterministic: %q, %q", arcs[0].ID, arcs[1].ID)
	}
}

func TestDeriveSlursIgnoresDanglingRoles(t *testing.T) {
	// slur-last with no open slur-first, then an unterminated slur-first.
	line := buildCellLine(0, 0, 10, 6, map[int]string{
		1: classSlurLast,
		4: classSlurFirst,
	})
	if arcs := DeriveSlurs(line, 0, 0, "line-content", "#000"); len(arcs) != 0 {
		t.Fatalf("dangling roles must derive nothing, got %d arcs", len(arcs))
	}
}

func TestDeriveSlursNilAndMissingContent(t *testing.T) {
	if DeriveSlurs(nil, 0, 0, "line-content", "#000") != nil {
		t.Fatal("nil line element must derive nothing")
	}
	bare := dom.NewElement("div")
	if DeriveSlurs(bare, 0, 0, "line-content", "#000") != nil {
		t.Fatal("missing content child must derive nothing")
	}
}
