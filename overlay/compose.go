package overlay

import (
	"honnef.co/go/curve"

	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/geometry"
	"github.com/ByLCY/ligature/theme"
)

// lineFrame is the per-line measurement snapshot taken fresh on every render:
// the engine's cumulative line offset plus the live element top and gutter.
// Nothing here may be cached across renders — font size changes, gutter
// collapse and scrolling all move these between calls.
type lineFrame struct {
	y      float64 // cumulative vertical offset in the engine's own space
	top    float64 // measured element top, overlay-absolute
	gutter float64 // measured content start, overlay-absolute
}

// mapPoint translates a line-local point into overlay-absolute space.
func (f lineFrame) mapPoint(x, y float64) curve.Point {
	return curve.Pt(x+f.gutter, (y-f.y)+f.top)
}

// resolvedArc is an arc ready for reconciliation: overlay-absolute geometry,
// final color, assembled path data.
type resolvedArc struct {
	id    string
	start curve.Point
	cp1   curve.Point
	cp2   curve.Point
	end   curve.Point
	color string
	dir   geometry.Direction
	d     string
}

// composeArc remaps a descriptor through the line frame and fills in
// whatever the engine left out: control points (via geometry.ComputeArc when
// none were supplied), direction and color defaults.
func composeArc(a displaylist.RenderArc, cat Category, frame lineFrame, th theme.Theme) resolvedArc {
	r := resolvedArc{
		id:    a.ID,
		start: frame.mapPoint(a.StartX, a.StartY),
		end:   frame.mapPoint(a.EndX, a.EndY),
		color: a.Color,
		dir:   arcDirection(a, cat),
	}
	if r.color == "" {
		r.color = defaultColor(cat, th)
	}

	if a.HasControlPoints() {
		r.cp1 = frame.mapPoint(a.CP1X, a.CP1Y)
		r.cp2 = frame.mapPoint(a.CP2X, a.CP2Y)
		r.d = geometry.PathData(r.start, r.cp1, r.cp2, r.end)
		return r
	}

	arc := geometry.ComputeArc(r.start.X, r.start.Y, r.end.X, r.end.Y, r.dir)
	r.cp1 = arc.CP1
	r.cp2 = arc.CP2
	r.d = arc.D
	return r
}

// arcDirection honors an explicit direction and otherwise falls back to the
// category convention: slurs and ornament arcs bow up, beat loops down.
func arcDirection(a displaylist.RenderArc, cat Category) geometry.Direction {
	switch a.Direction {
	case "down":
		return geometry.Down
	case "up":
		return geometry.Up
	}
	if cat == CategoryBeatLoop {
		return geometry.Down
	}
	return geometry.Up
}

func defaultColor(cat Category, th theme.Theme) string {
	switch cat {
	case CategoryBeatLoop:
		return th.BeatLoopColor
	case CategoryOrnament:
		return th.OrnamentColor
	default:
		return th.SlurColor
	}
}

func directionClass(dir geometry.Direction) string {
	if dir == geometry.Down {
		return "arc-down"
	}
	return "arc-up"
}
