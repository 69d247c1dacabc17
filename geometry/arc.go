// Package geometry computes the cubic Bézier curves used for slur, beat-loop
// and ornament overlays. All functions are pure; coordinates are in overlay
// pixels with the origin at the top-left and y growing downward.
package geometry

import (
	"math"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// Direction says which way an arc bows relative to its baseline.
type Direction int

const (
	// Up bows away from the baseline (slurs, ornament arcs).
	Up Direction = iota
	// Down bows toward the baseline (beat loops).
	Down
)

// ExtensionOffset is the horizontal clearance, in pixels, applied outward at
// both endpoints when an arc is derived from rendered cell spans. Callers
// apply it before ComputeArc; ComputeArc itself never does.
const ExtensionOffset = 4

// Arc is the result of ComputeArc: two control points plus the assembled
// SVG path command.
type Arc struct {
	CP1 curve.Point
	CP2 curve.Point
	D   string
}

// ComputeArc derives control points and a path command for an arc between
// (x0,y0) and (x1,y1). The arch height depends on the horizontal span and the
// direction: beat loops stay shallow (3px, growing to at most 8px), slurs
// scale with the span between 6px and 28px and are damped by 0.7 past 300px
// so long phrases do not balloon. The 0.55/0.60 control-point split is
// intentionally asymmetric; a symmetric split reads as mechanical.
func ComputeArc(x0, y0, x1, y1 float64, dir Direction) Arc {
	span := math.Abs(x1 - x0)

	var arch float64
	if dir == Down {
		if span <= 8 {
			arch = 3
		} else {
			arch = math.Min(3+(span-8)*0.05, 8)
		}
	} else {
		arch = clamp(span*0.25, 6, 28)
		if span > 300 {
			arch *= 0.7
		}
	}

	mult := 1.0
	if dir == Up {
		mult = -1.0
	}

	start := curve.Pt(x0, y0)
	end := curve.Pt(x1, y1)
	cp1 := curve.Pt(x0+0.55*span, y0+arch*mult)
	cp2 := curve.Pt(x0+0.60*span, y1+arch*mult)

	return Arc{
		CP1: cp1,
		CP2: cp2,
		D:   PathData(start, cp1, cp2, end),
	}
}

// PathData assembles the "M … C …" command for a cubic segment. This is the
// only geometry step that runs for descriptors whose control points were
// precomputed upstream.
func PathData(start, cp1, cp2, end curve.Point) string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(fmtCoord(start.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(start.Y))
	b.WriteString(" C ")
	b.WriteString(fmtCoord(cp1.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(cp1.Y))
	b.WriteString(", ")
	b.WriteString(fmtCoord(cp2.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(cp2.Y))
	b.WriteString(", ")
	b.WriteString(fmtCoord(end.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(end.Y))
	return b.String()
}

// Cubic returns the full segment as a curve.CubicBez, handy for bounds or
// arclength queries on the renderer side.
func Cubic(start, cp1, cp2, end curve.Point) curve.CubicBez {
	return curve.CubicBez{P0: start, P1: cp1, P2: cp2, P3: end}
}

// fmtCoord renders a coordinate with at most three decimals, trailing zeros
// trimmed, so path data stays compact and stable across runs.
func fmtCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
