// Package grid is a fixture stand-in for the text-grid glyph renderer the
// overlay draws over. From a parsed score it produces both the display list
// an external document engine would emit and a host element tree obeying the
// overlay's measurement contract (notation-line elements with a line-content
// child at the gutter). It implements just enough layout for demos and tests;
// it is not the real glyph renderer.
package grid

import (
	"fmt"
	"strings"

	"github.com/ByLCY/ligature/binding"
	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/dom"
	"github.com/ByLCY/ligature/dsl"
)

// Fixed monospace metrics, in pixels.
const (
	CharWidth     = 12
	CellHeight    = 24
	DefaultGutter = 30
)

// Page is a laid-out score: the host tree plus the display list describing
// it. It implements overlay.Host.
type Page struct {
	Root    *dom.Element
	Display *displaylist.DisplayList

	lines map[int]*dom.Element
}

// LineElement returns the rendered element for a line index, nil when the
// line does not exist.
func (p *Page) LineElement(index int) *dom.Element {
	if p == nil {
		return nil
	}
	return p.lines[index]
}

// Build lays out a parsed score. data feeds ${path} bindings in header text,
// labels and arc colors.
func Build(score *dsl.Score, data any) (*Page, error) {
	if score == nil {
		return nil, fmt.Errorf("score is nil")
	}

	page := &Page{
		Root:    dom.NewElement("div"),
		Display: &displaylist.DisplayList{Lines: []displaylist.RenderLine{}},
		lines:   map[int]*dom.Element{},
	}
	page.Root.SetAttribute("class", "notation-grid")

	nextY := 0.0
	for _, sec := range score.Sections {
		switch {
		case sec.Header != nil:
			page.Display.Header = buildHeader(sec.Header, data)
		case sec.Line != nil:
			line, err := buildLine(page, sec.Line, nextY, data)
			if err != nil {
				return nil, err
			}
			nextY = line.Y + line.Height
		}
	}
	return page, nil
}

func buildHeader(h *dsl.HeaderSection, data any) *displaylist.DocumentHeader {
	header := &displaylist.DocumentHeader{}
	for _, e := range h.Entries {
		val := binding.Interpolate(string(e.Value), data)
		switch e.Key {
		case "title":
			header.Title = val
		case "composer":
			header.Composer = val
		}
	}
	return header
}

func buildLine(page *Page, ls *dsl.LineSection, defaultY float64, data any) (*displaylist.RenderLine, error) {
	if _, exists := page.lines[ls.Index]; exists {
		return nil, fmt.Errorf("duplicate line index %d", ls.Index)
	}

	y := defaultY
	if ls.Y != nil {
		y = *ls.Y
	}
	gutter := float64(DefaultGutter)
	if ls.Gutter != nil {
		gutter = *ls.Gutter
	}

	line := displaylist.RenderLine{
		LineIndex: ls.Index,
		Y:         y,
		Height:    ls.Height,
	}
	if ls.Label != nil {
		line.Label = binding.Interpolate(string(*ls.Label), data)
	}

	// Host element: the overlay measures Top from the line and Left from the
	// content child. The fixture keeps element tops equal to engine y.
	el := dom.NewElement("div")
	el.SetAttribute("class", "notation-line")
	el.Layout = dom.Box{Top: y, Left: 0, Height: ls.Height}
	content := dom.NewElement("span")
	content.SetAttribute("class", "line-content")
	content.Layout = dom.Box{Top: y, Left: gutter}
	el.AppendChild(content)

	roles := slurRoles(ls)
	cellTop := y + (ls.Height-CellHeight)/2

	for _, item := range ls.Items {
		switch {
		case item.Cells != nil:
			for i, glyph := range item.Cells.Glyphs() {
				x := float64(i) * CharWidth
				line.Cells = append(line.Cells, displaylist.RenderCell{
					Char:    glyph,
					X:       x,
					Y:       cellTop - y,
					W:       CharWidth,
					H:       CellHeight,
					Classes: cellClasses(roles, i),
				})

				cell := dom.NewElement("span")
				cell.SetAttribute("class", classAttr(cellClasses(roles, i)))
				cell.SetText(glyph)
				cell.Layout = dom.Box{
					Top:    cellTop,
					Left:   gutter + x,
					Width:  CharWidth,
					Height: CellHeight,
				}
				content.AppendChild(cell)
			}
		case item.Arc != nil:
			arc := buildArc(item.Arc, data)
			switch item.Arc.Kind {
			case "beat-loop":
				line.BeatLoops = append(line.BeatLoops, arc)
			case "ornament":
				line.OrnamentArcs = append(line.OrnamentArcs, arc)
			default:
				line.Slurs = append(line.Slurs, arc)
			}
		}
	}

	page.Root.AppendChild(el)
	page.lines[ls.Index] = el
	page.Display.Lines = append(page.Display.Lines, line)
	return &page.Display.Lines[len(page.Display.Lines)-1], nil
}

func buildArc(a *dsl.ArcDecl, data any) displaylist.RenderArc {
	arc := displaylist.RenderArc{
		ID:        a.ID,
		StartX:    a.Start.X,
		StartY:    a.Start.Y,
		EndX:      a.End.X,
		EndY:      a.End.Y,
		Color:     binding.Interpolate(a.ColorValue(), data),
		Direction: a.Dir,
	}
	if a.CP != nil {
		arc.CP1X = a.CP.CP1.X
		arc.CP1Y = a.CP.CP1.Y
		arc.CP2X = a.CP.CP2.X
		arc.CP2Y = a.CP.CP2.Y
	}
	return arc
}

// slurRoles maps cell positions to their slur role class for every
// slur-span declared on the line.
func slurRoles(ls *dsl.LineSection) map[int]string {
	roles := map[int]string{}
	for _, item := range ls.Items {
		span := item.Span
		if span == nil || span.Last < span.First {
			continue
		}
		for i := span.First; i <= span.Last; i++ {
			switch i {
			case span.First:
				roles[i] = "slur-first"
			case span.Last:
				roles[i] = "slur-last"
			default:
				roles[i] = "slur-middle"
			}
		}
	}
	return roles
}

func cellClasses(roles map[int]string, i int) []string {
	classes := []string{"notation-cell"}
	if role, ok := roles[i]; ok {
		classes = append(classes, role)
	}
	return classes
}

func classAttr(classes []string) string {
	return strings.Join(classes, " ")
}
