// Package canvasrenderer renders scenes to PDF via github.com/tdewolff/canvas.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/geometry"
	"github.com/ByLCY/ligature/renderer"
	"github.com/ByLCY/ligature/theme"
	"honnef.co/go/curve"
)

const (
	pageMargin   = 20.0
	labelWidth   = 4.0
	cellBoxWidth = 0.4
)

// Renderer draws scenes via github.com/tdewolff/canvas. When a font path is
// configured, cell glyphs and labels are drawn as text; otherwise cells are
// outlined as boxes so arc placement can still be inspected.
type Renderer struct {
	fontPath string

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer; fontPath may be empty.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// Render renders the scene into a PDF byte slice.
func (r *Renderer) Render(scene *renderer.Scene) ([]byte, error) {
	if scene == nil || scene.Display == nil {
		return nil, fmt.Errorf("scene has no display list")
	}
	th := scene.Theme.Normalize()
	width, height := sceneSize(scene)

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	applyMeta(writer, scene.Display.Header)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	// Match the overlay's coordinate space: origin top-left, y downward.
	ctx.SetCoordSystem(canvas.CartesianIV)

	for i := range scene.Display.Lines {
		if err := r.drawLine(ctx, &scene.Display.Lines[i], scene, th); err != nil {
			return nil, err
		}
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, header *displaylist.DocumentHeader) {
	if writer == nil || header == nil {
		return
	}
	writer.SetInfo(header.Title, "", "", header.Composer, "ligature")
}

func (r *Renderer) drawLine(ctx *canvas.Context, line *displaylist.RenderLine, scene *renderer.Scene, th theme.Theme) error {
	top := pageMargin + line.Y
	gutter := pageMargin + scene.Gutter

	if line.Label != "" {
		if err := r.drawText(ctx, pageMargin, top+line.Height/2, line.Label); err != nil {
			return err
		}
	}

	for _, cell := range line.Cells {
		x := gutter + cell.X
		y := top + cell.Y
		if r.fontPath == "" {
			ctx.SetFillColor(canvas.Transparent)
			ctx.SetStrokeColor(color.RGBA{0xcc, 0xcc, 0xcc, 0xff})
			ctx.SetStrokeWidth(cellBoxWidth)
			ctx.DrawPath(x, y, canvas.Rectangle(cell.W, cell.H))
			continue
		}
		if err := r.drawText(ctx, x, y+cell.H, cell.Char); err != nil {
			return err
		}
	}

	if !scene.CurveGlyphsBaked {
		r.drawArcs(ctx, line.Slurs, geometry.Up, th.SlurColor, th.SlurWidth, gutter, line.Y, top)
		r.drawArcs(ctx, line.BeatLoops, geometry.Down, th.BeatLoopColor, th.BeatLoopWidth, gutter, line.Y, top)
	}
	r.drawArcs(ctx, line.OrnamentArcs, geometry.Up, th.OrnamentColor, th.OrnamentWidth, gutter, line.Y, top)
	return nil
}

// drawArcs strokes one category. Arc coordinates carry the engine's
// cumulative line offset; the static page places line tops at the same
// offsets, so only the page margin and gutter shift them.
func (r *Renderer) drawArcs(ctx *canvas.Context, arcs []displaylist.RenderArc, defaultDir geometry.Direction, defaultColor string, strokeWidth, gutter, lineY, top float64) {
	for _, a := range arcs {
		start := curve.Pt(gutter+a.StartX, top+(a.StartY-lineY))
		end := curve.Pt(gutter+a.EndX, top+(a.EndY-lineY))

		var cp1, cp2 curve.Point
		if a.HasControlPoints() {
			cp1 = curve.Pt(gutter+a.CP1X, top+(a.CP1Y-lineY))
			cp2 = curve.Pt(gutter+a.CP2X, top+(a.CP2Y-lineY))
		} else {
			dir := defaultDir
			switch a.Direction {
			case "up":
				dir = geometry.Up
			case "down":
				dir = geometry.Down
			}
			computed := geometry.ComputeArc(start.X, start.Y, end.X, end.Y, dir)
			cp1, cp2 = computed.CP1, computed.CP2
		}

		col := defaultColor
		if a.Color != "" {
			col = a.Color
		}
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(parseHexColor(col))
		ctx.SetStrokeWidth(strokeWidth)

		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.CubeTo(cp1.X-start.X, cp1.Y-start.Y, cp2.X-start.X, cp2.Y-start.Y, end.X-start.X, end.Y-start.Y)
		ctx.DrawPath(start.X, start.Y, p)
	}
}

func (r *Renderer) drawText(ctx *canvas.Context, x, baseline float64, text string) error {
	if r.fontPath == "" || text == "" {
		return nil
	}
	family, err := r.ensureFamily()
	if err != nil {
		return err
	}
	face := family.Face(14, color.Black, canvas.FontRegular, canvas.FontNormal)
	ctx.DrawText(x, baseline, canvas.NewTextLine(face, text, canvas.Left))
	return nil
}

func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil {
		return r.family, nil
	}
	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", r.fontPath, err)
	}
	family := canvas.NewFontFamily("ligature")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font %s: %w", r.fontPath, err)
	}
	r.family = family
	return family, nil
}

// sceneSize derives the page size from the display list extents.
func sceneSize(scene *renderer.Scene) (float64, float64) {
	width, height := 0.0, 0.0
	for _, line := range scene.Display.Lines {
		if bottom := line.Y + line.Height; bottom > height {
			height = bottom
		}
		for _, cell := range line.Cells {
			if right := cell.X + cell.W; right > width {
				width = right
			}
		}
		for _, arcs := range [][]displaylist.RenderArc{line.Slurs, line.BeatLoops, line.OrnamentArcs} {
			for _, a := range arcs {
				if a.EndX > width {
					width = a.EndX
				}
				if a.StartX > width {
					width = a.StartX
				}
			}
		}
	}
	width += scene.Gutter + labelWidth + 2*pageMargin
	height += 2 * pageMargin
	if width < 3*pageMargin {
		width = 3 * pageMargin
	}
	if height < 3*pageMargin {
		height = 3 * pageMargin
	}
	return width, height
}

// parseHexColor reads #rgb, #rrggbb and #rrggbbaa; anything else is black.
func parseHexColor(s string) color.Color {
	if len(s) == 0 || s[0] != '#' {
		return color.Black
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.Black
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.Black
	}
	c := color.RGBA{A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c
}
