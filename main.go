package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/dsl"
	"github.com/ByLCY/ligature/grid"
	"github.com/ByLCY/ligature/overlay"
	"github.com/ByLCY/ligature/renderer"
	canvasrenderer "github.com/ByLCY/ligature/renderer/canvas"
	"github.com/ByLCY/ligature/theme"
)

type options struct {
	input       string
	svgOut      string
	pdfOut      string
	themePath   string
	fontPath    string
	debugPath   string
	bakedGlyphs bool
	data        any
}

func main() {
	input := flag.String("in", "examples/demo.ligature", "score DSL path")
	svgOut := flag.String("out", "output/overlay.svg", "overlay SVG output path")
	pdfOut := flag.String("pdf", "", "optional static PDF output path")
	themePath := flag.String("theme", "", "optional theme YAML path")
	fontPath := flag.String("font", "", "optional TTF font for the PDF export")
	debugPath := flag.String("debug", "", "display list debug JSON output path")
	bakedGlyphs := flag.Bool("baked-glyphs", false, "treat curve glyphs as baked into the grid font")
	dataJSON := flag.String("data", "", "JSON data bound into the DSL")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
	}

	opts := options{
		input:       *input,
		svgOut:      *svgOut,
		pdfOut:      *pdfOut,
		themePath:   *themePath,
		fontPath:    *fontPath,
		debugPath:   *debugPath,
		bakedGlyphs: *bakedGlyphs,
		data:        inputData,
	}
	if err := run(opts); err != nil {
		log.Fatalf("render score: %v", err)
	}
	fmt.Printf("wrote overlay SVG: %s\n", *svgOut)
}

// run chains parsing, layout, overlay reconciliation and export.
func run(opts options) error {
	file, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open score %s: %w", opts.input, err)
	}
	defer file.Close()

	score, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("parse score: %w", err)
	}

	page, err := grid.Build(score, opts.data)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	th := theme.Default()
	if opts.themePath != "" {
		th, err = theme.Load(opts.themePath)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
	}

	if opts.debugPath != "" {
		if err := writeDebug(page.Display, opts.debugPath); err != nil {
			return err
		}
	}

	// Either the flag or the theme can declare baked curve glyphs.
	baked := opts.bakedGlyphs || th.BakedCurveGlyphs
	ov := overlay.New(page.Root, page, overlay.Options{
		Theme:            th,
		CurveGlyphsBaked: func() bool { return baked },
	})
	ov.Render(page.Display)

	if err := os.MkdirAll(filepath.Dir(opts.svgOut), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(opts.svgOut, []byte(ov.Root().String()), 0o644); err != nil {
		return fmt.Errorf("write overlay SVG: %w", err)
	}

	if opts.pdfOut != "" {
		if err := writePDF(page.Display, th, baked, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeDebug(dl *displaylist.DisplayList, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug directory: %w", err)
	}
	if err := displaylist.WriteDebugJSON(dl, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}

func writePDF(dl *displaylist.DisplayList, th theme.Theme, baked bool, opts options) error {
	scene := &renderer.Scene{
		Display:          dl,
		Theme:            th,
		Gutter:           grid.DefaultGutter,
		CurveGlyphsBaked: baked,
	}
	pdfBytes, err := canvasrenderer.NewRenderer(opts.fontPath).Render(scene)
	if err != nil {
		return fmt.Errorf("render PDF: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(opts.pdfOut), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(opts.pdfOut, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}
	return nil
}
