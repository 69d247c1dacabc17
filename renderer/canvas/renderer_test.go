package canvasrenderer

import (
	"bytes"
	"testing"

	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/renderer"
	"github.com/ByLCY/ligature/theme"
)

func sampleScene() *renderer.Scene {
	return &renderer.Scene{
		Display: &displaylist.DisplayList{
			Header: &displaylist.DocumentHeader{Title: "Raga Demo", Composer: "trad."},
			Lines: []displaylist.RenderLine{
				{
					LineIndex: 0,
					Y:         0,
					Height:    48,
					Label:     "P1",
					Cells: []displaylist.RenderCell{
						{Char: "S", X: 0, Y: 12, W: 12, H: 24},
						{Char: "r", X: 12, Y: 12, W: 12, H: 24},
					},
					Slurs: []displaylist.RenderArc{
						{ID: "s1", StartX: 10, StartY: 20, EndX: 90, EndY: 20, Color: "#112233"},
					},
					BeatLoops: []displaylist.RenderArc{
						{ID: "b1", StartX: 12, StartY: 34, EndX: 44, EndY: 34},
					},
					OrnamentArcs: []displaylist.RenderArc{
						{ID: "o1", StartX: 20, StartY: 8, EndX: 34, EndY: 8},
					},
				},
			},
		},
		Theme:  theme.Default(),
		Gutter: 30,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer("")
	out, err := r.Render(sampleScene())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
}

func TestRenderBakedGlyphsKeepsOrnaments(t *testing.T) {
	scene := sampleScene()
	scene.CurveGlyphsBaked = true
	out, err := NewRenderer("").Render(scene)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}

func TestRenderNilScene(t *testing.T) {
	if _, err := NewRenderer("").Render(nil); err == nil {
		t.Fatal("nil scene must error")
	}
	if _, err := NewRenderer("").Render(&renderer.Scene{}); err == nil {
		t.Fatal("scene without display list must error")
	}
}

func TestRenderMissingFontFails(t *testing.T) {
	r := NewRenderer("testdata/does-not-exist.ttf")
	if _, err := r.Render(sampleScene()); err == nil {
		t.Fatal("unreadable font must surface an error")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want [4]uint8
	}{
		{"#000000", [4]uint8{0, 0, 0, 255}},
		{"#112233", [4]uint8{0x11, 0x22, 0x33, 255}},
		{"#abc", [4]uint8{0xaa, 0xbb, 0xcc, 255}},
		{"#11223344", [4]uint8{0x11, 0x22, 0x33, 0x44}},
		{"red", [4]uint8{0, 0, 0, 255}},
		{"", [4]uint8{0, 0, 0, 255}},
		{"#zzzzzz", [4]uint8{0, 0, 0, 255}},
	}
	for _, tc := range cases {
		r, g, b, a := parseHexColor(tc.in).RGBA()
		got := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		if got != tc.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSceneSizeCoversArcExtents(t *testing.T) {
	scene := sampleScene()
	w, h := sceneSize(scene)
	// Widest feature is the slur end at x=90, shifted by the gutter, the
	// label column and both margins.
	wantW := 90 + scene.Gutter + labelWidth + 2*pageMargin
	if w != wantW {
		t.Fatalf("width = %g, want %g", w, wantW)
	}
	wantH := 48 + 2*pageMargin
	if h != wantH {
		t.Fatalf("height = %g, want %g", h, wantH)
	}
}
