// Package dsl parses the score description language used by the CLI and test
// fixtures: a compact way to describe notation lines, their cells and the
// arcs annotating them. The document engine proper speaks JSON display
// lists; this DSL exists so scenes can be written and read by hand.
package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/uuid"
)

var (
	scoreLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		// Longest alternative first: regexp alternation is leftmost-first, so
		// 3-digit-first would split #112233 into a color and a stray number.
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[(),.:>\-]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	scoreParser = participle.MustBuild[Score](
		participle.Lexer(scoreLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Score is the root AST node for a score file.
type Score struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'score' @Ident"`
	Version  string         `parser:"@Ident"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is either a header block or a line block.
type Section struct {
	Header *HeaderSection `parser:"  @@"`
	Line   *LineSection   `parser:"| @@"`
}

// HeaderSection carries document metadata (title, composer).
type HeaderSection struct {
	Entries []*HeaderEntry `parser:"'header' '{' Newline* ( @@ Newline* )* '}'"`
}

// HeaderEntry is one key: "value" pair.
type HeaderEntry struct {
	Key   string        `parser:"@Ident ':'"`
	Value StringLiteral `parser:"@String"`
}

// LineSection describes one notation line. Y defaults to the running sum of
// preceding heights, Gutter to the grid default.
type LineSection struct {
	Index  int      `parser:"'line' @Number"`
	Y      *float64 `parser:"( 'y' @Number )?"`
	Height float64  `parser:"'height' @Number"`
	Gutter *float64 `parser:"( 'gutter' @Number )?"`
	Label  *StringLiteral `parser:"( 'label' @String )?"`

	Items []*LineItem `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// LineItem is one declaration inside a line block.
type LineItem struct {
	Cells *CellsDecl `parser:"  @@"`
	Span  *SlurSpan  `parser:"| @@"`
	Arc   *ArcDecl   `parser:"| @@"`
}

// CellsDecl lists the line's glyphs, space separated.
type CellsDecl struct {
	Text StringLiteral `parser:"'cells' @String"`
}

// SlurSpan marks a cell range with the slur role classes so the scene
// exercises DOM-derived slurs instead of explicit descriptors.
type SlurSpan struct {
	First int `parser:"'slur-span' @Number"`
	Last  int `parser:"'-' '>' @Number"`
}

// ArcDecl is an explicit arc descriptor. Id, control points, color and
// direction are optional; a missing id gets a generated one at parse time.
type ArcDecl struct {
	Kind  string         `parser:"@( 'slur' | 'beat-loop' | 'ornament' )"`
	ID    string         `parser:"( @Ident )?"`
	Start Point          `parser:"@@"`
	End   Point          `parser:"'-' '>' @@"`
	CP    *ControlPoints `parser:"( @@ )?"`
	Color string         `parser:"( 'color' @( Color | String ) )?"`
	Dir   string         `parser:"( 'direction' @Ident )?"`
}

// Point is an (x,y) coordinate pair in line-local pixels.
type Point struct {
	X float64 `parser:"'(' @Number ','"`
	Y float64 `parser:"@Number ')'"`
}

// ControlPoints carries the two cubic control points.
type ControlPoints struct {
	CP1 Point `parser:"'cp' @@"`
	CP2 Point `parser:"@@"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Glyphs splits the cells declaration into individual glyph strings.
func (c *CellsDecl) Glyphs() []string {
	return strings.Fields(string(c.Text))
}

// ColorValue strips quotes from string-form colors ("${theme.slur}" style
// bindings come through as strings, literal colors as Color tokens).
func (a *ArcDecl) ColorValue() string {
	if strings.HasPrefix(a.Color, `"`) {
		if unquoted, err := strconv.Unquote(a.Color); err == nil {
			return unquoted
		}
	}
	return a.Color
}

// Parse reads and parses a score, assigning generated ids to arcs that omit
// one. Generated ids are fresh per parse; scenes that rely on stable
// reconciliation keys across renders should write ids explicitly.
func Parse(r io.Reader) (*Score, error) {
	score, err := scoreParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse score: %w", err)
	}
	fillArcIDs(score)
	return score, nil
}

// ParseString parses a score from a string.
func ParseString(input string) (*Score, error) {
	return Parse(strings.NewReader(input))
}

func fillArcIDs(score *Score) {
	for _, sec := range score.Sections {
		if sec.Line == nil {
			continue
		}
		for _, item := range sec.Line.Items {
			if item.Arc != nil && item.Arc.ID == "" {
				item.Arc.ID = uuid.NewString()
			}
		}
	}
}
