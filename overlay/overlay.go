// Package overlay renders slur, beat-loop and ornament arcs as a transparent
// SVG layer above a character-grid notation display. The overlay owns one
// retained <svg> element with three fixed groups; per render it reconciles
// each group's children against the incoming display list, keyed by arc id,
// so a continuing arc keeps its element across renders.
//
// The overlay is single-threaded by design: Render is a complete synchronous
// recomputation and is not safe for concurrent or re-entrant use. Callers
// serialize render invocations.
package overlay

import (
	"io"

	"github.com/ByLCY/ligature/displaylist"
	"github.com/ByLCY/ligature/dom"
	"github.com/ByLCY/ligature/theme"
)

// Category identifies the three arc kinds, each with its own group and pool.
type Category int

const (
	CategorySlur Category = iota
	CategoryBeatLoop
	CategoryOrnament
)

// pathClass is the CSS class applied to every path of the category.
func (c Category) pathClass() string {
	switch c {
	case CategoryBeatLoop:
		return "beat-loop-path"
	case CategoryOrnament:
		return "superscript-arc-path"
	default:
		return "slur-path"
	}
}

// Host is the overlay's view of the text-grid renderer it draws over. The
// overlay reads the host tree for measurement only and never mutates it.
type Host interface {
	// LineElement returns the rendered element for the line with the given
	// index, or nil when the line is not currently in the document. A nil
	// result is normal during initial mount and transient layout states.
	LineElement(index int) *dom.Element
}

// Options configures an Overlay.
type Options struct {
	Theme theme.Theme

	// CurveGlyphsBaked is probed once per Render call. When it reports true
	// the grid's current mode already bakes slur and beat-loop curves into
	// its font-rendered output, so their SVG drawing is skipped for that
	// call. Ornament arcs always render; they have no baked form. Skipping
	// does not clear paths drawn earlier — only the explicit Clear
	// operations do.
	CurveGlyphsBaked func() bool
}

// Overlay owns the SVG root, the three z-ordered groups and their path pools.
// Create with New, dispose with Destroy.
type Overlay struct {
	host Host
	th   theme.Theme
	gate func() bool

	root      *dom.Element
	beatLoops *pathPool
	slurs     *pathPool
	ornaments *pathPool

	destroyed bool
}

// New builds an overlay and attaches its SVG root to container. The three
// groups are created once, bottom to top: beat loops, slurs, ornament arcs.
// A nil container leaves the root detached, which is fine for offscreen use.
func New(container *dom.Element, host Host, opts Options) *Overlay {
	th := opts.Theme.Normalize()

	root := dom.NewElement("svg")
	root.SetAttribute("xmlns", "http://www.w3.org/2000/svg")
	root.SetAttribute("class", "arc-overlay")
	// The overlay must never intercept input meant for the grid underneath.
	root.SetAttribute("style", "position:absolute;top:0;left:0;width:100%;height:100%;pointer-events:none;overflow:visible")

	beatGroup := dom.NewElement("g")
	beatGroup.SetAttribute("class", "beat-loop-layer")
	slurGroup := dom.NewElement("g")
	slurGroup.SetAttribute("class", "slur-layer")
	ornGroup := dom.NewElement("g")
	ornGroup.SetAttribute("class", "ornament-arc-layer")
	root.AppendChild(beatGroup)
	root.AppendChild(slurGroup)
	root.AppendChild(ornGroup)

	if container != nil {
		container.AppendChild(root)
	}

	return &Overlay{
		host:      host,
		th:        th,
		gate:      opts.CurveGlyphsBaked,
		root:      root,
		beatLoops: newPathPool(beatGroup, CategoryBeatLoop.pathClass(), th.BeatLoopWidth),
		slurs:     newPathPool(slurGroup, CategorySlur.pathClass(), th.SlurWidth),
		ornaments: newPathPool(ornGroup, CategoryOrnament.pathClass(), th.OrnamentWidth),
	}
}

// Root exposes the SVG root, e.g. for serialization. Callers must not add or
// remove children under it; the groups and their paths belong to the overlay.
func (o *Overlay) Root() *dom.Element { return o.root }

// WriteSVG serializes the overlay's current SVG tree.
func (o *Overlay) WriteSVG(w io.Writer) error {
	if o == nil || o.root == nil {
		return nil
	}
	return o.root.WriteSVG(w)
}

// Render reconciles the overlay against dl. It is a complete recomputation:
// coordinates are re-measured from the host tree every call, continuing arcs
// keep their path elements, vanished arcs are removed. A nil display list or
// an absent line list is a no-op; an empty line list clears everything that
// is not gate-suppressed.
func (o *Overlay) Render(dl *displaylist.DisplayList) {
	if o == nil || o.destroyed || o.host == nil {
		return
	}
	if dl == nil || dl.Lines == nil {
		return
	}

	baked := false
	if o.gate != nil {
		baked = o.gate()
	}

	if shouldRenderCurvesAsSVG(CategorySlur, baked) {
		o.slurs.reconcile(o.collect(dl, CategorySlur))
	}
	if shouldRenderCurvesAsSVG(CategoryBeatLoop, baked) {
		o.beatLoops.reconcile(o.collect(dl, CategoryBeatLoop))
	}
	o.ornaments.reconcile(o.collect(dl, CategoryOrnament))
}

// collect walks every line of the display list, locates its host element,
// measures the line top and gutter, and composes the category's arcs into
// overlay-absolute space. Lines whose element or content child cannot be
// found contribute nothing this render.
func (o *Overlay) collect(dl *displaylist.DisplayList, cat Category) []resolvedArc {
	var out []resolvedArc
	for i := range dl.Lines {
		line := &dl.Lines[i]
		el := o.host.LineElement(line.LineIndex)
		if el == nil {
			continue
		}
		content := el.FindClass(o.th.ContentClass)
		if content == nil {
			continue
		}
		frame := lineFrame{
			y:      line.Y,
			top:    el.Layout.Top,
			gutter: content.Layout.Left,
		}
		for _, a := range arcsFor(line, cat) {
			out = append(out, composeArc(a, cat, frame, o.th))
		}
	}
	return out
}

func arcsFor(line *displaylist.RenderLine, cat Category) []displaylist.RenderArc {
	switch cat {
	case CategoryBeatLoop:
		return line.BeatLoops
	case CategoryOrnament:
		return line.OrnamentArcs
	default:
		return line.Slurs
	}
}

// ClearSlurs removes every slur path.
func (o *Overlay) ClearSlurs() {
	if o == nil || o.slurs == nil {
		return
	}
	o.slurs.clear()
}

// ClearBeatLoops removes every beat-loop path.
func (o *Overlay) ClearBeatLoops() {
	if o == nil || o.beatLoops == nil {
		return
	}
	o.beatLoops.clear()
}

// ClearOrnamentArcs removes every ornament-arc path.
func (o *Overlay) ClearOrnamentArcs() {
	if o == nil || o.ornaments == nil {
		return
	}
	o.ornaments.clear()
}

// ClearAllArcs removes every path from all three groups.
func (o *Overlay) ClearAllArcs() {
	o.ClearBeatLoops()
	o.ClearSlurs()
	o.ClearOrnamentArcs()
}

// Destroy clears all three categories and detaches the SVG root. Safe to
// call repeatedly; after the first call Render becomes a no-op.
func (o *Overlay) Destroy() {
	if o == nil || o.destroyed {
		return
	}
	o.ClearAllArcs()
	if o.root != nil {
		o.root.Remove()
	}
	o.destroyed = true
}
