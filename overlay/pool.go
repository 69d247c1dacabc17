package overlay

import (
	"strconv"
	"strings"

	"github.com/ByLCY/ligature/dom"
)

// pathPool is the keyed reconciler for one category's group: an id → element
// map diffed against each incoming arc list. Continuing ids keep their
// element (only the d attribute is rewritten), new ids get a fresh element,
// vanished ids are removed from the group. The pool owns its paths
// exclusively; nothing else may touch the group's children.
type pathPool struct {
	group       *dom.Element
	class       string
	strokeWidth float64
	paths       map[string]*dom.Element
}

func newPathPool(group *dom.Element, class string, strokeWidth float64) *pathPool {
	return &pathPool{
		group:       group,
		class:       class,
		strokeWidth: strokeWidth,
		paths:       map[string]*dom.Element{},
	}
}

func (p *pathPool) reconcile(arcs []resolvedArc) {
	incoming := make(map[string]struct{}, len(arcs))
	for _, a := range arcs {
		incoming[a.id] = struct{}{}

		el, ok := p.paths[a.id]
		if !ok {
			// Static attributes are set once at creation; later renders only
			// rewrite d. Geometry may shift even for a continuing id.
			el = dom.NewElement("path")
			el.SetAttribute("class", p.class+" "+directionClass(a.dir))
			el.SetAttribute("fill", "none")
			el.SetAttribute("stroke", a.color)
			el.SetAttribute("stroke-width", fmtWidth(p.strokeWidth))
			el.SetAttribute("stroke-linecap", "round")
			el.SetAttribute("stroke-linejoin", "round")
			el.SetAttribute("vector-effect", "non-scaling-stroke")
			p.group.AppendChild(el)
			p.paths[a.id] = el
		}
		el.SetAttribute("d", a.d)
	}

	// Garbage-collect vanished ids. Runs on every call; with an empty
	// incoming list this is a full clear.
	for id, el := range p.paths {
		if _, ok := incoming[id]; !ok {
			el.Remove()
			delete(p.paths, id)
		}
	}
}

// clear removes every path from the group and empties the pool.
func (p *pathPool) clear() {
	for id, el := range p.paths {
		el.Remove()
		delete(p.paths, id)
	}
}

func (p *pathPool) size() int { return len(p.paths) }

// has reports whether id currently owns a live path.
func (p *pathPool) has(id string) bool {
	_, ok := p.paths[id]
	return ok
}

func fmtWidth(w float64) string {
	s := strconv.FormatFloat(w, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
