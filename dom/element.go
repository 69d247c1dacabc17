// Package dom provides the small retained element tree shared by the text
// grid and the arc overlay. It stands in for the browser DOM the original
// display ran against: elements carry a tag, insertion-ordered attributes,
// children and a layout box filled in by whoever performed layout. The
// overlay's reconciliation invariants are expressed as pointer identity of
// *Element values, so elements must never be copied.
package dom

import (
	"io"
	"strings"
)

// Box is an element's measured geometry in overlay-absolute pixels. The host
// layout pass writes it; the overlay only reads it.
type Box struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Element is a node in the retained tree.
type Element struct {
	Tag    string
	Layout Box

	attrNames []string
	attrs     map[string]string
	children  []*Element
	parent    *Element
}

// NewElement returns a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, attrs: map[string]string{}}
}

// SetAttribute sets or replaces an attribute. First-set order is preserved in
// serialization so output is stable across runs.
func (e *Element) SetAttribute(name, value string) {
	if _, ok := e.attrs[name]; !ok {
		e.attrNames = append(e.attrNames, name)
	}
	e.attrs[name] = value
}

// Attribute returns the attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AppendChild adds child as the last child, detaching it from any previous
// parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child if it is a direct child of e.
func (e *Element) RemoveChild(child *Element) {
	if child == nil || child.parent != e {
		return
	}
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Remove detaches e from its parent. Detached elements are a no-op.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Parent returns the current parent, nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child slice. Callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// HasClass reports whether the class attribute contains name as a
// whitespace-separated token.
func (e *Element) HasClass(name string) bool {
	cls, ok := e.attrs["class"]
	if !ok {
		return false
	}
	for _, tok := range strings.Fields(cls) {
		if tok == name {
			return true
		}
	}
	return false
}

// FindClass returns the first descendant (depth-first, document order)
// carrying the class, or nil. e itself is not considered.
func (e *Element) FindClass(name string) *Element {
	for _, c := range e.children {
		if c.HasClass(name) {
			return c
		}
		if found := c.FindClass(name); found != nil {
			return found
		}
	}
	return nil
}

// Text children are modeled as a dedicated attribute to keep the tree simple;
// only the grid's cell spans use it.
const textAttr = "data-text"

// SetText stores the element's text content.
func (e *Element) SetText(s string) { e.SetAttribute(textAttr, s) }

// Text returns the element's text content.
func (e *Element) Text() string {
	v := e.attrs[textAttr]
	return v
}

// WriteSVG serializes the subtree rooted at e as SVG/XML with stable
// attribute order and a two-space indent.
func (e *Element) WriteSVG(w io.Writer) error {
	var b strings.Builder
	e.write(&b, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the serialized subtree.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b, 0)
	return b.String()
}

func (e *Element) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, name := range e.attrNames {
		if name == textAttr {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escape(e.attrs[name]))
		b.WriteByte('"')
	}
	text := e.Text()
	if len(e.children) == 0 && text == "" {
		b.WriteString("/>\n")
		return
	}
	b.WriteByte('>')
	if text != "" {
		b.WriteString(escape(text))
	}
	if len(e.children) > 0 {
		b.WriteByte('\n')
		for _, c := range e.children {
			c.write(b, depth+1)
		}
		b.WriteString(indent)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }
