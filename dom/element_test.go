package dom

import (
	"strings"
	"testing"
)

func TestAppendAndRemovePreserveIdentity(t *testing.T) {
	root := NewElement("g")
	a := NewElement("path")
	b := NewElement("path")
	root.AppendChild(a)
	root.AppendChild(b)

	if len(root.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children()))
	}
	if root.Children()[0] != a || root.Children()[1] != b {
		t.Fatal("children not in insertion order")
	}

	a.Remove()
	if a.Parent() != nil {
		t.Fatal("removed element still has a parent")
	}
	if len(root.Children()) != 1 || root.Children()[0] != b {
		t.Fatal("remaining child list wrong after Remove")
	}

	// Removing again is a no-op.
	a.Remove()
	root.RemoveChild(a)
	if len(root.Children()) != 1 {
		t.Fatal("double remove changed the tree")
	}
}

func TestAppendChildReparents(t *testing.T) {
	g1 := NewElement("g")
	g2 := NewElement("g")
	p := NewElement("path")
	g1.AppendChild(p)
	g2.AppendChild(p)

	if len(g1.Children()) != 0 {
		t.Fatal("old parent kept the child")
	}
	if p.Parent() != g2 {
		t.Fatal("child not reparented")
	}
}

func TestFindClass(t *testing.T) {
	line := NewElement("div")
	line.SetAttribute("class", "notation-line")
	gutterLabel := NewElement("span")
	gutterLabel.SetAttribute("class", "line-label")
	content := NewElement("span")
	content.SetAttribute("class", "line-content cells")
	line.AppendChild(gutterLabel)
	line.AppendChild(content)

	if got := line.FindClass("line-content"); got != content {
		t.Fatalf("FindClass returned %v, want the content span", got)
	}
	if line.FindClass("missing") != nil {
		t.Fatal("FindClass found a class that does not exist")
	}
	if !content.HasClass("cells") || content.HasClass("cell") {
		t.Fatal("HasClass must match whole tokens only")
	}
}

func TestSerializationStableAndEscaped(t *testing.T) {
	svg := NewElement("svg")
	svg.SetAttribute("xmlns", "http://www.w3.org/2000/svg")
	svg.SetAttribute("class", "arc-overlay")
	g := NewElement("g")
	g.SetAttribute("class", "slur-layer")
	p := NewElement("path")
	p.SetAttribute("stroke", `#000"<>&`)
	p.SetAttribute("d", "M 0 0 C 1 1, 2 2, 3 0")
	g.AppendChild(p)
	svg.AppendChild(g)

	out := svg.String()
	want := "<svg xmlns=\"http://www.w3.org/2000/svg\" class=\"arc-overlay\">\n" +
		"  <g class=\"slur-layer\">\n" +
		"    <path stroke=\"#000&quot;&lt;&gt;&amp;\" d=\"M 0 0 C 1 1, 2 2, 3 0\"/>\n" +
		"  </g>\n" +
		"</svg>\n"
	if out != want {
		t.Fatalf("serialization mismatch:\n got: %q\nwant: %q", out, want)
	}

	// Overwriting an attribute keeps its original position.
	p.SetAttribute("stroke", "#333")
	if !strings.Contains(svg.String(), `<path stroke="#333" d=`) {
		t.Fatal("attribute overwrite changed serialization order")
	}
}

func TestTextContent(t *testing.T) {
	cell := NewElement("span")
	cell.SetAttribute("class", "notation-cell")
	cell.SetText("S<r>")
	out := cell.String()
	if want := "<span class=\"notation-cell\">S&lt;r&gt;</span>\n"; out != want {
		t.Fatalf("text serialization = %q, want %q", out, want)
	}
}
