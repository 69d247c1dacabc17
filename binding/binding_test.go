package binding

import "testing"

func testData() any {
	return map[string]any{
		"theme": map[string]any{
			"slur":   "#1a4ed8",
			"colors": []any{"#000", "#333"},
		},
		"meta": map[string]any{"title": "Raga Demo"},
	}
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"${theme.slur}", "#1a4ed8"},
		{"color ${theme.colors[1]} wins", "color #333 wins"},
		{"${meta.title}", "Raga Demo"},
		{"${missing.path}", "${missing.path}"},
		{"${theme.colors[9]}", "${theme.colors[9]}"},
		{"no placeholders", "no placeholders"},
		{"${}", "${}"},
	}
	for _, tc := range cases {
		if got := Interpolate(tc.in, testData()); got != tc.want {
			t.Errorf("Interpolate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${theme.slur}", nil); got != "${theme.slur}" {
		t.Fatalf("nil data must keep the placeholder, got %q", got)
	}
}

func TestResolveIndexChains(t *testing.T) {
	data := map[string]any{"grid": []any{[]any{"a", "b"}}}
	v, ok := Resolve(data, "grid[0][1]")
	if !ok || v != "b" {
		t.Fatalf("Resolve(grid[0][1]) = %v, %v", v, ok)
	}
	if _, ok := Resolve(data, "grid[0][x]"); ok {
		t.Fatal("malformed index must not resolve")
	}
}
