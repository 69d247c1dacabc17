package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeTheme(t, "slurColor: \"#1a4ed8\"\nslurWidth: 2\n")
	th, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "#1a4ed8", th.SlurColor)
	require.Equal(t, 2.0, th.SlurWidth)
	// Untouched fields keep defaults.
	require.Equal(t, Default().BeatLoopColor, th.BeatLoopColor)
	require.Equal(t, Default().ContentClass, th.ContentClass)
}

func TestLoadBackfillsZeroWidths(t *testing.T) {
	path := writeTheme(t, "ornamentWidth: 0\n")
	th, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().OrnamentWidth, th.OrnamentWidth)
}

func TestLoadBakedCurveGlyphs(t *testing.T) {
	path := writeTheme(t, "bakedCurveGlyphs: true\n")
	th, err := Load(path)
	require.NoError(t, err)
	require.True(t, th.BakedCurveGlyphs)
	require.False(t, Default().BakedCurveGlyphs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeTheme(t, "slurColor: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
}
