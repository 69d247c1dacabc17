package displaylist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Read decodes a display list from JSON.
func Read(r io.Reader) (*DisplayList, error) {
	var dl DisplayList
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dl); err != nil {
		return nil, fmt.Errorf("decode display list: %w", err)
	}
	return &dl, nil
}

// ReadFile decodes a display list from a JSON file.
func ReadFile(path string) (*DisplayList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open display list %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteDebugJSON dumps the display list as indented JSON for debugging or
// visualization.
func WriteDebugJSON(dl *DisplayList, path string) error {
	if dl == nil {
		return nil
	}
	data, err := json.MarshalIndent(dl, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
