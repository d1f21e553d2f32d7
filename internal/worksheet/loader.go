package worksheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a worksheet from YAML bytes and validates it.
func ParseYAML(data []byte) (Worksheet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Worksheet{}, fmt.Errorf("worksheet: definition payload is empty")
	}
	var ws Worksheet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return Worksheet{}, fmt.Errorf("worksheet: decode definition: %w", err)
	}
	if err := ws.Validate(); err != nil {
		return Worksheet{}, err
	}
	return ws, nil
}

// LoadReader reads worksheet data from an io.Reader.
func LoadReader(r io.Reader) (Worksheet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Worksheet{}, fmt.Errorf("worksheet: read definition: %w", err)
	}
	return ParseYAML(content)
}

// LoadFile loads a worksheet from an explicit file path.
func LoadFile(path string) (Worksheet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Worksheet{}, fmt.Errorf("worksheet: read %s: %w", path, err)
	}
	ws, parseErr := ParseYAML(content)
	if parseErr != nil {
		return Worksheet{}, fmt.Errorf("worksheet: %s: %w", path, parseErr)
	}
	return ws, nil
}

// LoadDir loads every .yaml and .yml worksheet in dir, sorted by ID.
// A missing directory is not an error; it reads as an empty set.
func LoadDir(dir string) ([]Worksheet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("worksheet: read dir %s: %w", dir, err)
	}
	var sheets []Worksheet
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		ws, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, ws)
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].ID < sheets[j].ID })
	return sheets, nil
}
