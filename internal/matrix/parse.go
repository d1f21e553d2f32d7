package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScalar reads a single entry. Plain numbers and fractions both work,
// so "1/2" and "0.5" parse to the same value.
func ParseScalar(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("matrix: empty scalar")
	}
	if num, den, ok := strings.Cut(trimmed, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("matrix: parse %q: %w", trimmed, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("matrix: parse %q: %w", trimmed, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("matrix: parse %q: zero denominator", trimmed)
		}
		return n / d, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("matrix: parse %q: %w", trimmed, err)
	}
	return f, nil
}

// Parse reads a matrix written as semicolon-separated rows of
// comma-separated entries, for example "2,1,1;1,-1,3".
func Parse(s string) (Matrix, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("matrix: empty input")
	}
	rowSpecs := strings.Split(trimmed, ";")
	out := make(Matrix, 0, len(rowSpecs))
	width := -1
	for _, rowSpec := range rowSpecs {
		cells := strings.Split(rowSpec, ",")
		row := make([]float64, 0, len(cells))
		for _, cell := range cells {
			v, err := ParseScalar(cell)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("matrix: ragged rows: %d vs %d entries", width, len(row))
		}
		out = append(out, row)
	}
	return out, nil
}
