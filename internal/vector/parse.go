package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a comma-separated list of numbers ("1,2,-2") into a Vector.
func Parse(s string) (Vector, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("vector: empty input")
	}
	parts := strings.Split(trimmed, ",")
	out := make(Vector, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("vector: parse %q: %w", part, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// String renders v in coordinate form: (v1, v2, ..., vn). Whole values
// print without a decimal point so worked examples stay readable.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, a := range v {
		parts[i] = FormatComponent(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FormatComponent renders one component, trimming trailing zeros.
func FormatComponent(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
