// Package points holds the (x, y) sample type the exercises trade in,
// plus readers and writers for the gnuplot-style TSV data files they are
// stored as.
package points

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Point pairs an input x with an observed or computed value y.
type Point struct {
	X float64
	Y float64
}

// Xs extracts the x coordinates in order.
func Xs(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.X
	}
	return out
}

// Ys extracts the y coordinates in order.
func Ys(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Y
	}
	return out
}

// ReadTSV parses gnuplot-style data: one "x<TAB>y" pair per line, with
// blank lines and #-comments ignored. Whitespace-separated columns are
// accepted so hand-written files load too.
func ReadTSV(r io.Reader) ([]Point, error) {
	var pts []Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("points: line %d: expected two columns, got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("points: line %d: parse x: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("points: line %d: parse y: %w", lineNo, err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("points: read: %w", err)
	}
	return pts, nil
}

// WriteTSV renders points one pair per line, tab separated, ready for
// `plot "file" with lines` in gnuplot.
func WriteTSV(w io.Writer, pts []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%g\t%g\n", p.X, p.Y); err != nil {
			return fmt.Errorf("points: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("points: write: %w", err)
	}
	return nil
}

// ReadFile loads a TSV data file from disk.
func ReadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("points: open %s: %w", path, err)
	}
	defer f.Close()
	pts, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("points: %s: %w", path, err)
	}
	return pts, nil
}

// WriteFile stores points as a TSV data file, creating parent-less paths
// as-is (callers own directory layout).
func WriteFile(path string, pts []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("points: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTSV(f, pts)
}
