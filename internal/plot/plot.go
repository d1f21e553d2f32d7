// Package plot samples a function over a closed interval and renders the
// samples, either as gnuplot TSV data (see the points package) or as a
// rough character grid for the terminal.
package plot

import (
	"fmt"
	"strings"

	"calcpad/internal/fn"
	"calcpad/internal/points"
)

const (
	// MinWidth and MinHeight bound the character grid so axes and at
	// least a handful of cells always fit.
	MinWidth  = 16
	MinHeight = 8
)

// Sample evaluates f at n+1 evenly spaced inputs across [a, b],
// endpoints included.
func Sample(f fn.Func, a, b float64, n int) ([]points.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("plot: need at least 1 step, got %d", n)
	}
	if a >= b {
		return nil, fmt.Errorf("plot: domain [%v, %v] is empty", a, b)
	}
	h := (b - a) / float64(n)
	pts := make([]points.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x := a + float64(i)*h
		if i == n {
			x = b // avoid drift on the last step
		}
		pts = append(pts, points.Point{X: x, Y: f(x)})
	}
	return pts, nil
}

// Render draws the points on a width×height character grid with the x and
// y axes marked when they cross the view. The output is plain text; the
// TUI applies styling on top.
func Render(pts []points.Point, width, height int) (string, error) {
	if len(pts) == 0 {
		return "", fmt.Errorf("plot: nothing to render")
	}
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		// Flat functions still get a visible row mid-grid.
		yMin, yMax = yMin-1, yMax+1
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}

	col := func(x float64) int {
		c := int((x - xMin) / (xMax - xMin) * float64(width-1))
		return clamp(c, 0, width-1)
	}
	row := func(y float64) int {
		// Row 0 is the top of the grid.
		r := int((yMax - y) / (yMax - yMin) * float64(height-1))
		return clamp(r, 0, height-1)
	}

	if yMin <= 0 && 0 <= yMax {
		r := row(0)
		for c := 0; c < width; c++ {
			grid[r][c] = '-'
		}
	}
	if xMin <= 0 && 0 <= xMax {
		c := col(0)
		for r := 0; r < height; r++ {
			if grid[r][c] == '-' {
				grid[r][c] = '+'
			} else {
				grid[r][c] = '|'
			}
		}
	}
	for _, p := range pts {
		grid[row(p.Y)][col(p.X)] = '*'
	}

	var b strings.Builder
	for r, line := range grid {
		b.Write(line)
		if r < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
