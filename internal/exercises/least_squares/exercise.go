package least_squares

import (
	"fmt"
	"math"
	"strings"

	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/points"
	"calcpad/internal/regress"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "least-squares"
	exerciseVersion = "1.0.0"

	methodDirect = "direct"
	methodNormal = "normal"
)

// LeastSquares fits a regression line to a data file, either with the
// closed-form sums or by solving the normal equations.
type LeastSquares struct {
	exercise.Base
	cfg exercise.Config
}

// Register adds the exercise factory to the registry.
func Register(reg *exercise.Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(exerciseID, func(cfg exercise.Config) (exercise.Exercise, error) {
		return New(cfg), nil
	})
}

// New creates a least squares exercise with the given parameters.
func New(cfg exercise.Config) *LeastSquares {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Least Squares Fit",
		Description: "Fits y = mx + b to a data file by closed-form sums or the normal equations.",
		Version:     exerciseVersion,
	}
	return &LeastSquares{Base: exercise.NewBase(info), cfg: cfg}
}

// Run fits the line and writes a report with residuals.
func (e *LeastSquares) Run(ctx *exercise.Context) (exercise.Result, error) {
	if err := ctx.Validate(exerciseID); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	dataSpec, err := e.cfg.String("data", "")
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	if dataSpec == "" {
		return exercise.Result{
			Status:  exercise.StatusNeedsInput,
			Message: "provide a data file, e.g. -set data=points.tsv",
		}, nil
	}
	method, err := e.cfg.String("method", methodDirect)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	pts, err := points.ReadFile(ctx.ResolveDataPath(dataSpec))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var line regress.Line
	switch method {
	case methodDirect:
		line, err = regress.Fit(pts)
	case methodNormal:
		line, err = regress.FitNormal(pts)
	default:
		return exercise.Result{Status: exercise.StatusFailed},
			fmt.Errorf("%s: unknown method %q (want %s or %s)", exerciseID, method, methodDirect, methodNormal)
	}
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Least Squares Fit\n\n")
	fmt.Fprintf(&b, "Data: %s (%d points), method: %s\n\n", dataSpec, len(pts), method)
	fmt.Fprintf(&b, "y = %s x + %s\n\n",
		vector.FormatComponent(line.Slope), vector.FormatComponent(line.Intercept))
	fmt.Fprintf(&b, "| x | y | fit | residual |\n|---|---|---|---|\n")
	var sse float64
	for _, p := range pts {
		fit := line.At(p.X)
		r := p.Y - fit
		sse += r * r
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			vector.FormatComponent(p.X), vector.FormatComponent(p.Y),
			vector.FormatComponent(fit), vector.FormatComponent(r))
	}
	fmt.Fprintf(&b, "\nSum of squared residuals: %s\n", vector.FormatComponent(sse))

	notes := map[string]string{"data": dataSpec, "method": method}
	reportPath, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(b.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: y = %vx + %v (%s)", exerciseID, line.Slope, line.Intercept, method)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    fmt.Sprintf("y = %sx + %s", vector.FormatComponent(line.Slope), vector.FormatComponent(line.Intercept)),
		ReportPath: reportPath,
	}, nil
}

var examplePoints = []points.Point{
	{X: -4, Y: -3},
	{X: -3, Y: -1},
	{X: -2, Y: -2},
	{X: -1.5, Y: -0.5},
	{X: -0.5, Y: 1},
	{X: 1, Y: 0},
	{X: 2, Y: 1.5},
	{X: 3.5, Y: 1},
	{X: 4, Y: 2.5},
}

// Examples reproduces the worked values this exercise was checked against.
func (e *LeastSquares) Examples() []check.Example {
	return []check.Example{
		{
			Name: "closed-form fit of the worksheet data",
			Run: func() error {
				line, err := regress.Fit(examplePoints)
				if err != nil {
					return err
				}
				if err := check.Close("slope", line.Slope, 0.551931330472103, 1e-12); err != nil {
					return err
				}
				return check.Close("intercept", line.Intercept, -0.024892703862660945, 1e-12)
			},
		},
		{
			Name: "normal equations agree with the closed form",
			Run: func() error {
				direct, err := regress.Fit(examplePoints)
				if err != nil {
					return err
				}
				normal, err := regress.FitNormal(examplePoints)
				if err != nil {
					return err
				}
				if math.Abs(direct.Slope-normal.Slope) > 1e-9 {
					return fmt.Errorf("slopes disagree: %v vs %v", direct.Slope, normal.Slope)
				}
				return check.Close("intercept", normal.Intercept, direct.Intercept, 1e-9)
			},
		},
	}
}
