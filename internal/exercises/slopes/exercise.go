package slopes

import (
	"fmt"
	"strings"

	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/points"
	"calcpad/internal/regress"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "slopes"
	exerciseVersion = "1.0.0"
)

// Slopes computes the slope between each adjacent pair of data points,
// the numeric warm-up for reading a rate of change off a table.
type Slopes struct {
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

// New creates a slopes exercise with the given parameters.
func New(cfg exercise.Config) *Slopes {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Successive Slopes",
		Description: "Computes the slope between each adjacent pair of points in a data file.",
		Version:     exerciseVersion,
	}
	return &Slopes{Base: exercise.NewBase(info), cfg: cfg}
}

// Run reads the data file and writes a slope table report.
func (e *Slopes) Run(ctx *exercise.Context) (exercise.Result, error) {
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
	path := ctx.ResolveDataPath(dataSpec)
	pts, err := points.ReadFile(path)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	slopes, err := regress.SuccessiveSlopes(pts)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Successive Slopes\n\n")
	fmt.Fprintf(&b, "Data: %s (%d points)\n\n", dataSpec, len(pts))
	fmt.Fprintf(&b, "| interval | slope |\n|---|---|\n")
	for i, m := range slopes {
		fmt.Fprintf(&b, "| (%s, %s) to (%s, %s) | %s |\n",
			vector.FormatComponent(pts[i].X), vector.FormatComponent(pts[i].Y),
			vector.FormatComponent(pts[i+1].X), vector.FormatComponent(pts[i+1].Y),
			vector.FormatComponent(m))
	}

	notes := map[string]string{"data": dataSpec}
	reportPath, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(b.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: %d slopes from %s", exerciseID, len(slopes), dataSpec)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    fmt.Sprintf("computed %d slopes", len(slopes)),
		ReportPath: reportPath,
	}, nil
}

// Examples reproduces the worked values this exercise was checked against.
func (e *Slopes) Examples() []check.Example {
	return []check.Example{
		{
			Name: "slope between two points",
			Run: func() error {
				m, err := regress.SlopeBetween(points.Point{X: 11, Y: 68}, points.Point{X: 11.25, Y: 85})
				if err != nil {
					return err
				}
				return check.Close("slope", m, 68, 0)
			},
		},
		{
			Name: "successive slopes over a table",
			Run: func() error {
				pts := []points.Point{
					{X: 11, Y: 68},
					{X: 11.25, Y: 85},
					{X: 11.5, Y: 101},
					{X: 11.75, Y: 117},
					{X: 12.75, Y: 185},
				}
				got, err := regress.SuccessiveSlopes(pts)
				if err != nil {
					return err
				}
				return check.CloseSlice("slopes", got, []float64{68, 64, 64, 68}, 1e-12)
			},
		},
	}
}
