package interpolation

import (
	"fmt"
	"strings"

	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/interp"
	"calcpad/internal/points"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "interpolation"
	exerciseVersion = "1.0.0"
)

// Interpolation builds the Newton form of the polynomial through a set of
// data points and optionally evaluates it.
type Interpolation struct {
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

// New creates an interpolation exercise with the given parameters.
func New(cfg exercise.Config) *Interpolation {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Newton Interpolation",
		Description: "Builds the interpolating polynomial through a data file using divided differences.",
		Version:     exerciseVersion,
	}
	return &Interpolation{Base: exercise.NewBase(info), cfg: cfg}
}

// Run builds the polynomial and writes a report.
func (e *Interpolation) Run(ctx *exercise.Context) (exercise.Result, error) {
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
	pts, err := points.ReadFile(ctx.ResolveDataPath(dataSpec))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	coefs, err := interp.Coefficients(pts)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Newton Interpolation\n\n")
	fmt.Fprintf(&b, "Data: %s (%d points)\n\n", dataSpec, len(pts))
	fmt.Fprintf(&b, "Newton coefficients (in point order):\n\n")
	for i, c := range coefs {
		fmt.Fprintf(&b, "- c%d = %s\n", i, vector.FormatComponent(c))
	}

	message := fmt.Sprintf("degree %d polynomial through %d points", len(pts)-1, len(pts))
	atSpec, err := e.cfg.String("at", "")
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	if atSpec != "" {
		zs, err := vector.Parse(atSpec)
		if err != nil {
			return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
		}
		ys, err := interp.Interpolate(pts, zs)
		if err != nil {
			return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
		}
		fmt.Fprintf(&b, "\n## Evaluation\n\n| z | p(z) |\n|---|---|\n")
		for i, z := range zs {
			fmt.Fprintf(&b, "| %s | %s |\n",
				vector.FormatComponent(z), vector.FormatComponent(ys[i]))
		}
		message = fmt.Sprintf("p(%s) = %s", vector.FormatComponent(zs[len(zs)-1]), vector.FormatComponent(ys[len(ys)-1]))
	}

	notes := map[string]string{"data": dataSpec}
	if atSpec != "" {
		notes["at"] = atSpec
	}
	reportPath, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(b.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: %s", exerciseID, message)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    message,
		ReportPath: reportPath,
	}, nil
}

// Examples reproduces the worked values this exercise was checked against.
func (e *Interpolation) Examples() []check.Example {
	return []check.Example{
		{
			Name: "divided difference of three points",
			Run: func() error {
				dd, err := interp.DividedDifference([]points.Point{
					{X: 0, Y: 1}, {X: 4, Y: 3}, {X: 5, Y: 2},
				})
				if err != nil {
					return err
				}
				return check.Close("f[0,4,5]", dd, -0.3, 1e-12)
			},
		},
		{
			Name: "polynomial passes through its data",
			Run: func() error {
				pts := []points.Point{{X: 0, Y: 1}, {X: 4, Y: 3}, {X: 5, Y: 2}}
				ys, err := interp.Interpolate(pts, []float64{0, 4, 5})
				if err != nil {
					return err
				}
				return check.CloseSlice("p", ys, []float64{1, 3, 2}, 1e-12)
			},
		},
		{
			Name: "quadratic data reproduces the quadratic",
			Run: func() error {
				pts := []points.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}
				y, err := interp.At(pts, 3)
				if err != nil {
					return err
				}
				return check.Close("p(3)", y, 9, 1e-12)
			},
		},
	}
}
