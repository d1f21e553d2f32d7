package row_reduce

import (
	"fmt"
	"strings"

	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/matrix"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "row-reduce"
	exerciseVersion = "1.0.0"
)

// RowReduce brings a matrix to row echelon form and optionally solves it
// as an augmented system.
type RowReduce struct {
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

// New creates a row reduction exercise with the given parameters.
func New(cfg exercise.Config) *RowReduce {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Row Reduction",
		Description: "Reduces a matrix to row echelon form, optionally solving it as [A|b].",
		Version:     exerciseVersion,
	}
	return &RowReduce{Base: exercise.NewBase(info), cfg: cfg}
}

// Run reduces the matrix and writes a report.
func (e *RowReduce) Run(ctx *exercise.Context) (exercise.Result, error) {
	if err := ctx.Validate(exerciseID); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	matSpec, err := e.cfg.String("matrix", "")
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	if matSpec == "" {
		return exercise.Result{
			Status:  exercise.StatusNeedsInput,
			Message: `provide a matrix, e.g. -set matrix="1,1,3;1,-1,1"`,
		}, nil
	}
	solve, err := e.cfg.Bool("solve", false)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	A, err := matrix.Parse(matSpec)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	reduced := matrix.Reduce(A)

	var b strings.Builder
	fmt.Fprintf(&b, "# Row Reduction\n\n")
	fmt.Fprintf(&b, "Input:\n\n```\n%s```\n\n", A)
	fmt.Fprintf(&b, "Row echelon form:\n\n```\n%s```\n", reduced)

	message := "reduced to row echelon form"
	if solve {
		x, solveErr := matrix.SolveAugmented(A)
		if solveErr != nil {
			fmt.Fprintf(&b, "\n## Solution\n\nNo unique solution: %v\n", solveErr)
			message = solveErr.Error()
		} else {
			fmt.Fprintf(&b, "\n## Solution\n\n")
			for i, xi := range x {
				fmt.Fprintf(&b, "- x%d = %s\n", i+1, vector.FormatComponent(xi))
			}
			message = fmt.Sprintf("solved for %d unknowns", len(x))
		}
	}

	notes := map[string]string{"matrix": matSpec}
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
func (e *RowReduce) Examples() []check.Example {
	return []check.Example{
		{
			Name: "three pivot reduction",
			Run: func() error {
				got := matrix.Reduce(matrix.Matrix{{4, 0, 1}, {-2, 1, 0}, {-2, 0, 1}})
				want := matrix.Matrix{{1, 0, 0.25}, {0, 1, 0.5}, {0, 0, 1}}
				for i := range want {
					if err := check.CloseSlice(fmt.Sprintf("row %d", i+1), got[i], want[i], 1e-12); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name: "two equation system",
			Run: func() error {
				x, err := matrix.SolveAugmented(matrix.Matrix{{1, 1, 3}, {1, -1, 1}})
				if err != nil {
					return err
				}
				return check.CloseSlice("x", x, []float64{2, 1}, 1e-12)
			},
		},
	}
}
