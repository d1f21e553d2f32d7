package cross_product

import (
	"fmt"
	"strings"

	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "cross-product"
	exerciseVersion = "1.0.0"
)

// CrossProduct computes u x v for two vectors in R3 and verifies the
// result is orthogonal to both inputs.
type CrossProduct struct {
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

// New creates a cross product exercise with the given parameters.
func New(cfg exercise.Config) *CrossProduct {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Cross Product",
		Description: "Computes u x v in R3 and checks orthogonality against both inputs.",
		Version:     exerciseVersion,
	}
	return &CrossProduct{Base: exercise.NewBase(info), cfg: cfg}
}

// Run computes the cross product and writes a report.
func (e *CrossProduct) Run(ctx *exercise.Context) (exercise.Result, error) {
	if err := ctx.Validate(exerciseID); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	uSpec, err := e.cfg.String("u", "")
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	vSpec, err := e.cfg.String("v", "")
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	if uSpec == "" || vSpec == "" {
		return exercise.Result{
			Status:  exercise.StatusNeedsInput,
			Message: "provide both vectors, e.g. -set u=1,2,-2 -set v=3,0,1",
		}, nil
	}
	u, err := vector.Parse(uSpec)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	v, err := vector.Parse(vSpec)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	w, err := vector.Cross(u, v)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	wu, err := vector.Dot(w, u)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	wv, err := vector.Dot(w, v)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Cross Product\n\n")
	fmt.Fprintf(&b, "- u = %s\n", u)
	fmt.Fprintf(&b, "- v = %s\n", v)
	fmt.Fprintf(&b, "- u x v = %s\n\n", w)
	fmt.Fprintf(&b, "## Orthogonality check\n\n")
	fmt.Fprintf(&b, "- (u x v) . u = %s\n", vector.FormatComponent(wu))
	fmt.Fprintf(&b, "- (u x v) . v = %s\n", vector.FormatComponent(wv))

	notes := map[string]string{"u": u.String(), "v": v.String()}
	path, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(b.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: %s x %s = %s", exerciseID, u, v, w)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    fmt.Sprintf("u x v = %s", w),
		ReportPath: path,
	}, nil
}

// Examples reproduces the worked values this exercise was checked against.
func (e *CrossProduct) Examples() []check.Example {
	return []check.Example{
		{
			Name: "cross of (1,2,-2) and (3,0,1)",
			Run: func() error {
				w, err := vector.Cross(vector.Vector{1, 2, -2}, vector.Vector{3, 0, 1})
				if err != nil {
					return err
				}
				return check.CloseSlice("u x v", w, []float64{2, -7, -6}, 0)
			},
		},
		{
			Name: "result is orthogonal to both inputs",
			Run: func() error {
				u := vector.Vector{1, 2, -2}
				v := vector.Vector{3, 0, 1}
				w, err := vector.Cross(u, v)
				if err != nil {
					return err
				}
				wu, err := vector.Dot(w, u)
				if err != nil {
					return err
				}
				if err := check.Close("(u x v) . u", wu, 0, 0); err != nil {
					return err
				}
				wv, err := vector.Dot(w, v)
				if err != nil {
					return err
				}
				return check.Close("(u x v) . v", wv, 0, 0)
			},
		},
	}
}
