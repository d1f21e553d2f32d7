package integral

import (
	"fmt"
	"strings"

	"calcpad/internal/calculus"
	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "integral"
	exerciseVersion = "1.0.0"

	defaultPanels = 100

	methodTrapezoid = "trapezoid"
	methodMidpoint  = "midpoint"
	methodSimpson   = "simpson"
)

// Integral approximates a definite integral with a composite rule.
type Integral struct {
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

// New creates an integral exercise with the given parameters.
func New(cfg exercise.Config) *Integral {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Numeric Integral",
		Description: "Approximates the integral of f over [a, b] with trapezoid, midpoint, or Simpson panels.",
		Version:     exerciseVersion,
	}
	return &Integral{Base: exercise.NewBase(info), cfg: cfg}
}

// Run approximates the integral and writes a report.
func (e *Integral) Run(ctx *exercise.Context) (exercise.Result, error) {
	if err := ctx.Validate(exerciseID); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	f, spec, err := exercise.LoadFunction(ctx.Config, e.cfg)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	if f == nil {
		return exercise.Result{
			Status:  exercise.StatusNeedsInput,
			Message: `provide a function, e.g. -set f="x*x" -set a=0 -set b=1`,
		}, nil
	}
	a, err := e.cfg.Float("a", 0)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	b, err := e.cfg.Float("b", 1)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	panels, err := e.cfg.Int("panels", defaultPanels)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	method, err := e.cfg.String("method", methodSimpson)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}

	var value float64
	switch method {
	case methodTrapezoid:
		value, err = calculus.Trapezoid(f, a, b, panels)
	case methodMidpoint:
		value, err = calculus.Midpoint(f, a, b, panels)
	case methodSimpson:
		value, err = calculus.Simpson(f, a, b, panels)
	default:
		return exercise.Result{Status: exercise.StatusFailed},
			fmt.Errorf("%s: unknown method %q (want %s, %s, or %s)",
				exerciseID, method, methodTrapezoid, methodMidpoint, methodSimpson)
	}
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "# Numeric Integral\n\n")
	fmt.Fprintf(&body, "- f = %s\n", spec)
	fmt.Fprintf(&body, "- interval = [%s, %s]\n", vector.FormatComponent(a), vector.FormatComponent(b))
	fmt.Fprintf(&body, "- panels = %d\n", panels)
	fmt.Fprintf(&body, "- method = %s\n\n", method)
	fmt.Fprintf(&body, "Result: %s\n", vector.FormatComponent(value))

	notes := map[string]string{"f": spec, "method": method}
	reportPath, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(body.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: %s over [%v, %v] (%s) = %v", exerciseID, spec, a, b, method, value)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    fmt.Sprintf("integral ~ %s", vector.FormatComponent(value)),
		ReportPath: reportPath,
	}, nil
}

// Examples reproduces the worked values this exercise was checked against.
func (e *Integral) Examples() []check.Example {
	square := func(x float64) float64 { return x * x }
	return []check.Example{
		{
			Name: "Simpson is exact on x^2",
			Run: func() error {
				got, err := calculus.Simpson(square, 0, 1, 10)
				if err != nil {
					return err
				}
				return check.Close("integral", got, 1.0/3.0, 1e-12)
			},
		},
		{
			Name: "trapezoid converges on x^2",
			Run: func() error {
				got, err := calculus.Trapezoid(square, 0, 1, 1000)
				if err != nil {
					return err
				}
				return check.Close("integral", got, 1.0/3.0, 1e-6)
			},
		},
		{
			Name: "reversed bounds flip the sign",
			Run: func() error {
				forward, err := calculus.Simpson(square, 0, 2, 8)
				if err != nil {
					return err
				}
				backward, err := calculus.Simpson(square, 2, 0, 8)
				if err != nil {
					return err
				}
				return check.Close("sum", forward+backward, 0, 1e-12)
			},
		},
	}
}
