package derivative

import (
	"fmt"
	"math"
	"strings"

	"calcpad/internal/calculus"
	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "derivative"
	exerciseVersion = "1.0.0"

	schemeCentral = "central"
	schemeForward = "forward"
	schemeSecond  = "second"
)

// Derivative approximates f'(x) by finite differences.
type Derivative struct {
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

// New creates a derivative exercise with the given parameters.
func New(cfg exercise.Config) *Derivative {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Numeric Derivative",
		Description: "Approximates f'(x) with central, forward, or second difference quotients.",
		Version:     exerciseVersion,
	}
	return &Derivative{Base: exercise.NewBase(info), cfg: cfg}
}

// Run evaluates the difference quotient and writes a report.
func (e *Derivative) Run(ctx *exercise.Context) (exercise.Result, error) {
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
			Message: `provide a function, e.g. -set f="x*x" -set x=3`,
		}, nil
	}
	x, err := e.cfg.Float("x", 0)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	h, err := e.cfg.Float("h", calculus.DefaultStep)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	scheme, err := e.cfg.String("scheme", schemeCentral)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}

	var value float64
	switch scheme {
	case schemeCentral:
		value, err = calculus.DerivativeStep(f, x, h)
	case schemeForward:
		value, err = calculus.ForwardDerivative(f, x, h)
	case schemeSecond:
		value, err = calculus.SecondDerivative(f, x, h)
	default:
		return exercise.Result{Status: exercise.StatusFailed},
			fmt.Errorf("%s: unknown scheme %q (want %s, %s, or %s)",
				exerciseID, scheme, schemeCentral, schemeForward, schemeSecond)
	}
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Numeric Derivative\n\n")
	fmt.Fprintf(&b, "- f = %s\n", spec)
	fmt.Fprintf(&b, "- x = %s\n", vector.FormatComponent(x))
	fmt.Fprintf(&b, "- h = %s\n", vector.FormatComponent(h))
	fmt.Fprintf(&b, "- scheme = %s\n\n", scheme)
	fmt.Fprintf(&b, "Result: %s\n", vector.FormatComponent(value))

	notes := map[string]string{"f": spec, "x": vector.FormatComponent(x), "scheme": scheme}
	reportPath, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(b.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: %s at x=%v (%s) = %v", exerciseID, spec, x, scheme, value)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    fmt.Sprintf("f'(%s) ~ %s", vector.FormatComponent(x), vector.FormatComponent(value)),
		ReportPath: reportPath,
	}, nil
}

// Examples reproduces the worked values this exercise was checked against.
func (e *Derivative) Examples() []check.Example {
	square := func(x float64) float64 { return x * x }
	return []check.Example{
		{
			Name: "derivative of x^2 at 3",
			Run: func() error {
				return check.Close("f'(3)", calculus.Derivative(square, 3), 6, 1e-6)
			},
		},
		{
			Name: "derivative of sin at 0",
			Run: func() error {
				return check.Close("sin'(0)", calculus.Derivative(math.Sin, 0), 1, 1e-6)
			},
		},
		{
			Name: "second derivative of x^2 is 2 everywhere",
			Run: func() error {
				got, err := calculus.SecondDerivative(square, 1.5, 1e-4)
				if err != nil {
					return err
				}
				return check.Close("f''(1.5)", got, 2, 1e-5)
			},
		},
	}
}
