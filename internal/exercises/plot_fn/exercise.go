package plot_fn

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"calcpad/internal/check"
	"calcpad/internal/exercise"
	"calcpad/internal/plot"
	"calcpad/internal/points"
	"calcpad/internal/vector"
)

const (
	exerciseID      = "plot-fn"
	exerciseVersion = "1.0.0"
)

// PlotFn samples a function over an interval and renders it as a
// character plot, the terminal stand-in for a gnuplot window.
type PlotFn struct {
	exercise.Base
	cfg exercise.Config
	now func() time.Time
}

// Option customizes the plot exercise.
type Option func(*PlotFn)

// WithClock overrides the timestamp source used for plot filenames.
func WithClock(clock func() time.Time) Option {
	return func(e *PlotFn) {
		if clock != nil {
			e.now = clock
		}
	}
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

// New creates a plot exercise with the given parameters.
func New(cfg exercise.Config, opts ...Option) *PlotFn {
	info := exercise.Info{
		ID:          exerciseID,
		Name:        "Plot Function",
		Description: "Samples f(x) over [a, b] and renders a character plot into the plots directory.",
		Version:     exerciseVersion,
	}
	e := &PlotFn{Base: exercise.NewBase(info), cfg: cfg, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Run samples the function, renders the plot, and writes a report.
func (e *PlotFn) Run(ctx *exercise.Context) (exercise.Result, error) {
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
			Message: `provide a function, e.g. -set f="x*x - 2" or -set file=parabola.go`,
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
	samples, err := e.cfg.Int("samples", ctx.Config.Samples())
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	defWidth, defHeight := ctx.Config.PlotSize()
	width, err := e.cfg.Int("width", defWidth)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	height, err := e.cfg.Int("height", defHeight)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}

	pts, err := plot.Sample(f, a, b, samples)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	rendered, err := plot.Render(pts, width, height)
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	plotName := fmt.Sprintf("%s-%s.txt", exerciseID, e.now().UTC().Format("20060102-150405"))
	plotPath := filepath.Join(ctx.Config.PlotsDir(), plotName)
	if err := os.MkdirAll(ctx.Config.PlotsDir(), 0o755); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	if err := os.WriteFile(plotPath, []byte(rendered), 0o644); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}
	dataName := strings.TrimSuffix(plotName, ".txt") + ".tsv"
	dataPath := filepath.Join(ctx.Config.PlotsDir(), dataName)
	if err := points.WriteFile(dataPath, pts); err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, fmt.Errorf("%s: %w", exerciseID, err)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "# Plot\n\n")
	fmt.Fprintf(&body, "f = %s on [%s, %s], %d samples\n\n", spec,
		vector.FormatComponent(a), vector.FormatComponent(b), samples)
	fmt.Fprintf(&body, "```\n%s\n```\n\n", rendered)
	fmt.Fprintf(&body, "- Plot file: %s\n- Sampled data: %s\n", plotPath, dataPath)

	notes := map[string]string{"f": spec, "a": vector.FormatComponent(a), "b": vector.FormatComponent(b)}
	reportPath, err := ctx.Reports.Write(exerciseID, exerciseVersion, notes, []byte(body.String()))
	if err != nil {
		return exercise.Result{Status: exercise.StatusFailed}, err
	}
	ctx.Logbook.Info("%s: plotted %s on [%v, %v] to %s", exerciseID, spec, a, b, plotPath)
	return exercise.Result{
		Status:     exercise.StatusCompleted,
		Message:    fmt.Sprintf("plot written to %s", plotPath),
		ReportPath: reportPath,
	}, nil
}

// Examples reproduces the worked values this exercise was checked against.
func (e *PlotFn) Examples() []check.Example {
	return []check.Example{
		{
			Name: "sampling hits both endpoints exactly",
			Run: func() error {
				pts, err := plot.Sample(func(x float64) float64 { return x * x }, -2, 2, 4)
				if err != nil {
					return err
				}
				if len(pts) != 5 {
					return fmt.Errorf("got %d samples, want 5", len(pts))
				}
				if pts[0].X != -2 || pts[4].X != 2 {
					return fmt.Errorf("endpoints = %v, %v", pts[0].X, pts[4].X)
				}
				return check.Close("f(2)", pts[4].Y, 4, 0)
			},
		},
		{
			Name: "render keeps the requested size",
			Run: func() error {
				pts, err := plot.Sample(math.Sin, 0, 2*math.Pi, 100)
				if err != nil {
					return err
				}
				rendered, err := plot.Render(pts, 40, 12)
				if err != nil {
					return err
				}
				lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
				if len(lines) != 12 {
					return fmt.Errorf("got %d rows, want 12", len(lines))
				}
				return nil
			},
		},
	}
}
