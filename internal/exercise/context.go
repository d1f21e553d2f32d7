package exercise

import (
	"fmt"
	"path/filepath"

	"calcpad/internal/config"
	"calcpad/internal/logbook"
	"calcpad/internal/report"
)

// Context carries shared runtime dependencies into every exercise run.
type Context struct {
	Config  *config.Config
	Logbook *logbook.Logbook
	Reports *report.Store
	// Origin records which front end triggered the run.
	Origin string
}

// NewContext builds a Context with a report store rooted in the project's
// reports directory.
func NewContext(cfg *config.Config, lb *logbook.Logbook) *Context {
	return &Context{
		Config:  cfg,
		Logbook: lb,
		Reports: report.NewStore(cfg.ReportsDir()),
	}
}

// WithOrigin records which front end invoked the exercise.
func (ctx *Context) WithOrigin(name string) *Context {
	clone := *ctx
	clone.Origin = name
	return &clone
}

// Validate confirms the context can support a run.
func (ctx *Context) Validate(exerciseID string) error {
	if ctx == nil {
		return fmt.Errorf("exercise %s: context is nil", exerciseID)
	}
	if ctx.Config == nil {
		return fmt.Errorf("exercise %s: context missing config", exerciseID)
	}
	if ctx.Reports == nil {
		return fmt.Errorf("exercise %s: context missing report store", exerciseID)
	}
	return nil
}

// ResolveDataPath expands a data file reference relative to the project's
// data directory unless it is already absolute.
func (ctx *Context) ResolveDataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ctx.Config.DataDir(), name)
}
