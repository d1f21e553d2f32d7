// Package exercise defines the runtime unit behind both front ends: an
// exercise is one standalone numeric computation with an identity, a
// configuration, and a Run that produces a report. Exercises share no
// state with each other.
package exercise

import "fmt"

// Info describes an exercise's identity and intent.
type Info struct {
	ID          string
	Name        string
	Description string
	Version     string
}

// Validate ensures the info block is well-formed.
func (i Info) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("exercise: id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("exercise: name is required for %s", i.ID)
	}
	if i.Version == "" {
		return fmt.Errorf("exercise: version is required for %s", i.ID)
	}
	return nil
}

// Result captures the outcome of an exercise run.
type Result struct {
	Status  Status
	Message string
	// ReportPath points at the written report, when the run produced one.
	ReportPath string
}

// Status enumerates run outcomes.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusNeedsInput Status = "needs-input"
	StatusFailed     Status = "failed"
)

// Exercise is implemented by every runnable unit.
type Exercise interface {
	Info() Info
	Run(ctx *Context) (Result, error)
}

// Base provides common identity plumbing for exercises.
type Base struct {
	info Info
}

// NewBase seeds the helper with exercise info.
func NewBase(info Info) Base {
	return Base{info: info}
}

// Info implements Exercise.Info.
func (b *Base) Info() Info {
	return b.info
}
