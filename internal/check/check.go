// Package check runs the worked examples embedded in each exercise, the
// way the original scripts carried their expected values inline with the
// code that computed them.
package check

import (
	"fmt"
	"math"
)

// Example is a single self-check: a named closure that recomputes a known
// result and compares it to the value written down in the exercise.
type Example struct {
	Name string
	Run  func() error
}

// Provider is implemented by exercises that carry embedded examples.
type Provider interface {
	Examples() []Example
}

// Failure pairs an example name with what went wrong.
type Failure struct {
	Example string
	Err     error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.Example, f.Err)
}

// RunAll executes every example and collects the failures. A nil return
// means everything checked out.
func RunAll(examples []Example) []Failure {
	var failures []Failure
	for _, ex := range examples {
		if ex.Run == nil {
			failures = append(failures, Failure{Example: ex.Name, Err: fmt.Errorf("example has no body")})
			continue
		}
		if err := ex.Run(); err != nil {
			failures = append(failures, Failure{Example: ex.Name, Err: err})
		}
	}
	return failures
}

// Close compares a computed value against the expected one within tol.
func Close(label string, got, want, tol float64) error {
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		return fmt.Errorf("%s = %v, want %v (tolerance %v)", label, got, want, tol)
	}
	return nil
}

// CloseSlice compares two float slices elementwise within tol.
func CloseSlice(label string, got, want []float64, tol float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("%s has %d values, want %d", label, len(got), len(want))
	}
	for i := range want {
		if err := Close(fmt.Sprintf("%s[%d]", label, i), got[i], want[i], tol); err != nil {
			return err
		}
	}
	return nil
}
