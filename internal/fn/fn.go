// Package fn turns user-supplied Go source into callable functions of one
// real variable. Expressions and files are interpreted with yaegi so an
// exercise can plot or integrate any f(x) written on the command line
// without recompiling.
package fn

import (
	"fmt"
	"os"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// fileFuncName is the symbol a function file must export.
const fileFuncName = "F"

// Func is a real-valued function of one real variable.
type Func func(float64) float64

func newInterpreter() (*interp.Interpreter, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("fn: load stdlib symbols: %w", err)
	}
	return i, nil
}

// Compile interprets a Go expression in the variable x, with the math
// package in scope, e.g. "x*x - 2" or "math.Sin(x)/x".
func Compile(expr string) (Func, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, fmt.Errorf("fn: expression is empty")
	}
	i, err := newInterpreter()
	if err != nil {
		return nil, err
	}
	if _, err := i.Eval(`import "math"`); err != nil {
		return nil, fmt.Errorf("fn: import math: %w", err)
	}
	// Evaluating a bare func literal hands back a *interface{}, so bind
	// the function to a name and look the name up instead.
	if _, err := i.Eval(fmt.Sprintf("f := func(x float64) float64 { return %s }", trimmed)); err != nil {
		return nil, fmt.Errorf("fn: interpret %q: %w", trimmed, err)
	}
	v, err := i.Eval("f")
	if err != nil {
		return nil, fmt.Errorf("fn: interpret %q: %w", trimmed, err)
	}
	f, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("fn: %q does not evaluate to a float64", trimmed)
	}
	return f, nil
}

// LoadFile interprets a Go source file that must define
// F(x float64) float64 and returns that function.
func LoadFile(path string) (Func, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fn: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("fn: %s is empty", path)
	}
	i, err := newInterpreter()
	if err != nil {
		return nil, err
	}
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("fn: interpret %s: %w", path, err)
	}
	v, err := i.Eval(fileFuncName)
	if err != nil {
		return nil, fmt.Errorf("fn: %s must define %s(x float64) float64: %w", path, fileFuncName, err)
	}
	f, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("fn: %s in %s has the wrong signature", fileFuncName, path)
	}
	return f, nil
}
