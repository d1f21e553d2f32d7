// Package calculus approximates derivatives and definite integrals of a
// function by finite differences and Newton-Cotes rules.
package calculus

import (
	"fmt"

	"calcpad/internal/fn"
)

// DefaultStep is the finite-difference step used when the caller has no
// opinion. Near the rounding/truncation sweet spot for central
// differences on values of modest magnitude.
const DefaultStep = 1e-6

// Derivative approximates f'(x) by the central difference with the
// default step.
func Derivative(f fn.Func, x float64) float64 {
	d, _ := DerivativeStep(f, x, DefaultStep)
	return d
}

// DerivativeStep approximates f'(x) by the central difference
// (f(x+h) - f(x-h)) / 2h.
func DerivativeStep(f fn.Func, x, h float64) (float64, error) {
	if h <= 0 {
		return 0, fmt.Errorf("calculus: step must be positive, got %v", h)
	}
	return (f(x+h) - f(x-h)) / (2 * h), nil
}

// ForwardDerivative approximates f'(x) by the one-sided difference
// (f(x+h) - f(x)) / h. Less accurate than the central form but usable at
// the left edge of a domain.
func ForwardDerivative(f fn.Func, x, h float64) (float64, error) {
	if h <= 0 {
		return 0, fmt.Errorf("calculus: step must be positive, got %v", h)
	}
	return (f(x+h) - f(x)) / h, nil
}

// SecondDerivative approximates f''(x) by the symmetric second difference
// (f(x+h) - 2f(x) + f(x-h)) / h².
func SecondDerivative(f fn.Func, x, h float64) (float64, error) {
	if h <= 0 {
		return 0, fmt.Errorf("calculus: step must be positive, got %v", h)
	}
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h), nil
}

func checkPanels(n int) error {
	if n < 1 {
		return fmt.Errorf("calculus: need at least 1 panel, got %d", n)
	}
	return nil
}

// Trapezoid approximates the integral of f over [a, b] with n trapezoids.
func Trapezoid(f fn.Func, a, b float64, n int) (float64, error) {
	if err := checkPanels(n); err != nil {
		return 0, err
	}
	h := (b - a) / float64(n)
	sum := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	return sum * h, nil
}

// Midpoint approximates the integral of f over [a, b] by sampling the
// midpoint of each of n panels.
func Midpoint(f fn.Func, a, b float64, n int) (float64, error) {
	if err := checkPanels(n); err != nil {
		return 0, err
	}
	h := (b - a) / float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}
	return sum * h, nil
}

// Simpson approximates the integral of f over [a, b] with Simpson's rule.
// The rule needs an even panel count; odd n is promoted to n+1.
func Simpson(f fn.Func, a, b float64, n int) (float64, error) {
	if err := checkPanels(n); err != nil {
		return 0, err
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3, nil
}
