package exercises

import (
	"calcpad/internal/exercise"
	"calcpad/internal/exercises/cross_product"
	"calcpad/internal/exercises/derivative"
	"calcpad/internal/exercises/integral"
	"calcpad/internal/exercises/interpolation"
	"calcpad/internal/exercises/least_squares"
	"calcpad/internal/exercises/plot_fn"
	"calcpad/internal/exercises/row_reduce"
	"calcpad/internal/exercises/slopes"
)

// RegisterBuiltins installs all of the built-in exercise factories into the
// provided registry.
func RegisterBuiltins(reg *exercise.Registry) {
	if reg == nil {
		return
	}
	cross_product.Register(reg)
	derivative.Register(reg)
	integral.Register(reg)
	interpolation.Register(reg)
	least_squares.Register(reg)
	plot_fn.Register(reg)
	row_reduce.Register(reg)
	slopes.Register(reg)
}
