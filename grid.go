package mandelsurf

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a grid dimension is not positive.
var ErrInvalidDimension = errors.New("grid dimension must be positive")

// Grid is a uniform sampling of a Plane: Xs spans [Xmin, Xmax] and Ys spans
// [Ymin, Ymax], both endpoint-inclusive. Grids are immutable once built.
type Grid struct {
	Plane Plane
	Xs    []float64 // len == Width
	Ys    []float64 // len == Height
}

// BuildGrid samples plane p on a width×height lattice.
func BuildGrid(p Plane, width, height int) (*Grid, error) {
	if width < 1 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidDimension)
	}
	if height < 1 {
		return nil, fmt.Errorf("height %d: %w", height, ErrInvalidDimension)
	}
	return &Grid{
		Plane: p,
		Xs:    linspace(p.Xmin, p.Xmax, width),
		Ys:    linspace(p.Ymin, p.Ymax, height),
	}, nil
}

// Width returns the number of samples along the real axis.
func (g *Grid) Width() int { return len(g.Xs) }

// Height returns the number of samples along the imaginary axis.
func (g *Grid) Height() int { return len(g.Ys) }

// At returns the complex sample at grid index (i, j).
func (g *Grid) At(i, j int) complex128 {
	return complex(g.Xs[i], g.Ys[j])
}

// linspace returns n evenly spaced values from min to max inclusive.
// n == 1 degenerates to the single value min.
func linspace(min, max float64, n int) []float64 {
	vs := make([]float64, n)
	if n == 1 {
		vs[0] = min
		return vs
	}
	step := (max - min) / float64(n-1)
	for i := range vs {
		vs[i] = min + float64(i)*step
	}
	vs[n-1] = max // do not let rounding drift off the endpoint
	return vs
}
