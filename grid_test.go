package mandelsurf

import (
	"errors"
	"testing"
)

// TestBuildGridCorners ensures the sampling spans both plane endpoints
// inclusively.
func TestBuildGridCorners(t *testing.T) {
	g, err := BuildGrid(FullView, 400, 400)
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}
	if g.Width() != 400 || g.Height() != 400 {
		t.Fatalf("expected 400x400 grid, got %dx%d", g.Width(), g.Height())
	}
	if got := g.At(0, 0); got != complex(-2, -2) {
		t.Fatalf("expected corner (0,0) = (-2,-2), got %v", got)
	}
	if got := g.At(399, 399); got != complex(2, 2) {
		t.Fatalf("expected corner (399,399) = (2,2), got %v", got)
	}
}

// TestBuildGridUniformSpacing checks the linear interpolation between the
// interval endpoints.
func TestBuildGridUniformSpacing(t *testing.T) {
	g, err := BuildGrid(Plane{Xmin: 0, Xmax: 1, Ymin: -1, Ymax: 1}, 5, 3)
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}
	wantXs := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, want := range wantXs {
		if g.Xs[i] != want {
			t.Fatalf("Xs[%d]: expected %v, got %v", i, want, g.Xs[i])
		}
	}
	wantYs := []float64{-1, 0, 1}
	for j, want := range wantYs {
		if g.Ys[j] != want {
			t.Fatalf("Ys[%d]: expected %v, got %v", j, want, g.Ys[j])
		}
	}
}

// TestBuildGridSinglePoint covers the degenerate 1x1 grid, which collapses to
// the lower-left corner of the plane.
func TestBuildGridSinglePoint(t *testing.T) {
	g, err := BuildGrid(FullView, 1, 1)
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}
	if got := g.At(0, 0); got != complex(-2, -2) {
		t.Fatalf("expected single point (-2,-2), got %v", got)
	}
}

// TestBuildGridInvalidDimensions ensures non-positive dimensions fail fast
// with the sentinel error.
func TestBuildGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 400}, {400, 0}, {-1, 400}, {400, -1}, {0, 0}} {
		_, err := BuildGrid(FullView, dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("dims %v: expected ErrInvalidDimension, got %v", dims, err)
		}
	}
}
