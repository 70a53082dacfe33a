package mandelsurf

import "testing"

// TestEscapeIterOutsideDisk checks that any c outside the radius-2 disk
// escapes at the very first test, before any update.
func TestEscapeIterOutsideDisk(t *testing.T) {
	for _, c := range []complex128{3, -3, complex(0, 2.5), complex(2, 2), complex(-1.5, -1.5)} {
		if got := EscapeIter(c, 50); got != 0 {
			t.Fatalf("EscapeIter(%v, 50): expected 0, got %d", c, got)
		}
	}
}

// TestEscapeIterBoundedOrbits checks known members of the set: the origin is
// a fixed point and -1 cycles with period 2.
func TestEscapeIterBoundedOrbits(t *testing.T) {
	for _, maxIter := range []int{1, 50, 1000} {
		if got := EscapeIter(0, maxIter); got != maxIter {
			t.Fatalf("EscapeIter(0, %d): expected %d, got %d", maxIter, maxIter, got)
		}
		if got := EscapeIter(-1, maxIter); got != maxIter {
			t.Fatalf("EscapeIter(-1, %d): expected %d, got %d", maxIter, maxIter, got)
		}
	}
}

// TestEscapeIterBoundary pins the escape index of c = 1. The orbit is
// 1, 2, 5, ...: |1| and |2| do not strictly exceed 2, |5| does, so the escape
// is detected at the third test, index 2. An off-by-one in the check-before-
// update order would move this value.
func TestEscapeIterBoundary(t *testing.T) {
	if got := EscapeIter(1, 50); got != 2 {
		t.Fatalf("EscapeIter(1, 50): expected 2, got %d", got)
	}
}

// TestEscapeIterDegenerateMaxIter ensures maxIter ≤ 0 is accepted and yields
// 0 for every input rather than failing.
func TestEscapeIterDegenerateMaxIter(t *testing.T) {
	for _, c := range []complex128{0, 1, 3, complex(-0.5, 0.6)} {
		if got := EscapeIter(c, 0); got != 0 {
			t.Fatalf("EscapeIter(%v, 0): expected 0, got %d", c, got)
		}
		if got := EscapeIter(c, -3); got != 0 {
			t.Fatalf("EscapeIter(%v, -3): expected 0, got %d", c, got)
		}
	}
}

// TestEscapeIterThresholdExclusive ensures |z| exactly equal to 2 does not
// count as escaped; the test is strict.
func TestEscapeIterThresholdExclusive(t *testing.T) {
	// c = -2 stays at |z| = 2 forever: z = -2, 2, 2, 2, ...
	if got := EscapeIter(-2, 50); got != 50 {
		t.Fatalf("EscapeIter(-2, 50): expected 50, got %d", got)
	}
}
