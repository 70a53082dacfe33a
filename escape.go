package mandelsurf

// EscapeIter runs the Mandelbrot recurrence z₀ = c, z = z² + c and returns
// the first iteration index n < maxIter at which |z| exceeds 2, or maxIter if
// the orbit stays bounded that long. The escape test runs before each update,
// so any c with |c| > 2 yields 0. Once |z| > 2 the orbit provably diverges,
// which is what makes the early exit sound.
//
// maxIter ≤ 0 is accepted and yields 0 for every input.
func EscapeIter(c complex128, maxIter int) int {
	z := c
	for n := 0; n < maxIter; n++ {
		// |z|² > 4 avoids the square root; same threshold as |z| > 2.
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return n
		}
		z = z*z + c
	}
	if maxIter < 0 {
		return 0
	}
	return maxIter
}
