package internal

// Epsilon is the tolerance for area comparisons in tests and validation.
// The clipping predicates themselves are strict sign tests and never use
// it: a zero cross product means "not convex" and a zero shoelace sum means
// "not clockwise", exactly.
const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values, so it is safe for i-1 at the start of a scan.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
