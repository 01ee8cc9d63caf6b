package hamcycle

import "github.com/katalvlaran/hamlet/permute"

// Enumerate returns every canonical Hamiltonian cycle on n points: the first
// element is pinned at 1, the remaining positions step through all (n−1)!
// arrangements of [2..n] in lexicographic order, and an arrangement is kept
// only when its last element exceeds its second. That single comparison
// drops exactly one of the two orientations of each undirected cycle, so
// (n−1)!/2 cycles come back, each a fresh slice.
//
// n < 3 yields ErrTooShort. There is no upper guard: the caller owns the
// factorial budget.
//
// Complexity: Θ((n−1)!·n) time, Θ((n−1)!/2·n) space for the kept cycles.
func Enumerate(n int) ([]Cycle, error) {
	if n < 3 {
		return nil, ErrTooShort
	}

	cycles := make([]Cycle, 0, capHint(n-1)/2)

	c := permute.Identity(n)
	for {
		// Keep one orientation per undirected cycle.
		if c[n-1] > c[1] {
			cycles = append(cycles, permute.Clone(c))
		}
		if !permute.Next(c[1:]) {
			break
		}
	}

	return cycles, nil
}

// capHint sizes the enumeration result. The hint saturates at 12! so an
// oversized n does not demand one absurd allocation before the sweep even
// starts.
func capHint(k int) int {
	if k > 12 {
		k = 12
	}

	return permute.Factorial(k)
}
