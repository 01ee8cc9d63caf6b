package hampath

import "github.com/katalvlaran/hamlet/permute"

// Enumerate returns every canonical Hamiltonian path on n points, in
// lexicographic order of the interior: the endpoints are pinned (1 first,
// n last) while the interior positions step through all (n−2)! arrangements
// of [2..n−1]. Each returned Path is a fresh slice.
//
// n < 2 yields ErrTooShort. There is no upper guard: the result holds
// (n−2)! slices of length n and the caller owns that budget.
//
// Complexity: Θ((n−2)!·n) time and space.
func Enumerate(n int) ([]Path, error) {
	if n < 2 {
		return nil, ErrTooShort
	}

	paths := make([]Path, 0, capHint(n-2))

	p := permute.Identity(n)
	for {
		paths = append(paths, permute.Clone(p))
		if !permute.Next(p[1 : n-1]) {
			break
		}
	}

	return paths, nil
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
