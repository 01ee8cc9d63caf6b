// Package hampath — contract validation.
//
// Validation is staged cheapest-first: length, endpoints, then the O(n)
// permutation scan. Exported operations validate every input; the
// enumeration-driven searches skip re-validation for paths they built
// themselves.
package hampath

// Validate checks the full Path contract:
//
//	len(p) ≥ 2, p[0] == 1, p[len(p)−1] == n,
//	and p is a permutation of [1..n].
//
// Returns nil when p is admissible, otherwise the first violated sentinel
// (ErrTooShort, ErrBadEndpoints, ErrNotPermutation).
//
// Complexity: O(n) time, O(n) space for the marker slice.
func Validate(p Path) error {
	// Stage 1: length.
	n := len(p)
	if n < 2 {
		return ErrTooShort
	}

	// Stage 2: canonical endpoints.
	if p[0] != 1 || p[n-1] != n {
		return ErrBadEndpoints
	}

	// Stage 3: bijection over 1..n.
	seen := make([]bool, n+1) // index 0 unused; labels are 1-based

	var v int
	for _, v = range p {
		if v < 1 || v > n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}
