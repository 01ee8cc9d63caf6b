// Package hamcycle — contract validation.
//
// Validation is staged cheapest-first: length, start, then the O(n)
// permutation scan. Canonical orientation (second element < last) is not
// enforced here: cost, edge membership, disjointness and depth are
// well-defined on either orientation, and callers legitimately probe
// non-canonical tours. Enumerate alone owns canonicality.
package hamcycle

// Validate checks the Cycle contract:
//
//	len(c) ≥ 3, c[0] == 1, and c is a permutation of [1..n].
//
// Returns nil when c is admissible, otherwise the first violated sentinel
// (ErrTooShort, ErrBadStart, ErrNotPermutation).
//
// Complexity: O(n) time, O(n) space for the marker slice.
func Validate(c Cycle) error {
	// Stage 1: length.
	n := len(c)
	if n < 3 {
		return ErrTooShort
	}

	// Stage 2: anchored start.
	if c[0] != 1 {
		return ErrBadStart
	}

	// Stage 3: bijection over 1..n.
	seen := make([]bool, n+1) // index 0 unused; labels are 1-based

	var v int
	for _, v = range c {
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
