package hamcycle

// IsOddDepth reports whether c falls in the odd depth class.
//
// Walking the tour from point 1, every edge either stays on the short arc
// between its endpoints (direct) or takes the long way around (wrapping):
// with d = |a−b|, the edge wraps iff d > n−d, so a half-circle chord
// (d == n−d) is not a wrap. The depth counter advances on:
//
//   - the opening edge c[0]→c[1], when it does not wrap (half-circle
//     chords advance it here);
//   - every later consecutive edge, when it wraps (half-circle chords do
//     not);
//   - the closing edge c[n−1]→c[0], when it is strictly direct, d < n−d
//     (half-circle chords do not).
//
// The class is the parity of the final counter. The half-circle rules are a
// fixed convention that keeps the classification total and deterministic; in
// particular a tour opening with a half-circle chord picks up the opening
// count.
//
// Contract: c must satisfy Validate; the matching sentinel is returned
// otherwise. Both orientations of the same undirected cycle are accepted.
//
// Complexity: O(n) time, O(n) space (validation marker).
func IsOddDepth(c Cycle) (bool, error) {
	if err := Validate(c); err != nil {
		return false, err
	}

	return isOddDepth(c), nil
}

// isOddDepth is the unchecked classifier core shared by the exported
// operation and the bounded pair search.
func isOddDepth(c []int) bool {
	var (
		n     = len(c)
		depth int
		diff  int
		wraps bool
		i     int
	)
	for i = 0; i+1 < n; i++ {
		diff = abs(c[i] - c[i+1])
		wraps = diff > n-diff

		if i == 0 {
			if !wraps {
				depth++
			}
			continue
		}
		if wraps {
			depth++
		}
	}

	// Closing edge: strictly direct spans only.
	diff = abs(c[n-1] - c[0])
	if diff < n-diff {
		depth++
	}

	return depth%2 == 1
}
