// Package hampath — pairwise existence searches.
//
// Both searches enumerate the canonical set once, then scan ordered pairs
// (i, j) with i < j, stopping at the first qualifying pair. The scan order
// is fixed by the lexicographic enumeration, so results and short-circuit
// points are identical across runs.
package hampath

import "math"

// DisjointPairExists reports whether some pair of distinct canonical paths
// on n points is edge-disjoint. n < 2 yields ErrTooShort.
//
// Complexity: O((n−2)!²) disjointness tests in the worst (negative) case.
func DisjointPairExists(n int) (bool, error) {
	paths, err := Enumerate(n)
	if err != nil {
		return false, err
	}

	var i, j int
	for i = 0; i < len(paths); i++ {
		for j = i + 1; j < len(paths); j++ {
			if disjoint(paths[i], paths[j]) {
				return true, nil
			}
		}
	}

	return false, nil
}

// DisjointPairExistsWithinBound reports whether some pair of distinct
// canonical paths on n points is edge-disjoint with combined cost strictly
// below bound. A NaN bound yields ErrBadBound; n < 2 yields ErrTooShort.
//
// Both pair predicates are pure, so the cached-cost filter runs before the
// O(n²) disjointness scan without changing the outcome.
//
// Complexity: O((n−2)!²) pair filters in the worst case.
func DisjointPairExistsWithinBound(n int, bound float64) (bool, error) {
	if math.IsNaN(bound) {
		return false, ErrBadBound
	}

	paths, err := Enumerate(n)
	if err != nil {
		return false, err
	}

	// A path's cost never changes; compute each one once.
	costs := make([]int, len(paths))
	for k := range paths {
		costs[k] = pathCost(paths[k])
	}

	var i, j int
	for i = 0; i < len(paths); i++ {
		for j = i + 1; j < len(paths); j++ {
			if float64(costs[i]+costs[j]) < bound && disjoint(paths[i], paths[j]) {
				return true, nil
			}
		}
	}

	return false, nil
}
