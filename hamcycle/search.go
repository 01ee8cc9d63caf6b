// Package hamcycle — pairwise existence searches.
//
// Both searches enumerate the canonical set once, then scan ordered pairs
// (i, j) with i < j, stopping at the first qualifying pair. The scan order
// is fixed by the lexicographic enumeration, so results and short-circuit
// points are identical across runs.
package hamcycle

import "math"

// DisjointPairExists reports whether some pair of distinct canonical cycles
// on n points is edge-disjoint, closing edges included. No depth filter
// applies here. n < 3 yields ErrTooShort.
//
// Complexity: O(((n−1)!/2)²) disjointness tests in the worst (negative)
// case.
func DisjointPairExists(n int) (bool, error) {
	cycles, err := Enumerate(n)
	if err != nil {
		return false, err
	}

	var i, j int
	for i = 0; i < len(cycles); i++ {
		for j = i + 1; j < len(cycles); j++ {
			if disjoint(cycles[i], cycles[j]) {
				return true, nil
			}
		}
	}

	return false, nil
}

// DisjointPairExistsWithinBound reports whether some pair of distinct
// canonical cycles on n points is edge-disjoint, with BOTH cycles in the
// odd depth class and the combined cost strictly below bound. The depth
// restriction is part of this operation: the bounded question is only ever
// asked of odd-depth tours.
//
// A NaN bound yields ErrBadBound; n < 3 yields ErrTooShort.
//
// Depth, cost and disjointness are all pure per-cycle or per-pair
// predicates, so the per-cycle ones are computed once up front and the
// cheap filters run before the O(n²) disjointness scan without changing
// the outcome.
//
// Complexity: O(((n−1)!/2)²) pair filters in the worst case.
func DisjointPairExistsWithinBound(n int, bound float64) (bool, error) {
	if math.IsNaN(bound) {
		return false, ErrBadBound
	}

	cycles, err := Enumerate(n)
	if err != nil {
		return false, err
	}

	// Depth class and cost are fixed per cycle; compute each once.
	var (
		odd   = make([]bool, len(cycles))
		costs = make([]int, len(cycles))
	)
	for k := range cycles {
		odd[k] = isOddDepth(cycles[k])
		costs[k] = cycleCost(cycles[k])
	}

	var i, j int
	for i = 0; i < len(cycles); i++ {
		if !odd[i] {
			continue
		}
		for j = i + 1; j < len(cycles); j++ {
			if !odd[j] {
				continue
			}
			if float64(costs[i]+costs[j]) < bound && disjoint(cycles[i], cycles[j]) {
				return true, nil
			}
		}
	}

	return false, nil
}
