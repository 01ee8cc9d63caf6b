package hampath

import "math"

// Cost returns the total length of p under the line metric: the sum of
// |p[i]−p[i+1]| over consecutive points. A path has no closing edge.
//
// Contract: p must satisfy Validate; the matching sentinel is returned
// otherwise.
//
// Complexity: O(n) time, O(n) space (validation marker).
func Cost(p Path) (int, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}

	return pathCost(p), nil
}

// WithinBound reports whether Cost(a) + Cost(b) < bound, strictly. A NaN
// bound yields ErrBadBound; ±Inf bounds are legal (−Inf admits nothing,
// +Inf everything).
//
// Complexity: O(n) time.
func WithinBound(a, b Path, bound float64) (bool, error) {
	if math.IsNaN(bound) {
		return false, ErrBadBound
	}
	if err := Validate(a); err != nil {
		return false, err
	}
	if err := Validate(b); err != nil {
		return false, err
	}

	return float64(pathCost(a)+pathCost(b)) < bound, nil
}

// pathCost is the unchecked accumulation core shared by the exported
// operations and the pair searches, which feed it enumerated paths that
// hold the contract by construction.
func pathCost(p []int) int {
	var (
		sum int
		i   int
	)
	for i = 0; i+1 < len(p); i++ {
		sum += abs(p[i] - p[i+1])
	}

	return sum
}

// abs returns |x| for int without the float64 round-trip.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
