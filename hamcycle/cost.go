package hamcycle

import "math"

// Cost returns the total length of c under the circle metric: for every
// edge, including the closing one, the shorter arc min(d, n−d) with
// d = |a−b| is charged.
//
// Contract: c must satisfy Validate; the matching sentinel is returned
// otherwise.
//
// Complexity: O(n) time, O(n) space (validation marker).
func Cost(c Cycle) (int, error) {
	if err := Validate(c); err != nil {
		return 0, err
	}

	return cycleCost(c), nil
}

// WithinBound reports whether Cost(a) + Cost(b) < bound, strictly. A NaN
// bound yields ErrBadBound; ±Inf bounds are legal (−Inf admits nothing,
// +Inf everything).
//
// Complexity: O(n) time.
func WithinBound(a, b Cycle, bound float64) (bool, error) {
	if math.IsNaN(bound) {
		return false, ErrBadBound
	}
	if err := Validate(a); err != nil {
		return false, err
	}
	if err := Validate(b); err != nil {
		return false, err
	}

	return float64(cycleCost(a)+cycleCost(b)) < bound, nil
}

// cycleCost is the unchecked accumulation core shared by the exported
// operations and the pair searches. The closing edge c[n−1]→c[0] is charged
// like any other.
func cycleCost(c []int) int {
	var (
		n   = len(c)
		sum int
		d   int
		i   int
	)
	for i = 0; i+1 < n; i++ {
		d = abs(c[i] - c[i+1])
		sum += minArc(d, n)
	}
	d = abs(c[n-1] - c[0])
	sum += minArc(d, n)

	return sum
}

// minArc returns the shorter of the two arcs a span d cuts from a circle of
// n points.
func minArc(d, n int) int {
	if n-d < d {
		return n - d
	}

	return d
}

// abs returns |x| for int without the float64 round-trip.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
