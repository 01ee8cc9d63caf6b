package hamcycle

import "errors"

// Cycle is a Hamiltonian cycle over points 1..n on a circle: a permutation
// of [1..n] starting at 1, with an implicit closing edge from the last
// element back to 1. The canonical representative of an undirected cycle
// additionally has its second element smaller than its last, which is how
// Enumerate collapses the two orientations; the other operations accept
// either orientation.
type Cycle []int

var (
	// ErrTooShort is returned when a cycle covers fewer than three points.
	ErrTooShort = errors.New("hamcycle: cycle needs at least three points")

	// ErrNotPermutation is returned when the labels do not form a
	// permutation of 1..n.
	ErrNotPermutation = errors.New("hamcycle: labels are not a permutation of 1..n")

	// ErrBadStart is returned when a cycle does not start at 1.
	ErrBadStart = errors.New("hamcycle: cycle must start at 1")

	// ErrLengthMismatch is returned when two cycles cover different point
	// counts.
	ErrLengthMismatch = errors.New("hamcycle: cycles cover different point counts")

	// ErrBadBound is returned when a cost bound is NaN.
	ErrBadBound = errors.New("hamcycle: bound is not a number")
)
