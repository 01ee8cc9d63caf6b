package hampath

import "errors"

// Path is a Hamiltonian path over points 1..n on a line: a permutation of
// [1..n] whose first element is 1 and last element is n. Fixing the endpoints
// picks one representative per undirected path, so a path and its reverse are
// never both admissible.
type Path []int

var (
	// ErrTooShort is returned when a path covers fewer than two points.
	ErrTooShort = errors.New("hampath: path needs at least two points")

	// ErrNotPermutation is returned when the labels do not form a
	// permutation of 1..n.
	ErrNotPermutation = errors.New("hampath: labels are not a permutation of 1..n")

	// ErrBadEndpoints is returned when a path does not run from 1 to n.
	ErrBadEndpoints = errors.New("hampath: path must start at 1 and end at n")

	// ErrLengthMismatch is returned when two paths cover different point
	// counts.
	ErrLengthMismatch = errors.New("hampath: paths cover different point counts")

	// ErrBadBound is returned when a cost bound is NaN.
	ErrBadBound = errors.New("hampath: bound is not a number")
)
