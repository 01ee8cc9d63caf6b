package hampath

// HasEdge reports whether the undirected edge {tail, head} joins two
// consecutive points of p. Paths have no closing edge, so p[0] and
// p[len(p)−1] are not adjacent.
//
// HasEdge is a pure predicate over the sequence as given: it performs no
// contract checks, so it can be asked about any candidate edge, including
// labels absent from p (the answer is then false).
//
// Complexity: O(n) time, O(1) space.
func HasEdge(tail, head int, p Path) bool {
	for i := 0; i+1 < len(p); i++ {
		if (p[i] == tail && p[i+1] == head) || (p[i] == head && p[i+1] == tail) {
			return true
		}
	}

	return false
}

// Disjoint reports whether a and b share no edge. Both paths must satisfy
// Validate and cover the same point count (ErrLengthMismatch otherwise).
// For valid inputs the relation is symmetric: Disjoint(a,b) == Disjoint(b,a).
//
// Complexity: O(n²) time; each of the n−1 edges of a is scanned for in b.
func Disjoint(a, b Path) (bool, error) {
	if err := Validate(a); err != nil {
		return false, err
	}
	if err := Validate(b); err != nil {
		return false, err
	}
	if len(a) != len(b) {
		return false, ErrLengthMismatch
	}

	return disjoint(a, b), nil
}

// disjoint is the unchecked core: true iff no consecutive pair of a occurs
// (in either order) as a consecutive pair of b. First shared edge wins.
func disjoint(a, b []int) bool {
	for i := 0; i+1 < len(a); i++ {
		if HasEdge(a[i], a[i+1], b) {
			return false
		}
	}

	return true
}
