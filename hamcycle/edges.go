package hamcycle

// HasEdge reports whether the undirected edge {tail, head} occurs in c,
// either between consecutive points or as the closing edge joining c[0]
// and c[len(c)−1].
//
// HasEdge is a pure predicate over the sequence as given: it performs no
// contract checks, so any candidate edge may be probed, including labels
// absent from c (the answer is then false).
//
// Complexity: O(n) time, O(1) space.
func HasEdge(tail, head int, c Cycle) bool {
	if len(c) < 2 {
		return false
	}

	// Closing edge first: on a circle the wrap-around pair is an edge like
	// any other.
	var (
		first = c[0]
		last  = c[len(c)-1]
	)
	if (first == tail && last == head) || (first == head && last == tail) {
		return true
	}

	for i := 0; i+1 < len(c); i++ {
		if (c[i] == tail && c[i+1] == head) || (c[i] == head && c[i+1] == tail) {
			return true
		}
	}

	return false
}

// Disjoint reports whether a and b share no edge, closing edges included.
// Both cycles must satisfy Validate (in particular both start at 1) and
// cover the same point count (ErrLengthMismatch otherwise). For valid
// inputs the relation is symmetric.
//
// Complexity: O(n²) time; each of the n edges of a is scanned for in b.
func Disjoint(a, b Cycle) (bool, error) {
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

// disjoint is the unchecked core: the closing edge of a is probed first,
// then its consecutive edges in order. First shared edge wins.
func disjoint(a, b []int) bool {
	if HasEdge(a[0], a[len(a)-1], b) {
		return false
	}
	for i := 0; i+1 < len(a); i++ {
		if HasEdge(a[i], a[i+1], b) {
			return false
		}
	}

	return true
}
