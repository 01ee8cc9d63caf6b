package permute

// Identity returns the ascending sequence [1, 2, …, n], the lexicographic
// minimum over which Next iterates. Identity(0) returns an empty slice.
//
// Complexity: O(n) time, one allocation.
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i + 1
	}
	return p
}

// Next advances p to its lexicographic successor in place and reports true.
// When p is already the last arrangement (strictly descending), Next restores
// ascending order and reports false, so the caller may immediately begin
// another sweep.
//
// Contract:
//   - duplicates are honored: each distinct multiset arrangement is visited
//     once, per the classical next-permutation algorithm.
//   - len(p) ≤ 1 reports false (exactly one arrangement exists).
//
// Complexity: O(len(p)) worst case, amortized O(1) over a full sweep.
func Next(p []int) bool {
	// Stage 1: locate the rightmost ascent p[i] < p[i+1].
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		reverse(p) // wrapped past the last arrangement; restore ascending order
		return false
	}

	// Stage 2: locate the rightmost element exceeding the pivot.
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}

	// Stage 3: swap pivot with its successor, then flip the tail.
	p[i], p[j] = p[j], p[i]
	reverse(p[i+1:])

	return true
}

// Factorial returns n! with Factorial(0) = 1 and Factorial(k) = 1 for k < 0.
// The result overflows a 64-bit int beyond n = 20; enumeration callers stay
// far below that.
//
// Complexity: O(n).
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// Clone returns an independent copy of p. The clone of a nil or empty slice
// is nil.
func Clone(p []int) []int {
	return append([]int(nil), p...)
}

// reverse flips p in place.
func reverse(p []int) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
