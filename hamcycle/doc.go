// Package hamcycle enumerates and tests Hamiltonian cycles over n uniformly
// spaced points on a circle, labeled 1..n clockwise.
//
// 🚀 What is hamcycle?
//
//	An exhaustive, deterministic toolkit for small-n questions about closed
//	tours that visit every point exactly once: tour length under the circle
//	metric, shared edges between two tours, the odd/even depth class of a
//	tour, and whether an edge-disjoint pair of tours exists, optionally
//	odd-depth only and with combined length under a strict bound.
//
// ✨ Key features:
//   - canonical representatives: every cycle starts at 1 and keeps the
//     orientation with second element < last element, so each undirected
//     cycle appears exactly once among the (n−1)!/2 enumerated tours
//   - circle metric: an edge {a,b} costs min(|a−b|, n−|a−b|), the shorter
//     arc between the two points
//   - implicit closing edge from the last element back to 1
//   - odd-depth classification of a tour from its wrap pattern, with the
//     n/2 chord resolved by a fixed convention
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hamlet/hamcycle"
//
//	cost, err := hamcycle.Cost(hamcycle.Cycle{1, 3, 2, 5, 4}) // 8
//	odd, err := hamcycle.IsOddDepth(hamcycle.Cycle{1, 3, 4, 5, 6, 7, 8, 2})
//	ok, err := hamcycle.DisjointPairExists(5)                 // true
//
// Performance:
//
//   - Cost / IsOddDepth: O(n); Disjoint: O(n²)
//   - Enumerate: Θ((n−1)!/2) cycles, each of length n
//   - pair searches: O(((n−1)!/2)²) edge scans worst case
//
// The exhaustive operations are meant for n ≤ 11; nothing guards larger n,
// the caller owns that budget.
package hamcycle
