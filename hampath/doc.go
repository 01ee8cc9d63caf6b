// Package hampath enumerates and tests Hamiltonian paths over n uniformly
// spaced points on a line, labeled 1..n left to right.
//
// 🚀 What is hampath?
//
//	An exhaustive, deterministic toolkit for small-n questions about paths
//	that visit every point exactly once: how long is a path under the line
//	metric, do two paths share an edge, and does any edge-disjoint pair
//	exist, optionally with the combined length under a strict bound.
//
// ✨ Key features:
//   - canonical representatives: every path runs from 1 to n, so each
//     undirected path is counted once (its reverse is never enumerated)
//   - line metric: an edge {a,b} costs |a−b|
//   - lexicographic enumeration of all (n−2)! canonical paths
//   - pairwise disjointness search with first-match short-circuit
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hamlet/hampath"
//
//	cost, err := hampath.Cost(hampath.Path{1, 3, 5, 2, 4, 6}) // 11
//	ok, err := hampath.DisjointPairExists(6)                  // true
//
// Performance:
//
//   - Cost / Disjoint: O(n) and O(n²) per call
//   - Enumerate: Θ((n−2)!) paths, each of length n
//   - pair searches: O((n−2)!²) edge scans worst case
//
// The exhaustive operations are meant for n ≤ 11; nothing guards larger n,
// the caller owns that budget.
package hampath
