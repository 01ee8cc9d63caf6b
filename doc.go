// Package hamlet is a brute-force proof assistant for small combinatorial
// claims about Hamiltonian paths and cycles on n uniformly spaced points.
//
// 🎭 What is hamlet?
//
//	An exhaustive verifier that brings together:
//		• Canonical enumeration: every Hamiltonian path and cycle, each exactly once
//		• Cost metrics: line distance for paths, circular arc distance for cycles
//		• Edge analysis: membership and pairwise edge-disjointness
//		• Depth parity: the odd-depth classification of circular tours
//		• Claims: declarative existence claims with strict cost bounds, verified end to end
//
// ✨ Why brute force?
//
//   - Certainty – every canonical tour is visited, so "no pair exists" is a proof
//   - Small n – the interesting claims live at n ≤ 11, where factorials stay affordable
//   - Honest arithmetic – integer costs throughout, bounds compared as float64 only at the edge
//
// Everything is organized under five packages:
//
//	permute/  — lexicographic permutation stepping, the enumeration engine
//	hampath/  — Hamiltonian paths on a line: validation, cost, disjointness, search
//	hamcycle/ — Hamiltonian cycles on a circle: the same, plus depth parity
//	claims/   — claim model, bound formulas, TOML suites, the built-in study
//	cmd/      — the hamlet CLI: prove, verify, paths, cycles
//
// Quick ASCII example:
//
//	1───2───3───4───5───6
//
//	is the identity path on six points (cost 5). Its edge-disjoint partner
//	1───3───5───2───4───6 reuses none of those edges and costs 11.
//
// Dive into the package docs for the exact canonical forms and the cost
// model, or run `hamlet prove` for the built-in Price of Diversity suite.
//
//	go get github.com/katalvlaran/hamlet
package hamlet
