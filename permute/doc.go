// Package permute provides deterministic lexicographic permutation stepping
// over small integer sequences.
//
// 🚀 What is permute?
//
//	A tiny, allocation-conscious engine for exhaustive enumeration: start
//	from an ascending sequence and call Next until it reports false. Every
//	arrangement is visited exactly once, in lexicographic order.
//
// ✨ Key properties:
//   - In-place stepping: Next mutates its argument and allocates nothing.
//   - Restartable: after the last arrangement the sequence is ascending
//     again, so a second sweep starts clean.
//   - Sub-slice friendly: stepping p[1:] enumerates arrangements with p[0]
//     pinned, the trick behind canonical path/cycle enumeration.
//
// ⚙️ Usage:
//
//	p := permute.Identity(4) // [1 2 3 4]
//	for {
//	    // ... consume p ...
//	    if !permute.Next(p) {
//	        break
//	    }
//	}
//
// Performance: Next is O(n) worst case and amortized O(1) over a full sweep;
// a full sweep of n elements visits n! arrangements, so callers keep n small.
package permute
