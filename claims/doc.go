// Package claims names the statements of the Price of Diversity study and
// verifies them by exhaustive search.
//
// 🚀 What is claims?
//
//	The declarative layer over hampath and hamcycle: a Claim binds a kind
//	(paths or cycles), a point count, an optional cost bound and the
//	expected answer into one falsifiable record. Verify runs the matching
//	exhaustive search and reports whether reality agrees.
//
// ✨ Key features:
//   - the built-in PriceOfDiversity suite: Claim 3.1 (paths on a line) and
//     Claim 4.1 (cycles on a circle), each with its existence frontier and
//     its tight/loose bound families
//   - bound formulas as text: a restricted rational-linear language
//     ("16*(n-1)/5", "4*n", "32") parsed once and evaluated per claim
//   - TOML claim files, so new suites need no recompilation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hamlet/claims"
//
//	for _, g := range claims.PriceOfDiversity() {
//	    for _, c := range g.Claims {
//	        res, err := claims.Verify(c)
//	        // res.Holds reports whether the claim survived
//	    }
//	}
//
// Verification cost is the underlying search: factorial in the claim's
// point count. The built-in suite tops out at n = 8.
package claims
