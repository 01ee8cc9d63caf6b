package claims

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hamlet/hamcycle"
	"github.com/katalvlaran/hamlet/hampath"
)

// Verify runs the exhaustive search a claim quantifies over and compares
// the answer with the expectation. The search's own sentinels (bad point
// count, NaN bound) pass through; ErrBadKind covers an unknown Kind.
//
// Complexity: that of the underlying search, factorial in c.N.
func Verify(c Claim) (Result, error) {
	var (
		start = time.Now()
		got   bool
		err   error
	)

	switch c.Kind {
	case KindPaths:
		if c.Bound == nil {
			got, err = hampath.DisjointPairExists(c.N)
		} else {
			got, err = hampath.DisjointPairExistsWithinBound(c.N, c.Bound.Eval(c.N))
		}
	case KindCycles:
		if c.Bound == nil {
			got, err = hamcycle.DisjointPairExists(c.N)
		} else {
			got, err = hamcycle.DisjointPairExistsWithinBound(c.N, c.Bound.Eval(c.N))
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrBadKind, c.Kind)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Claim:   c,
		Got:     got,
		Holds:   got == c.Want,
		Elapsed: time.Since(start),
	}, nil
}

// PriceOfDiversity returns the built-in suite of the Price of Diversity
// study. Claim 3.1 covers Hamiltonian paths on a line: no edge-disjoint
// pair exists below six points, and none ever fits under 16(n−1)/5 combined
// cost, while 4(n−1) always admits one. Claim 4.1 covers Hamiltonian cycles
// on a circle: no edge-disjoint pair exists below five points, and no
// odd-depth pair ever fits under 16n/5, while 4n admits one from six points
// up.
func PriceOfDiversity() []Group {
	var (
		tightPaths  = mustBound("16*(n-1)/5")
		loosePaths  = mustBound("4*(n-1)")
		tightCycles = mustBound("16*n/5")
		looseCycles = mustBound("4*n")
	)

	g31 := Group{Name: "Claim 3.1"}
	for _, n := range []int{3, 4, 5} {
		g31.Claims = append(g31.Claims, Claim{
			Name:      fmt.Sprintf("3.1(i) n=%d", n),
			Statement: fmt.Sprintf("no two Hamiltonian paths on %d points are edge-disjoint", n),
			Kind:      KindPaths,
			N:         n,
			Want:      false,
		})
	}
	for _, n := range []int{6, 7, 8} {
		g31.Claims = append(g31.Claims, Claim{
			Name:      fmt.Sprintf("3.1(i) n=%d", n),
			Statement: fmt.Sprintf("an edge-disjoint pair of Hamiltonian paths exists on %d points", n),
			Kind:      KindPaths,
			N:         n,
			Want:      true,
		})
	}
	for _, n := range []int{6, 7, 8} {
		g31.Claims = append(g31.Claims,
			Claim{
				Name: fmt.Sprintf("3.1(ii) n=%d tight", n),
				Statement: fmt.Sprintf(
					"no edge-disjoint pair of Hamiltonian paths on %d points has combined cost under 16(n-1)/5", n),
				Kind:  KindPaths,
				N:     n,
				Bound: tightPaths,
				Want:  false,
			},
			Claim{
				Name: fmt.Sprintf("3.1(ii) n=%d loose", n),
				Statement: fmt.Sprintf(
					"an edge-disjoint pair of Hamiltonian paths on %d points fits under combined cost 4(n-1)", n),
				Kind:  KindPaths,
				N:     n,
				Bound: loosePaths,
				Want:  true,
			})
	}

	g41 := Group{Name: "Claim 4.1"}
	for _, n := range []int{3, 4} {
		g41.Claims = append(g41.Claims, Claim{
			Name:      fmt.Sprintf("4.1(i) n=%d", n),
			Statement: fmt.Sprintf("no two Hamiltonian cycles on %d points are edge-disjoint", n),
			Kind:      KindCycles,
			N:         n,
			Want:      false,
		})
	}
	for _, n := range []int{5, 6, 7, 8} {
		g41.Claims = append(g41.Claims, Claim{
			Name:      fmt.Sprintf("4.1(i) n=%d", n),
			Statement: fmt.Sprintf("an edge-disjoint pair of Hamiltonian cycles exists on %d points", n),
			Kind:      KindCycles,
			N:         n,
			Want:      true,
		})
	}
	for _, n := range []int{5, 6, 7, 8} {
		g41.Claims = append(g41.Claims, Claim{
			Name: fmt.Sprintf("4.1(ii) n=%d tight", n),
			Statement: fmt.Sprintf(
				"no odd-depth edge-disjoint pair of Hamiltonian cycles on %d points has combined cost under 16n/5", n),
			Kind:  KindCycles,
			N:     n,
			Bound: tightCycles,
			Want:  false,
		})
	}
	// The loose sanity row starts at n=6: no odd-depth disjoint pair of
	// tours exists on five points at any cost.
	for _, n := range []int{6, 7, 8} {
		g41.Claims = append(g41.Claims, Claim{
			Name: fmt.Sprintf("4.1(ii) n=%d loose", n),
			Statement: fmt.Sprintf(
				"an odd-depth edge-disjoint pair of Hamiltonian cycles on %d points fits under combined cost 4n", n),
			Kind:  KindCycles,
			N:     n,
			Bound: looseCycles,
			Want:  true,
		})
	}

	return []Group{g31, g41}
}

// mustBound parses a compiled-in formula literal; a failure is a programmer
// error, not user input, so it panics.
func mustBound(formula string) *Bound {
	b, err := ParseBound(formula)
	if err != nil {
		panic(err)
	}

	return b
}
