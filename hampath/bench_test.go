package hampath_test

import (
	"testing"

	"github.com/katalvlaran/hamlet/hampath"
)

// BenchmarkCost measures the line-metric accumulation on eleven points.
func BenchmarkCost(b *testing.B) {
	p := hampath.Path{1, 3, 5, 2, 4, 6, 7, 8, 9, 10, 11}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hampath.Cost(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDisjoint measures one full pairwise edge scan on eleven points.
func BenchmarkDisjoint(b *testing.B) {
	x := hampath.Path{1, 3, 5, 2, 4, 6, 7, 8, 9, 10, 11}
	y := hampath.Path{1, 2, 3, 4, 5, 6, 8, 10, 7, 9, 11}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hampath.Disjoint(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEnumerate builds all 720 canonical paths on eight points.
func BenchmarkEnumerate(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hampath.Enumerate(8); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDisjointPairExists runs the full positive search on seven points.
func BenchmarkDisjointPairExists(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hampath.DisjointPairExists(7); err != nil {
			b.Fatal(err)
		}
	}
}
