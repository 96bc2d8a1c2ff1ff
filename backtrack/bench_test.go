package backtrack_test

import (
	"testing"

	"github.com/katalvlaran/lvwalk/backtrack"
)

// benchmarkSearch runs fn on a mid-sized instance with many solutions.
func benchmarkSearch(b *testing.B, fn func([]int, int) ([][]int, error)) {
	cands := []int{2, 3, 5, 7, 11, 13}
	const target = 40

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(cands, target); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}

func BenchmarkCombinationSum_Recursive(b *testing.B) {
	benchmarkSearch(b, func(c []int, t int) ([][]int, error) {
		return backtrack.CombinationSum(c, t)
	})
}

func BenchmarkCombinationSum_Iterative(b *testing.B) {
	benchmarkSearch(b, func(c []int, t int) ([][]int, error) {
		return backtrack.CombinationSum(c, t, backtrack.WithIterative())
	})
}

func BenchmarkBruteForce(b *testing.B) {
	benchmarkSearch(b, backtrack.BruteForce)
}
