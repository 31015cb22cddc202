package memodfs_test

import (
	"testing"

	"github.com/algokata/algokata/memodfs"
)

// longChainRules is a 100k-state path with one goal at the far end.
type longChainRules struct{ size int }

func (r longChainRules) Successors(n int) []int {
	if n < r.size {
		return []int{n + 1}
	}

	return nil
}

func (r longChainRules) Goal(n int) bool { return n == r.size }

func (longChainRules) Collect(n int) int { return n }

func BenchmarkSearch_LongChain(b *testing.B) {
	rules := longChainRules{size: 100_000}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := memodfs.Search[int, int](rules, []int{0}); len(got) != 1 {
			b.Fatalf("expected one goal, got %d", len(got))
		}
	}
}

// treeRules is a complete binary tree on 1..2^19-1 with goals at the
// leaf layer.
type treeRules struct{ leaves int }

func (r treeRules) Successors(n int) []int {
	if n < r.leaves {
		return []int{2 * n, 2*n + 1}
	}

	return nil
}

func (r treeRules) Goal(n int) bool { return n >= r.leaves }

func (treeRules) Collect(n int) int { return n }

func (treeRules) Better(a, b int) bool { return a > b }

func BenchmarkBest_BinaryTree(b *testing.B) {
	rules := treeRules{leaves: 1 << 18}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		best, found := memodfs.Best[int, int](rules, []int{1})
		if !found || best != (1<<19)-1 {
			b.Fatalf("unexpected best %d (found %v)", best, found)
		}
	}
}
