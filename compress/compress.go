// Package compress maps sparse ordered values onto dense ranks.
package compress

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Index is an order-preserving mapping from a fixed value set to dense
// ranks 0..Len()-1. Construct with NewIndex; immutable afterwards.
type Index[T constraints.Ordered] struct {
	keys []T // sorted, deduplicated
}

// NewIndex builds the compression index for values. Duplicates are
// collapsed; the input slice is not modified. An empty input yields an
// empty index.
func NewIndex[T constraints.Ordered](values []T) *Index[T] {
	keys := make([]T, len(values))
	copy(keys, values)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	return &Index[T]{keys: keys}
}

// Len reports the number of distinct values indexed.
func (ix *Index[T]) Len() int { return len(ix.keys) }

// Keys returns the sorted distinct values. The slice is shared; callers
// must not modify it.
func (ix *Index[T]) Keys() []T { return ix.keys }

// Rank returns v's dense rank and whether v is among the indexed values.
// When absent, the returned position is v's insertion point, equal to
// LowerBound(v).
func (ix *Index[T]) Rank(v T) (int, bool) {
	return slices.BinarySearch(ix.keys, v)
}

// LowerBound returns the number of indexed values strictly smaller than
// v, which is also the insertion point that would keep the keys sorted.
func (ix *Index[T]) LowerBound(v T) int {
	pos, _ := slices.BinarySearch(ix.keys, v)

	return pos
}

// Value returns the value at the given rank, the inverse of Rank.
// Panics if rank is out of range.
func (ix *Index[T]) Value(rank int) T {
	if rank < 0 || rank >= len(ix.keys) {
		panic(fmt.Sprintf("compress: rank %d out of range [0,%d)", rank, len(ix.keys)))
	}

	return ix.keys[rank]
}
