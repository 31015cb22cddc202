// Package prefixsum provides O(1) range-sum queries over static numeric
// data via precomputed cumulative tables, in one and two dimensions.
package prefixsum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number bounds the element types the package accumulates.
type Number interface {
	constraints.Integer | constraints.Float
}

// Cumulative is a 1-D prefix-sum table over values of type T.
type Cumulative[T Number] struct {
	prefix []T // prefix[i] = sum of data[0:i]; len(prefix) == n+1
}

// New builds a cumulative table over data. O(n).
// data may be empty; the resulting table answers only Sum(0,0) == 0.
func New[T Number](data []T) *Cumulative[T] {
	prefix := make([]T, len(data)+1)
	for i, v := range data {
		prefix[i+1] = prefix[i] + v
	}

	return &Cumulative[T]{prefix: prefix}
}

// Len reports the number of underlying elements.
func (c *Cumulative[T]) Len() int { return len(c.prefix) - 1 }

// Sum returns the sum of elements in the half-open interval [l, r).
// Sum(i, i) is 0 for any valid i. Panics if l > r or r exceeds Len.
func (c *Cumulative[T]) Sum(l, r int) T {
	if l < 0 || l > r || r > c.Len() {
		panic(fmt.Sprintf("prefixsum: Sum: want 0 ≤ l ≤ r ≤ %d, got [%d,%d)", c.Len(), l, r))
	}

	return c.prefix[r] - c.prefix[l]
}

// Total returns the sum of all elements, equal to Sum(0, Len()).
func (c *Cumulative[T]) Total() T { return c.prefix[len(c.prefix)-1] }

// Cumulative2D is a 2-D prefix-sum table answering axis-aligned
// rectangle sums in O(1).
type Cumulative2D[T Number] struct {
	h, w   int
	prefix [][]T // prefix[r][c] = sum of grid[0:r][0:c]; (h+1)×(w+1)
}

// New2D builds a rectangle-sum table over grid. O(h·w).
// All rows must share one width; a ragged grid panics. An empty grid is
// allowed and answers only zero-area queries.
func New2D[T Number](grid [][]T) *Cumulative2D[T] {
	// 1. Establish dimensions and reject ragged input.
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}
	for r := 1; r < h; r++ {
		if len(grid[r]) != w {
			panic(fmt.Sprintf("prefixsum: New2D: row %d has %d columns, want %d", r, len(grid[r]), w))
		}
	}

	// 2. Fold the standard inclusion-exclusion recurrence.
	prefix := make([][]T, h+1)
	prefix[0] = make([]T, w+1)
	for r := 0; r < h; r++ {
		prefix[r+1] = make([]T, w+1)
		for c := 0; c < w; c++ {
			prefix[r+1][c+1] = grid[r][c] + prefix[r][c+1] + prefix[r+1][c] - prefix[r][c]
		}
	}

	return &Cumulative2D[T]{h: h, w: w, prefix: prefix}
}

// Rows reports the grid height.
func (c *Cumulative2D[T]) Rows() int { return c.h }

// Cols reports the grid width.
func (c *Cumulative2D[T]) Cols() int { return c.w }

// Sum returns the sum over the half-open rectangle [r1,r2) × [c1,c2).
// Zero-area rectangles yield 0. Panics on inverted or out-of-range bounds.
func (c *Cumulative2D[T]) Sum(r1, c1, r2, c2 int) T {
	if r1 < 0 || r1 > r2 || r2 > c.h || c1 < 0 || c1 > c2 || c2 > c.w {
		panic(fmt.Sprintf("prefixsum: Sum: rectangle [%d,%d)×[%d,%d) outside %d×%d grid",
			r1, r2, c1, c2, c.h, c.w))
	}

	return c.prefix[r2][c2] - c.prefix[r1][c2] - c.prefix[r2][c1] + c.prefix[r1][c1]
}

// Total returns the sum over the whole grid.
func (c *Cumulative2D[T]) Total() T { return c.prefix[c.h][c.w] }
