package prefixsum

import "fmt"

// Imos accumulates half-open range additions into a length-n difference
// array. Add is O(1); Build folds the array into concrete values in O(n).
// Build does not consume the accumulator: further Adds and rebuilds are
// allowed.
type Imos[T Number] struct {
	n    int
	diff []T // len n+1; diff[l] += v, diff[r] -= v per Add
}

// NewImos returns an accumulator over indices 0..n-1.
// Panics if n is negative.
func NewImos[T Number](n int) *Imos[T] {
	if n < 0 {
		panic(fmt.Sprintf("prefixsum: NewImos: n must be ≥ 0, got %d", n))
	}

	return &Imos[T]{n: n, diff: make([]T, n+1)}
}

// Len reports the number of indices covered.
func (im *Imos[T]) Len() int { return im.n }

// Add records +v over the half-open interval [l, r).
// r past the end is clamped to Len(), so Add(l, Len()+k, v) means
// "from l to the end". Panics if l is negative or l > r.
func (im *Imos[T]) Add(l, r int, v T) {
	if l < 0 || l > r || l > im.n {
		panic(fmt.Sprintf("prefixsum: Add: want 0 ≤ l ≤ r, l ≤ %d, got [%d,%d)", im.n, l, r))
	}
	if r > im.n {
		r = im.n
	}

	im.diff[l] += v
	im.diff[r] -= v
}

// Build folds the recorded additions into one value per index.
func (im *Imos[T]) Build() []T {
	out := make([]T, im.n)
	var run T
	for i := 0; i < im.n; i++ {
		run += im.diff[i]
		out[i] = run
	}

	return out
}

// Imos2D accumulates half-open rectangle additions over an h×w grid.
type Imos2D[T Number] struct {
	h, w int
	diff [][]T // (h+1)×(w+1) difference grid
}

// NewImos2D returns a rectangle accumulator over an h×w grid.
// Panics if either dimension is negative.
func NewImos2D[T Number](h, w int) *Imos2D[T] {
	if h < 0 || w < 0 {
		panic(fmt.Sprintf("prefixsum: NewImos2D: dimensions must be ≥ 0, got %d×%d", h, w))
	}

	diff := make([][]T, h+1)
	for r := range diff {
		diff[r] = make([]T, w+1)
	}

	return &Imos2D[T]{h: h, w: w, diff: diff}
}

// Rows reports the grid height.
func (im *Imos2D[T]) Rows() int { return im.h }

// Cols reports the grid width.
func (im *Imos2D[T]) Cols() int { return im.w }

// Add records +v over the half-open rectangle [r1,r2) × [c1,c2).
// Bounds past the bottom or right edge are clamped. Panics on negative or
// inverted coordinates.
func (im *Imos2D[T]) Add(r1, c1, r2, c2 int, v T) {
	if r1 < 0 || r1 > r2 || r1 > im.h || c1 < 0 || c1 > c2 || c1 > im.w {
		panic(fmt.Sprintf("prefixsum: Add: rectangle [%d,%d)×[%d,%d) invalid for %d×%d grid",
			r1, r2, c1, c2, im.h, im.w))
	}
	if r2 > im.h {
		r2 = im.h
	}
	if c2 > im.w {
		c2 = im.w
	}

	// Four-corner stamp: prefix folding restores the rectangle.
	im.diff[r1][c1] += v
	im.diff[r1][c2] -= v
	im.diff[r2][c1] -= v
	im.diff[r2][c2] += v
}

// Build folds the recorded rectangles into an h×w grid of values.
func (im *Imos2D[T]) Build() [][]T {
	out := make([][]T, im.h)

	// 1. Row-wise fold of the raw difference grid.
	for r := 0; r < im.h; r++ {
		out[r] = make([]T, im.w)
		var run T
		for c := 0; c < im.w; c++ {
			run += im.diff[r][c]
			out[r][c] = run
		}
	}

	// 2. Column-wise fold completes the 2-D prefix.
	for c := 0; c < im.w; c++ {
		for r := 1; r < im.h; r++ {
			out[r][c] += out[r-1][c]
		}
	}

	return out
}
