package prefixsum_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algokata/algokata/prefixsum"
)

func TestSum_Basic(t *testing.T) {
	c := prefixsum.New([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 5, c.Sum(1, 3), "elements at 1 and 2")
	assert.Equal(t, 15, c.Sum(0, 5), "whole slice")
	assert.Equal(t, 15, c.Total())
	assert.Equal(t, 0, c.Sum(2, 2), "empty interval")
	assert.Equal(t, 5, c.Sum(4, 5), "single trailing element")
}

func TestSum_EmptyData(t *testing.T) {
	c := prefixsum.New([]int64(nil))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Sum(0, 0))
	assert.Equal(t, int64(0), c.Total())
}

func TestSum_Float(t *testing.T) {
	c := prefixsum.New([]float64{0.5, 1.5, 2.0})
	assert.InDelta(t, 2.0, c.Sum(0, 2), 1e-12)
	assert.InDelta(t, 4.0, c.Total(), 1e-12)
}

func TestSum_BadBoundsPanic(t *testing.T) {
	c := prefixsum.New([]int{1, 2, 3})
	assert.Panics(t, func() { c.Sum(2, 1) })
	assert.Panics(t, func() { c.Sum(-1, 2) })
	assert.Panics(t, func() { c.Sum(0, 4) })
}

func TestSum_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]int, 40)
	for i := range data {
		data[i] = rng.Intn(201) - 100
	}
	c := prefixsum.New(data)

	for l := 0; l <= len(data); l++ {
		for r := l; r <= len(data); r++ {
			want := 0
			for i := l; i < r; i++ {
				want += data[i]
			}
			assert.Equal(t, want, c.Sum(l, r), "interval [%d,%d)", l, r)
		}
	}
}

func TestSum2D_Basic(t *testing.T) {
	c := prefixsum.New2D([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.Equal(t, 3, c.Rows())
	require.Equal(t, 3, c.Cols())

	assert.Equal(t, 45, c.Total())
	assert.Equal(t, 12, c.Sum(0, 0, 2, 2), "top-left 2×2: 1+2+4+5")
	assert.Equal(t, 28, c.Sum(1, 1, 3, 3), "bottom-right 2×2: 5+6+8+9")
	assert.Equal(t, 0, c.Sum(1, 1, 1, 3), "zero-height rectangle")
}

func TestSum2D_MatchesNaive(t *testing.T) {
	const h, w = 6, 9
	rng := rand.New(rand.NewSource(11))
	grid := make([][]int, h)
	for r := range grid {
		grid[r] = make([]int, w)
		for c := range grid[r] {
			grid[r][c] = rng.Intn(41) - 20
		}
	}
	table := prefixsum.New2D(grid)

	naive := func(r1, c1, r2, c2 int) int {
		s := 0
		for r := r1; r < r2; r++ {
			for c := c1; c < c2; c++ {
				s += grid[r][c]
			}
		}
		return s
	}

	for r1 := 0; r1 <= h; r1++ {
		for r2 := r1; r2 <= h; r2++ {
			for c1 := 0; c1 <= w; c1++ {
				for c2 := c1; c2 <= w; c2++ {
					assert.Equal(t, naive(r1, c1, r2, c2), table.Sum(r1, c1, r2, c2))
				}
			}
		}
	}
}

func TestSum2D_RaggedPanics(t *testing.T) {
	assert.Panics(t, func() {
		prefixsum.New2D([][]int{{1, 2}, {3}})
	})
}

func TestSum2D_Empty(t *testing.T) {
	c := prefixsum.New2D([][]int{})
	assert.Equal(t, 0, c.Rows())
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0, c.Sum(0, 0, 0, 0))
}

func TestSum2D_BadBoundsPanic(t *testing.T) {
	c := prefixsum.New2D([][]int{{1, 2}, {3, 4}})
	assert.Panics(t, func() { c.Sum(0, 0, 3, 1) })
	assert.Panics(t, func() { c.Sum(1, 1, 0, 2) })
	assert.Panics(t, func() { c.Sum(0, -1, 1, 1) })
}
