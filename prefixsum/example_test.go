package prefixsum_test

import (
	"fmt"

	"github.com/algokata/algokata/prefixsum"
)

// ExampleCumulative builds a prefix-sum table over [1,2,3,4,5] and
// queries two half-open intervals.
func ExampleCumulative() {
	c := prefixsum.New([]int{1, 2, 3, 4, 5})

	fmt.Println(c.Sum(1, 3)) // 2 + 3
	fmt.Println(c.Sum(0, 5)) // whole slice

	// Output:
	// 5
	// 15
}

// ExampleCumulative2D sums rectangles of a 3×3 grid in O(1) per query.
//
//	1 2 3
//	4 5 6
//	7 8 9
func ExampleCumulative2D() {
	c := prefixsum.New2D([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	fmt.Println(c.Sum(0, 0, 2, 2)) // top-left 2×2
	fmt.Println(c.Total())

	// Output:
	// 12
	// 45
}

// ExampleImos layers three range additions and folds them once.
func ExampleImos() {
	im := prefixsum.NewImos[int](5)
	im.Add(0, 3, 1)
	im.Add(2, 5, 2)
	im.Add(1, 2, 10)

	fmt.Println(im.Build())

	// Output:
	// [1 11 3 2 2]
}
