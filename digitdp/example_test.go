package digitdp_test

import (
	"fmt"

	"github.com/algokata/algokata/digitdp"
)

// ExampleCount counts the integers in [0, 9999] that contain the digit
// 7 at least once. The state is a single flag, so the whole range
// collapses into a handful of memoized subproblems.
func ExampleCount() {
	total, err := digitdp.Count[bool]("9999", sevenRules{})
	if err != nil {
		fmt.Println("count:", err)
		return
	}
	fmt.Printf("%d numbers up to 9999 contain a 7\n", total)

	// Output:
	// 3439 numbers up to 9999 contain a 7
}
