// Package bisect provides ng/ok predicate bisection over integer and
// floating-point domains.
package bisect

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Int bisects between ng (predicate false) and ok (predicate true) until
// the two are adjacent, and returns the final ok. The bounds may be given
// in either order: Int(-1, n, p) finds the smallest satisfying value,
// Int(n, -1, p) the largest.
//
// Assumes pred(ok) is true and pred(ng) is false; neither is called.
// Panics if ng == ok.
func Int[T constraints.Integer](ng, ok T, pred func(T) bool) T {
	if ng == ok {
		panic(fmt.Sprintf("bisect: Int: ng and ok must differ, both %v", ng))
	}

	var mid T
	for gap(ng, ok) > 1 {
		mid = midpoint(ng, ok)
		if pred(mid) {
			ok = mid
		} else {
			ng = mid
		}
	}

	return ok
}

// Float bisects between ng and ok over float64, halving the interval
// exactly iter times, and returns the final ok-side bound. 100 iterations
// drive the interval width below any representable tolerance.
//
// Panics if iter is negative or either bound is NaN or infinite.
func Float(ng, ok float64, iter int, pred func(float64) bool) float64 {
	// 1. Validate the numeric inputs.
	if iter < 0 {
		panic(fmt.Sprintf("bisect: Float: iter must be ≥ 0, got %d", iter))
	}
	if math.IsNaN(ng) || math.IsInf(ng, 0) || math.IsNaN(ok) || math.IsInf(ok, 0) {
		panic(fmt.Sprintf("bisect: Float: bounds must be finite, got ng=%v ok=%v", ng, ok))
	}

	// 2. Halve a fixed number of times.
	var mid float64
	for i := 0; i < iter; i++ {
		mid = ng + (ok-ng)/2
		if pred(mid) {
			ok = mid
		} else {
			ng = mid
		}
	}

	return ok
}

// gap returns |ok-ng| computed without leaving T's value range.
func gap[T constraints.Integer](ng, ok T) T {
	if ok > ng {
		return ok - ng
	}

	return ng - ok
}

// midpoint returns the value halfway between ng and ok, biased toward ng.
func midpoint[T constraints.Integer](ng, ok T) T {
	if ok > ng {
		return ng + (ok-ng)/2
	}

	return ok + (ng-ok)/2
}
