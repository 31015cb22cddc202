// Package bisect implements predicate bisection in the ng/ok style: the
// caller supplies one bound where the predicate is known false (ng), one
// where it is known true (ok), and the search closes the gap.
//
// What:
//
//   - Int: generic integer bisection, ng and ok in either order, returning
//     the ok-side boundary value adjacent to the flip point.
//   - Float: the same over float64, halving the interval a fixed number of
//     iterations instead of chasing exact adjacency.
//
// Why:
//   - "Largest feasible k" / "smallest infeasible k" answers in one call
//   - Works on negative domains and value ranges, unlike index-only
//     search helpers
//   - Midpoints are computed as ng + (ok-ng)/2, immune to overflow at the
//     extremes of the integer type
//
// Complexity: O(log |ok-ng|) predicate calls for Int, exactly iter calls
// for Float.
//
// Errors:
//
//   - Both functions panic with a "bisect:"-prefixed message when the
//     bounds coincide (Int), iter is negative, or a bound is not finite
//     (Float). The caller's invariant pred(ok) && !pred(ng) is assumed,
//     not verified; a predicate that is not monotone between the bounds
//     yields some flip point, not a specific one.
package bisect
