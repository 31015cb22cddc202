// Package prefixsum implements cumulative-sum tables and imos-style
// difference arrays over numeric slices and grids.
//
// What:
//
//   - Cumulative / Cumulative2D: immutable prefix-sum tables built once
//     from a slice (or rectangular grid), answering half-open range sums
//     in O(1).
//   - Imos / Imos2D: the inverse tool — accumulate many half-open range
//     (or rectangle) additions into a difference array, then Build once to
//     materialize per-index values.
//
// Why:
//   - Answer q interval-sum queries over static data in O(n + q)
//   - Apply q interval updates with a single O(n) fold at the end
//   - The 2D forms do the same for axis-aligned rectangles
//
// Complexity:
//
//   - Cumulative:   build O(n),   Sum O(1)
//   - Cumulative2D: build O(h·w), Sum O(1)
//   - Imos:         Add O(1), Build O(n)
//   - Imos2D:       Add O(1), Build O(h·w)
//
// Errors:
//
//   - Query and update bounds are checked: methods panic with a
//     "prefixsum:"-prefixed message on inverted or out-of-range intervals
//     and on ragged input grids. Empty inputs are fine and yield empty
//     tables (Sum over an empty range is 0).
//
// All types are generic over integer and floating-point element types.
package prefixsum
