// Package compress implements coordinate compression: mapping a multiset
// of ordered values onto dense ranks 0..k-1 while preserving order.
//
// What:
//
//   - Index: built once from a value slice; duplicates collapse, values
//     sort ascending. Rank maps a value to its dense index, Value maps
//     back, LowerBound counts strictly smaller keys.
//
// Why:
//   - Shrink sparse coordinates (up to 1e18) into array indices for
//     prefix sums, difference arrays, or union-find universes
//   - Order-preserving: Rank(a) < Rank(b) exactly when a < b
//
// Complexity: build O(n log n); Rank/LowerBound O(log k); Value O(1).
//
// Errors:
//
//   - Rank reports absence with a false second return (the position is
//     then the insertion point); Value panics on an out-of-range rank
//     with a "compress:"-prefixed message.
package compress
