// Package unionfind implements disjoint-set (union-find) structures over
// dense integer universes 0..n-1, as used in connectivity, clustering,
// Kruskal-style edge processing, and offline query problems.
//
// What:
//
//   - UnionFind: the classic mutable structure with union by size and
//     iterative path compression. Near-constant amortized operations.
//   - PersistentUnionFind: a rewindable variant that records every parent
//     and size write in an undo log. Snapshot() captures the current
//     version; Rollback(cp) restores it exactly. Path compression is
//     disabled so that rollback never observes a compressed shortcut.
//
// Why:
//   - Track connected components under incremental edge insertion
//   - Count and enumerate components after a batch of unions
//   - Explore "what if we also joined x and y" branches cheaply, then rewind
//
// Complexity:
//
//   - UnionFind:           Find/Unite/Same amortized O(α(n)); Groups O(n·α(n))
//   - PersistentUnionFind: Find/Unite/Same O(log n) (union by size only);
//     Rollback O(k) for k logged writes
//   - Memory:              O(n) plus O(#unions) undo log for the persistent form
//
// Errors:
//
//   - All methods panic with an "unionfind:"-prefixed message on
//     out-of-range elements or negative sizes; there are no error returns.
//     Rollback panics on a checkpoint that is out of range or from the future.
package unionfind
