// Package treedp implements all-direction (re-rooting) tree DP: the DP
// value of the tree rooted at EVERY node, computed in one linear pass
// pair instead of n separate traversals.
//
// What:
//
//   - Tree: a validated undirected tree on nodes 0..n-1, built once from
//     an edge list and reusable across rule sets.
//   - Rules: the caller's aggregate — a Merge monoid over child
//     aggregates plus a Finish transform applied when a node closes over
//     its merged children.
//   - Solve: two passes. Pass one aggregates subtrees bottom-up from the
//     traversal root. Pass two walks top-down carrying the "rest of the
//     tree" value through each edge, recombining with prefix/suffix
//     folds over the neighbor list so that "all children except one" is
//     O(1) per child.
//
// Why:
//   - Answer "what if the tree were rooted here" for every node in O(n):
//     subtree sizes, distance sums, path counts, farthest-leaf heights
//
// Complexity: Solve is O(n) time and memory — the per-node prefix/suffix
// arrays cost O(degree), which telescopes to O(n) over the tree.
//
// Errors:
//
//   - New validates shape: negative node count, an endpoint outside
//     [0,n), or an edge count other than n-1 yield sentinel errors
//     (ErrNodeCount, ErrEdgeEndpoint, ErrEdgeCount, ErrRootRange).
//     Connectivity and acyclicity are NOT verified: an edge multiset
//     that passes the cheap checks but is not a tree produces undefined
//     results.
//   - Solve panics only on nil rules; a 0-node tree yields an empty
//     slice.
//
// Recursion depth equals tree height; a degenerate path of great length
// is the caller's to avoid.
package treedp
