// Package treedp computes re-rooting tree DP answers for every node in
// linear time via two DFS passes with prefix/suffix sibling folds.
package treedp

import "fmt"

// Tree is a validated undirected tree on nodes 0..n-1 with a fixed
// traversal root. Build once with New, then Solve against any Rules.
type Tree struct {
	n    int
	root int
	adj  [][]int
}

// New builds a Tree from an edge list. Each edge {u, v} is undirected;
// neighbor lists keep edge-insertion order, which is also the fold order
// Solve uses.
//
// Validation covers shape only — node count, endpoint range, edge count,
// root range — not connectivity: a multiset of n-1 edges that is not a
// tree yields undefined Solve results.
func New(n int, edges [][2]int, opts ...Option) (*Tree, error) {
	// 1. Validate node count.
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNodeCount, n)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if n > 0 && dopts.Root >= n {
		return nil, fmt.Errorf("%w: root %d with %d nodes", ErrRootRange, dopts.Root, n)
	}

	// 3. Exactly n-1 edges can form a tree (0 edges for the empty tree).
	want := n - 1
	if n == 0 {
		want = 0
	}
	if len(edges) != want {
		return nil, fmt.Errorf("%w: got %d edges for %d nodes", ErrEdgeCount, len(edges), n)
	}

	// 4. Build the adjacency lists, checking endpoints as we go.
	adj := make([][]int, n)
	var u, v int
	for i, e := range edges {
		u, v = e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge %d is (%d,%d), nodes are [0,%d)", ErrEdgeEndpoint, i, u, v, n)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return &Tree{n: n, root: dopts.Root, adj: adj}, nil
}

// Len reports the number of nodes.
func (t *Tree) Len() int { return t.n }

// Root reports the traversal root.
func (t *Tree) Root() int { return t.root }

// Solve computes the re-rooting DP: element v of the result is the value
// of the whole tree as if rooted at v. Two passes over t, O(n) total.
//
// Pass one (post-order) folds each node's child aggregates and applies
// Finish, the classic single-root subtree DP. Pass two (pre-order)
// carries the parent-side aggregate down each edge and recombines it
// with the child aggregates via prefix/suffix folds, so every node sees
// the full neighborhood exactly once.
//
// A 0-node tree yields an empty slice. Panics if rules is nil.
func Solve[V any](t *Tree, rules Rules[V]) []V {
	if rules == nil {
		panic(panicNilRules)
	}
	if t.n == 0 {
		return []V{}
	}

	// Pass 1: subtree aggregates away from the traversal root.
	down := make([]V, t.n)
	var dfsDown func(v, parent int)
	dfsDown = func(v, parent int) {
		acc := rules.Identity()
		for _, u := range t.adj[v] {
			if u == parent {
				continue
			}
			dfsDown(u, v)
			acc = rules.Merge(acc, down[u])
		}
		down[v] = rules.Finish(v, acc)
	}
	dfsDown(t.root, -1)

	// Pass 2: re-root along every edge, excluding one neighbor at a
	// time via prefix/suffix folds over the neighbor list.
	ans := make([]V, t.n)
	var dfsUp func(v, parent int, fromParent V)
	dfsUp = func(v, parent int, fromParent V) {
		nbs := t.adj[v]
		deg := len(nbs)

		// Neighbor aggregates: the parent slot carries the rest of the
		// tree as seen through the upward edge.
		vals := make([]V, deg)
		for i, u := range nbs {
			if u == parent {
				vals[i] = fromParent
			} else {
				vals[i] = down[u]
			}
		}

		// prefix[i] folds vals[:i]; suffix[i] folds vals[i:].
		prefix := make([]V, deg+1)
		prefix[0] = rules.Identity()
		for i := 0; i < deg; i++ {
			prefix[i+1] = rules.Merge(prefix[i], vals[i])
		}
		suffix := make([]V, deg+1)
		suffix[deg] = rules.Identity()
		for i := deg - 1; i >= 0; i-- {
			suffix[i] = rules.Merge(vals[i], suffix[i+1])
		}

		// The node's own answer closes over every neighbor.
		ans[v] = rules.Finish(v, prefix[deg])

		// Each child receives the tree minus its own subtree.
		for i, u := range nbs {
			if u == parent {
				continue
			}
			dfsUp(u, v, rules.Finish(v, rules.Merge(prefix[i], suffix[i+1])))
		}
	}
	dfsUp(t.root, -1, rules.Identity())

	return ans
}
