package keygraph

// treeFolder carries one TreeDP invocation.
type treeFolder[K comparable, E, N, V any] struct {
	g     *Graph[K, E, N]
	rules FoldRules[E, N, V]
	seen  []bool
}

// TreeDP runs a bottom-up DP over the tree hanging from root: children
// are folded pairwise with Merge, then Finish lifts the accumulated
// value across the edge toward the parent. The root itself is not
// lifted; its result is the plain merge of its children's values.
//
// Reports false when root is an unknown key, and also when the root has
// no children at all (there is nothing to merge). Works on directed
// parent-to-child trees and on undirected ones alike: the visited set
// keeps the walk from climbing back up. On a graph with cycles the
// value is well-defined but depends on adjacency insertion order.
//
// Panics if rules is nil. Runs in O(n) for n reachable nodes; recursion
// depth is the tree height.
func TreeDP[K comparable, E, N, V any](g *Graph[K, E, N], root K, rules FoldRules[E, N, V]) (V, bool) {
	// 1. Guard the contract.
	if rules == nil {
		panic(panicNilRules)
	}

	// 2. Resolve the root; absence is an answer, not an error.
	var zero V
	id, ok := g.index[root]
	if !ok {
		return zero, false
	}

	// 3. Fold the tree.
	f := &treeFolder[K, E, N, V]{
		g:     g,
		rules: rules,
		seen:  make([]bool, len(g.keys)),
	}
	var zeroEdge E

	return f.fold(id, zeroEdge, true)
}

// fold returns the value node id hands upward, with ok=false for an
// already-visited node or an unlifted childless root.
func (f *treeFolder[K, E, N, V]) fold(id int, edge E, isRoot bool) (V, bool) {
	var zero V
	if f.seen[id] {
		return zero, false
	}
	f.seen[id] = true

	var (
		acc   V
		accOK bool
	)
	for _, arc := range f.g.adj[id] {
		sub, ok := f.fold(arc.To, arc.Edge, false)
		if !ok {
			continue
		}
		if accOK {
			acc = f.rules.Merge(acc, sub)
		} else {
			acc, accOK = sub, true
		}
	}

	if isRoot {
		return acc, accOK
	}

	return f.rules.Finish(acc, accOK, f.g.payloads[id], f.g.hasPay[id], edge), true
}
