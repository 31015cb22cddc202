package keygraph

import "github.com/algokata/algokata/unionfind"

// SCCSplit partitions the graph into strongly connected components with
// Kosaraju's two-pass sweep and returns them as a union-find over the
// dense node indices, plus the condensation edges: one (from, to) root
// pair per pair of distinct components joined by at least one arc, in
// first-encounter order.
//
// Meaningful on directed graphs; on an undirected graph every connected
// component is trivially strongly connected. An empty graph yields an
// empty union-find and no edges.
//
// Runs in O(V + E); both passes recurse, so depth is bounded by the
// longest simple path.
func (g *Graph[K, E, N]) SCCSplit() (*unionfind.UnionFind, [][2]int) {
	n := len(g.keys)
	dsu := unionfind.New(n)
	if n == 0 {
		return dsu, nil
	}

	// 1. First pass: record finish order on the forward graph.
	visited := make([]bool, n)
	order := make([]int, 0, n)
	var finish func(id int)
	finish = func(id int) {
		visited[id] = true
		for _, arc := range g.adj[id] {
			if !visited[arc.To] {
				finish(arc.To)
			}
		}
		order = append(order, id)
	}
	for id := 0; id < n; id++ {
		if !visited[id] {
			finish(id)
		}
	}

	// 2. Transpose the adjacency.
	transposed := make([][]int, n)
	for from, arcs := range g.adj {
		for _, arc := range arcs {
			transposed[arc.To] = append(transposed[arc.To], from)
		}
	}

	// 3. Second pass in reverse finish order: each sweep is one SCC.
	seen := make([]bool, n)
	var sweep func(id, root int)
	sweep = func(id, root int) {
		seen[id] = true
		dsu.Unite(root, id)
		for _, prev := range transposed[id] {
			if !seen[prev] {
				sweep(prev, root)
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		if id := order[i]; !seen[id] {
			sweep(id, id)
		}
	}

	// 4. Collect condensation edges between distinct components.
	var (
		edges [][2]int
		dedup = make(map[[2]int]struct{})
	)
	for from, arcs := range g.adj {
		for _, arc := range arcs {
			pair := [2]int{dsu.Find(from), dsu.Find(arc.To)}
			if pair[0] == pair[1] {
				continue
			}
			if _, dup := dedup[pair]; dup {
				continue
			}
			dedup[pair] = struct{}{}
			edges = append(edges, pair)
		}
	}

	return dsu, edges
}
