package keygraph

// Graph is an adjacency-list graph addressed by caller keys. Keys are
// interned into dense indices on first sight, so coordinates, strings,
// or any other comparable value work directly as node names. Nodes and
// edges carry caller payloads.
//
// The zero value is not usable; construct with New.
type Graph[K comparable, E, N any] struct {
	directed bool
	index    map[K]int
	keys     []K
	payloads []N
	hasPay   []bool
	adj      [][]Arc[E]
}

// New returns an empty graph. Undirected by default; pass WithDirected
// for one-way edges.
func New[K comparable, E, N any](opts ...Option) *Graph[K, E, N] {
	dopts := DefaultOptions()
	for _, opt := range opts {
		opt(&dopts)
	}

	return &Graph[K, E, N]{
		directed: dopts.Directed,
		index:    make(map[K]int),
	}
}

// intern returns the dense index for key, creating the node on first
// sight.
func (g *Graph[K, E, N]) intern(key K) int {
	if id, ok := g.index[key]; ok {
		return id
	}

	id := len(g.keys)
	g.index[key] = id
	g.keys = append(g.keys, key)
	g.payloads = append(g.payloads, *new(N))
	g.hasPay = append(g.hasPay, false)
	g.adj = append(g.adj, nil)

	return id
}

// Add inserts an edge carrying payload edge. Unknown endpoints are
// created on the fly. Undirected graphs get the symmetric arc too,
// except for self-loops, which are stored once.
func (g *Graph[K, E, N]) Add(from, to K, edge E) {
	fromID := g.intern(from)
	toID := g.intern(to)

	g.adj[fromID] = append(g.adj[fromID], Arc[E]{To: toID, Edge: edge})
	if !g.directed && fromID != toID {
		g.adj[toID] = append(g.adj[toID], Arc[E]{To: fromID, Edge: edge})
	}
}

// SetNode attaches (or replaces) the payload on key's node, creating
// the node if it has never been seen.
func (g *Graph[K, E, N]) SetNode(key K, payload N) {
	id := g.intern(key)
	g.payloads[id] = payload
	g.hasPay[id] = true
}

// Index returns the dense index assigned to key, and whether the key is
// known at all.
func (g *Graph[K, E, N]) Index(key K) (int, bool) {
	id, ok := g.index[key]

	return id, ok
}

// Key is the reverse of Index: the key interned at dense index id.
// Reports false when id was never assigned.
func (g *Graph[K, E, N]) Key(id int) (K, bool) {
	if id < 0 || id >= len(g.keys) {
		var zero K
		return zero, false
	}

	return g.keys[id], true
}

// Node returns the payload set on key's node, and whether one was ever
// set. Unknown keys report false.
func (g *Graph[K, E, N]) Node(key K) (N, bool) {
	id, ok := g.index[key]
	if !ok || !g.hasPay[id] {
		var zero N
		return zero, false
	}

	return g.payloads[id], true
}

// Neighbors returns the keys adjacent to key, one entry per stored arc
// in insertion order. Unknown keys yield an empty slice.
func (g *Graph[K, E, N]) Neighbors(key K) []K {
	id, ok := g.index[key]
	if !ok {
		return nil
	}

	out := make([]K, len(g.adj[id]))
	for i, arc := range g.adj[id] {
		out[i] = g.keys[arc.To]
	}

	return out
}

// Arcs returns the raw adjacency of the node at dense index id: arc
// head indices plus edge payloads, in insertion order. The slice is
// shared with the graph and must not be mutated. Unknown ids yield an
// empty slice.
func (g *Graph[K, E, N]) Arcs(id int) []Arc[E] {
	if id < 0 || id >= len(g.adj) {
		return nil
	}

	return g.adj[id]
}

// Len returns the number of interned nodes.
func (g *Graph[K, E, N]) Len() int {
	return len(g.keys)
}
