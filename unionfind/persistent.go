package unionfind

import "fmt"

// Checkpoint marks a version of a PersistentUnionFind, captured by Snapshot
// and restored by Rollback. Checkpoints are ordered: rolling back to cp
// discards every union performed after Snapshot returned cp.
type Checkpoint int

// undoRecord remembers one successful union so it can be reversed:
// parent[child] reverts to child, size[root] reverts to rootSize.
type undoRecord struct {
	child    int // root that was attached under the surviving root
	root     int // surviving root whose size grew
	rootSize int // size[root] before the union
}

// PersistentUnionFind is a disjoint-set structure whose merge history can
// be rewound to any earlier Snapshot. Union is by size only; Find performs
// no path compression, so the parent forest always matches the undo log
// and Rollback restores every query result exactly.
//
// Find costs O(log n) instead of O(α(n)); acceptable where rewinding
// matters more than raw speed (offline queries, backtracking search).
type PersistentUnionFind struct {
	parent []int
	size   []int
	comps  int
	log    []undoRecord
}

// NewPersistent returns a rewindable union-find over n singleton sets.
// Panics if n is negative.
func NewPersistent(n int) *PersistentUnionFind {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: NewPersistent: n must be ≥ 0, got %d", n))
	}

	p := &PersistentUnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		comps:  n,
	}
	for i := 0; i < n; i++ {
		p.parent[i] = i
		p.size[i] = 1
	}

	return p
}

// Len reports the number of elements in the universe.
func (p *PersistentUnionFind) Len() int { return len(p.parent) }

// Count reports the number of disjoint sets at the current version.
func (p *PersistentUnionFind) Count() int { return p.comps }

// Find returns the root of x's set without modifying the forest.
// Panics if x is out of range.
func (p *PersistentUnionFind) Find(x int) int {
	p.check(x)

	for p.parent[x] != x {
		x = p.parent[x]
	}

	return x
}

// Unite merges the sets containing x and y and logs the write so it can be
// undone. Returns true if a merge happened. Panics if x or y is out of range.
func (p *PersistentUnionFind) Unite(x, y int) bool {
	rx, ry := p.Find(x), p.Find(y)
	if rx == ry {
		// No write happened, so nothing is logged.
		return false
	}

	if p.size[rx] < p.size[ry] {
		rx, ry = ry, rx
	}

	// Log the prior state before mutating.
	p.log = append(p.log, undoRecord{child: ry, root: rx, rootSize: p.size[rx]})
	p.parent[ry] = rx
	p.size[rx] += p.size[ry]
	p.comps--

	return true
}

// Same reports whether x and y belong to the same set at the current version.
func (p *PersistentUnionFind) Same(x, y int) bool {
	return p.Find(x) == p.Find(y)
}

// Size returns the number of elements in x's set at the current version.
func (p *PersistentUnionFind) Size(x int) int {
	return p.size[p.Find(x)]
}

// Snapshot captures the current version. The returned Checkpoint stays
// valid until a Rollback to an earlier checkpoint discards it.
func (p *PersistentUnionFind) Snapshot() Checkpoint {
	return Checkpoint(len(p.log))
}

// Rollback rewinds the structure to the state it had when Snapshot
// returned cp, undoing every union logged since. Panics if cp is negative
// or newer than the current version (e.g. already discarded by an earlier
// Rollback).
func (p *PersistentUnionFind) Rollback(cp Checkpoint) {
	if cp < 0 || int(cp) > len(p.log) {
		panic(fmt.Sprintf("unionfind: Rollback: checkpoint %d out of range [0,%d]", cp, len(p.log)))
	}

	// Pop log entries newest-first, restoring both written cells.
	var rec undoRecord
	for len(p.log) > int(cp) {
		rec = p.log[len(p.log)-1]
		p.log = p.log[:len(p.log)-1]
		p.parent[rec.child] = rec.child
		p.size[rec.root] = rec.rootSize
		p.comps++
	}
}

func (p *PersistentUnionFind) check(x int) {
	if x < 0 || x >= len(p.parent) {
		panic(fmt.Sprintf("unionfind: element %d out of range [0,%d)", x, len(p.parent)))
	}
}
