// Package unionfind provides disjoint-set structures with union by size,
// path compression, component counting, and group extraction.
package unionfind

import "fmt"

// UnionFind maintains a partition of {0,…,n-1} into disjoint sets.
// The zero value is not usable; construct with New.
//
// Union by size keeps trees shallow; Find applies iterative path
// compression (grandparent shortcutting), so a long chain flattens as it
// is traversed. All operations are amortized near O(1).
type UnionFind struct {
	parent []int // parent[i] is i's parent; parent[root] == root
	size   []int // size[root] is the element count of root's set; stale for non-roots
	comps  int   // number of live components
}

// New returns a UnionFind over n singleton sets {0},…,{n-1}.
// Panics if n is negative. n == 0 is allowed and yields an empty structure.
func New(n int) *UnionFind {
	// 1. Validate requested universe size.
	if n < 0 {
		panic(fmt.Sprintf("unionfind: New: n must be ≥ 0, got %d", n))
	}

	// 2. Allocate parent and size slices in one pass.
	u := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		comps:  n,
	}
	for i := 0; i < n; i++ {
		u.parent[i] = i
		u.size[i] = 1
	}

	return u
}

// Len reports the number of elements in the universe.
func (u *UnionFind) Len() int { return len(u.parent) }

// Count reports the number of disjoint sets currently present.
func (u *UnionFind) Count() int { return u.comps }

// Find returns the canonical representative (root) of x's set.
// Panics if x is out of range.
func (u *UnionFind) Find(x int) int {
	u.check(x)

	// Walk to the root, pointing each visited node at its grandparent.
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Unite merges the sets containing x and y.
// Returns true if a merge happened, false if x and y were already together.
// Panics if x or y is out of range.
func (u *UnionFind) Unite(x, y int) bool {
	// 1. Resolve both roots (check is done inside Find).
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}

	// 2. Attach the smaller tree under the larger root.
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	u.comps--

	return true
}

// Same reports whether x and y belong to the same set.
// Panics if x or y is out of range.
func (u *UnionFind) Same(x, y int) bool {
	return u.Find(x) == u.Find(y)
}

// Size returns the number of elements in x's set.
// Panics if x is out of range.
func (u *UnionFind) Size(x int) int {
	return u.size[u.Find(x)]
}

// Groups returns the current partition as a map from each root to the
// sorted-by-insertion (ascending element) list of its members.
// The result is a fresh snapshot; mutating it does not affect the structure.
func (u *UnionFind) Groups() map[int][]int {
	groups := make(map[int][]int, u.comps)
	var r int
	for i := 0; i < len(u.parent); i++ {
		r = u.Find(i)
		groups[r] = append(groups[r], i)
	}

	return groups
}

// check panics with a stable message when x falls outside the universe.
func (u *UnionFind) check(x int) {
	if x < 0 || x >= len(u.parent) {
		panic(fmt.Sprintf("unionfind: element %d out of range [0,%d)", x, len(u.parent)))
	}
}
