package dagdp

import (
	"fmt"
	"sort"
)

// Plan is the frozen result of state discovery: rank-ascending buckets of
// states plus the adjacency recorded for each. Prepare builds one;
// SolvePlan evaluates against it any number of times. A Plan is immutable
// and remains valid as long as the Graph that produced it stays pure.
type Plan[S comparable] struct {
	buckets [][]S     // ascending rank; within a bucket, discovery order
	adj     map[S][]S // state -> cached Neighbors result
}

// Size reports the number of discovered states.
func (p *Plan[S]) Size() int {
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}

	return n
}

// Prepare explores the state graph reachable from starts and freezes the
// traversal as a Plan for pull evaluation. Duplicate and already-reached
// start states are visited once. An empty start set yields an empty Plan.
//
// Panics if g is nil, if Rank returns a negative value, or — with
// WithRankCheck — on the first edge whose neighbor does not rank strictly
// below its state.
func Prepare[S comparable](g Graph[S], starts []S, opts ...Option) *Plan[S] {
	// 1. Validate the contract value.
	if g == nil {
		panic(panicNilRules)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Discover with pull-direction rank semantics.
	return discover(g, starts, dopts, true)
}

// discover walks forward reachability from starts with an explicit stack
// and a seen-set, recording each state's rank bucket and neighbor list.
// Only the bucket consumption order is contractual; the stack order
// across siblings is not.
func discover[S comparable](g Graph[S], starts []S, opts Options, pull bool) *Plan[S] {
	// 1. Pre-size the per-call tables.
	hint := opts.SizeHint
	if hint < len(starts) {
		hint = len(starts)
	}
	seen := make(map[S]bool, hint)
	adj := make(map[S][]S, hint)
	byRank := make(map[int][]S)

	// 2. Seed the worklist with the start states.
	stack := make([]S, len(starts))
	copy(stack, starts)

	// 3. Expand until the frontier is exhausted.
	var (
		s, nb S
		r     int
		nbs   []S
	)
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true

		r = g.Rank(s)
		if r < 0 {
			panic(fmt.Sprintf("dagdp: rank must be ≥ 0, got %d for state %v", r, s))
		}
		byRank[r] = append(byRank[r], s)

		// Neighbors is called exactly once per state; the result is
		// cached for the evaluator.
		nbs = g.Neighbors(s)
		adj[s] = nbs
		for _, nb = range nbs {
			if opts.RankCheck {
				checkEdge(g, s, r, nb, pull)
			}
			if !seen[nb] {
				stack = append(stack, nb)
			}
		}
	}

	// 4. Flatten the rank buckets into ascending order.
	ranks := make([]int, 0, len(byRank))
	for r = range byRank {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)

	buckets := make([][]S, len(ranks))
	for i, rk := range ranks {
		buckets[i] = byRank[rk]
	}

	return &Plan[S]{buckets: buckets, adj: adj}
}

// checkEdge panics when the edge s→nb contradicts the engine's rank
// direction: neighbors rank strictly below their state for pull problems,
// strictly above for push problems.
func checkEdge[S comparable](g Graph[S], s S, sRank int, nb S, pull bool) {
	nbRank := g.Rank(nb)
	if pull && nbRank >= sRank {
		panic(fmt.Sprintf("dagdp: rank check: neighbor %v (rank %d) must rank strictly below state %v (rank %d)",
			nb, nbRank, s, sRank))
	}
	if !pull && nbRank <= sRank {
		panic(fmt.Sprintf("dagdp: rank check: neighbor %v (rank %d) must rank strictly above state %v (rank %d)",
			nb, nbRank, s, sRank))
	}
}
