package dagdp

import "fmt"

// Solve discovers the state graph reachable from starts and evaluates
// every discovered state in ascending rank order, returning the full
// state→value mapping. Equivalent to SolvePlan(Prepare(rules, starts),
// rules) without keeping the Plan.
//
// An empty start set yields an empty map. Panics as documented on
// Prepare and SolvePlan.
func Solve[S comparable, V any](rules PullRules[S, V], starts []S, opts ...Option) map[S]V {
	if rules == nil {
		panic(panicNilRules)
	}

	return SolvePlan(Prepare[S](rules, starts, opts...), rules)
}

// SolvePlan evaluates a prepared Plan against rules, walking the rank
// buckets in ascending order. For each state, either Base supplies the
// value directly (when rules implements Baser and Base reports true), or
// Combine receives the neighbor values in Neighbors order — every one
// already final, because neighbors rank strictly lower.
//
// Each state's value is written exactly once and never mutated. The same
// Plan may be evaluated repeatedly against different rules values sharing
// the topology.
//
// Panics if plan or rules is nil, or — when the rank invariant was
// broken during discovery — on the first dependency value that is
// missing at combine time.
func SolvePlan[S comparable, V any](plan *Plan[S], rules PullRules[S, V]) map[S]V {
	// 1. Validate inputs.
	if plan == nil {
		panic("dagdp: plan must not be nil")
	}
	if rules == nil {
		panic(panicNilRules)
	}

	// 2. Detect the optional Base short-circuit once.
	baser, hasBase := rules.(Baser[S, V])

	// 3. Evaluate buckets bottom-up.
	result := make(map[S]V, plan.Size())
	var (
		s, nb  S
		nbs    []S
		deps   []V
		v      V
		ok     bool
		bucket []S
	)
	for _, bucket = range plan.buckets {
		for _, s = range bucket {
			// Declared boundary value wins over combination.
			if hasBase {
				if v, ok = baser.Base(s); ok {
					result[s] = v
					continue
				}
			}

			// Gather the already-final neighbor values, in order.
			nbs = plan.adj[s]
			deps = make([]V, len(nbs))
			for i := range nbs {
				nb = nbs[i]
				if v, ok = result[nb]; !ok {
					panic(fmt.Sprintf("%s (state %v needs %v)", panicMissingDep, s, nb))
				}
				deps[i] = v
			}

			result[s] = rules.Combine(s, deps)
		}
	}

	return result
}
