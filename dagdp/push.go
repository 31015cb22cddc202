package dagdp

// Propagate discovers the state graph reachable from sources and runs
// push-style propagation: Init seeds whichever discovered states report a
// starting value, then states are drained in ascending rank order, each
// pushing Trans(from, to, acc) along every outgoing edge into its
// successors' accumulators via Op.
//
// Because a state is drained strictly before every higher-ranked
// successor, its accumulator is final when read. Same-rank drain order is
// unspecified, so Op must be commutative as well as associative; with
// that, the result is independent of edge arrival order.
//
// The returned map holds one value for every discovered state; states
// that were never seeded and never reached hold Identity(). An empty
// source set yields an empty map.
//
// Panics if rules is nil, if Rank returns a negative value, or — with
// WithRankCheck — on the first edge whose successor does not rank
// strictly above its source.
func Propagate[S comparable, V any](rules PushRules[S, V], sources []S, opts ...Option) map[S]V {
	// 1. Validate the contract value.
	if rules == nil {
		panic(panicNilRules)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Discover with push-direction rank semantics.
	plan := discover[S](rules, sources, dopts, false)

	// 4. Seed accumulators from Init across all discovered states.
	acc := make(map[S]V, plan.Size())
	var (
		s, t   S
		v, cur V
		ok     bool
		bucket []S
	)
	for _, bucket = range plan.buckets {
		for _, s = range bucket {
			if v, ok = rules.Init(s); ok {
				acc[s] = v
			}
		}
	}

	// 5. Drain buckets in ascending rank, pushing contributions forward.
	for _, bucket = range plan.buckets {
		for _, s = range bucket {
			if cur, ok = acc[s]; !ok {
				cur = rules.Identity()
				// Materialize so the result covers every state.
				acc[s] = cur
			}
			for _, t = range plan.adj[s] {
				if v, ok = acc[t]; ok {
					acc[t] = rules.Op(v, rules.Trans(s, t, cur))
				} else {
					acc[t] = rules.Op(rules.Identity(), rules.Trans(s, t, cur))
				}
			}
		}
	}

	return acc
}
