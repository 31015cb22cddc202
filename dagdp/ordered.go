package dagdp

// SolveOrdered evaluates a DP over a caller-supplied evaluation order,
// the degenerate pull form for problems whose topological order is
// already known (positions left to right, layers front to back). No
// discovery runs and no rank is consulted: order IS the schedule.
//
// For each state in order, dependency values are read from the states
// evaluated so far; a dependency not yet evaluated (or absent from order
// entirely) reads as Boundary(). States should appear in order once — a
// repeated state is re-evaluated and overwrites its previous value.
//
// An empty order yields an empty map. Panics if rules is nil.
func SolveOrdered[S comparable, V any](rules OrderedRules[S, V], order []S) map[S]V {
	if rules == nil {
		panic(panicNilRules)
	}

	result := make(map[S]V, len(order))
	var (
		s, d S
		deps []S
		vals []V
		v    V
		ok   bool
	)
	for _, s = range order {
		deps = rules.Dependencies(s)
		vals = make([]V, len(deps))
		for i := range deps {
			d = deps[i]
			if v, ok = result[d]; ok {
				vals[i] = v
			} else {
				vals[i] = rules.Boundary()
			}
		}
		result[s] = rules.Combine(s, vals)
	}

	return result
}
