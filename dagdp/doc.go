// Package dagdp implements generic dynamic programming over caller-defined
// state DAGs: lazy state discovery, rank-bucketed scheduling, and pull-,
// push-, and order-driven evaluation.
//
// What:
//
//   - Graph: the discovery contract — Rank assigns each state an integer
//     tier, Neighbors lists the states it depends on (pull) or feeds
//     (push). The state graph is implicit: states are explored lazily
//     from the given start set, each visited exactly once.
//   - Prepare / Plan: discovery alone. A Plan freezes the rank buckets
//     and adjacency so one traversal can be evaluated many times against
//     different Combine implementations.
//   - Solve (pull): evaluates states in ascending rank order, handing
//     Combine the already-final values of the state's neighbors, in
//     neighbor order. A state implementing Baser can short-circuit.
//   - Propagate (push): seeds sources via Init, then walks ascending
//     ranks pushing Trans contributions forward, folding arrivals with a
//     commutative monoid (Identity/Op).
//   - SolveOrdered: the degenerate pull form for callers that already
//     hold a valid evaluation order; missing dependencies read as a
//     boundary value instead of being treated as contract violations.
//
// Why:
//   - One rules value describes a whole DP problem; the engine owns
//     traversal, memoization, and evaluation order
//   - Plans split the expensive part (discovery) from the cheap part
//     (evaluation) for repeated solves over one topology
//
// Rank contract: every neighbor of a state must rank strictly lower than
// the state for pull problems, strictly higher for push problems. The
// engine assumes this; WithRankCheck makes discovery verify it and panic
// on the first violation. An unchecked broken rank function surfaces as
// the evaluator's missing-dependency panic at best and silently wrong
// values at worst.
//
// Push callers must supply a genuinely commutative Op: the order in which
// same-rank states push their contributions is unspecified.
//
// Complexity: discovery and both evaluators run in O(S + E) state and
// edge visits plus O(R log R) for R distinct ranks; memory O(S + E).
//
// Errors: no function here returns an error. Precondition violations
// (nil rules, negative rank, missing dependency value, rank-check
// failure) panic with a "dagdp:"-prefixed message. An empty start set, or
// start states whose expansion is empty, yields an empty result map.
// Recursion is not used; discovery is an explicit stack, so only the
// caller's own state space bounds the run.
package dagdp
