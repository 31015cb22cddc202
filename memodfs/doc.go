// Package memodfs runs memoized depth-first search over implicit state
// graphs: the caller describes expansion and goals, the package owns
// traversal and deduplication.
//
// What:
//
//   - Rules: Successors expands a state, Goal marks the interesting
//     ones, Collect turns a goal state into its reported answer.
//   - Search: visits everything reachable from the start set exactly
//     once and returns all collected answers; WithFirstGoal turns it
//     into an existence check that stops at the first hit.
//   - Best: the same walk keeping only the best answer under a
//     caller-supplied ordering, reporting whether any goal was seen.
//
// Why:
//   - Reachability questions over puzzle-style state spaces (jug
//     states, position/mask pairs, residues) need a visited set far
//     more than they need path reconstruction
//   - One rules value holds the whole problem, so variants differ only
//     in their Goal or Better implementation
//
// The walk is recursive; depth is bounded by the longest simple path in
// the state space. Cycles are cut by the visited set, so cyclic graphs
// terminate, but a pathological linear space can exhaust the stack.
//
// Complexity: O(S + E) state visits and edge expansions, memory O(S)
// for the visited set plus collected answers.
//
// Errors: none returned. A nil rules value panics; no reachable goal
// yields an empty slice (Search) or a false flag (Best).
package memodfs
