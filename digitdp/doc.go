// Package digitdp counts integers in [0, upper] that satisfy a
// caller-defined per-digit predicate, where upper is a decimal numeral
// string far too large to enumerate.
//
// What:
//
//   - Rules: the problem contract. Init gives the starting state, Next
//     advances it one digit at a time (or rejects the digit), Accept
//     decides whether a fully written numeral counts.
//   - Count: the engine. It walks the numeral most-significant-digit
//     first, tracking whether the prefix is still pinned to the bound
//     (the tight flag), memoizing each (position, tight, state) triple,
//     and reducing every partial sum modulo Mod.
//
// Why:
//   - Counting over a range like [0, 10^18] is infeasible by iteration;
//     digit DP reduces it to positions x states x 10 digit choices
//   - The caller's state carries exactly the problem-relevant residue
//     (digit sum so far, last digit written, a seen-a-seven flag), so
//     unrelated numerals collapse into shared subproblems
//
// The numeral's length fixes the position count: "007" spans three
// positions but still counts the range [0, 7]. Numbers shorter than the
// bound are represented with leading zero digits, so rules that treat
// "no digit yet" specially should track that in their state rather than
// assume position 0 is the first significant digit.
//
// Complexity: O(len(upper) * |S| * 10) time, O(len(upper) * |S|) memory
// for |S| reachable caller states.
//
// Errors: Count returns ErrEmptyNumeral or ErrNonDigit for a malformed
// bound, and panics if rules is nil. Nothing else fails: a bound of "0"
// still counts the single integer 0.
package digitdp
