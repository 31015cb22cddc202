package digitdp

import "fmt"

// memoKey identifies one solver subproblem: the digit position, whether
// the prefix written so far still equals the bound's prefix, and the
// caller's own state.
type memoKey[S comparable] struct {
	pos   int
	tight bool
	state S
}

// solver carries one Count invocation: the parsed bound, the caller's
// rules, and the memo table. Dropped when Count returns.
type solver[S comparable] struct {
	rules  Rules[S]
	digits []int
	memo   map[memoKey[S]]int
}

// Count returns how many integers in [0, upper] the rules accept,
// modulo Mod. The bound is a decimal numeral string; its length fixes
// the number of digit positions, so leading zeros widen the position
// space without changing the counted range.
//
// Returns ErrEmptyNumeral or ErrNonDigit when upper is not a numeral.
// Panics if rules is nil.
//
// Runs in O(len(upper) * |S| * 10) time and O(len(upper) * |S|) memory,
// where |S| is the number of distinct states the rules can reach.
func Count[S comparable](upper string, rules Rules[S]) (int, error) {
	// 1. Guard the contract.
	if rules == nil {
		panic(panicNilRules)
	}

	// 2. Parse and validate the bound.
	digits, err := parseNumeral(upper)
	if err != nil {
		return 0, err
	}

	// 3. Walk (position, tight, state) with memoization.
	s := &solver[S]{
		rules:  rules,
		digits: digits,
		memo:   make(map[memoKey[S]]int),
	}

	return s.count(0, true, rules.Init()), nil
}

// count returns the number of accepted completions from pos onward.
// tight means every digit so far matched the bound exactly, so the
// current position is capped by the bound's digit; once a smaller digit
// is written the cap is a free 9 forever after.
func (s *solver[S]) count(pos int, tight bool, state S) int {
	if pos == len(s.digits) {
		if s.rules.Accept(state) {
			return 1
		}

		return 0
	}

	key := memoKey[S]{pos: pos, tight: tight, state: state}
	if v, ok := s.memo[key]; ok {
		return v
	}

	lim := 9
	if tight {
		lim = s.digits[pos]
	}

	var (
		total int
		next  S
		ok    bool
	)
	for d := 0; d <= lim; d++ {
		next, ok = s.rules.Next(pos, d, state)
		if !ok {
			continue
		}
		total = (total + s.count(pos+1, tight && d == lim, next)) % Mod
	}
	s.memo[key] = total

	return total
}

// parseNumeral converts a decimal string into its digit values,
// most significant first.
func parseNumeral(upper string) ([]int, error) {
	if upper == "" {
		return nil, ErrEmptyNumeral
	}

	digits := make([]int, len(upper))
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: byte %q at position %d", ErrNonDigit, c, i)
		}
		digits[i] = int(c - '0')
	}

	return digits, nil
}
