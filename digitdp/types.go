// Package digitdp defines the rules contract and error values for
// digit-by-digit counting DP over decimal numerals.
package digitdp

import "errors"

// Mod is the prime every count is reduced by.
const Mod = 1_000_000_007

var (
	// ErrEmptyNumeral is returned by Count when upper is the empty string.
	ErrEmptyNumeral = errors.New("digitdp: upper numeral must not be empty")

	// ErrNonDigit is returned by Count when upper contains a byte outside
	// '0'..'9'.
	ErrNonDigit = errors.New("digitdp: upper numeral must contain decimal digits only")
)

const panicNilRules = "digitdp: rules must not be nil"

// Rules describes one counting problem: which digit choices are
// admissible at each position, and which fully written numerals count.
// Implementations must be pure; the engine memoizes on (position, tight,
// state) and assumes repeated calls agree.
type Rules[S comparable] interface {
	// Init returns the state before any digit has been written.
	Init() S

	// Next returns the state after writing digit (0..9) at position pos
	// (0 is the most significant), and whether that digit is admissible
	// there. Returning false prunes the branch.
	Next(pos, digit int, state S) (S, bool)

	// Accept reports whether a numeral ending in this state is counted.
	Accept(state S) bool
}
