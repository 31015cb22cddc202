// Package dagdp defines the rules contracts and options for DAG dynamic
// programming: state graphs, pull/push rule sets, and engine options.
package dagdp

import "fmt"

// Graph describes a caller's implicit state graph. Implementations must
// be pure: repeated calls for one state must agree, because discovery
// caches both answers the first time it sees the state.
type Graph[S comparable] interface {
	// Rank returns the state's evaluation tier, a non-negative integer.
	// Every neighbor must rank strictly below the state (pull problems)
	// or strictly above it (push problems).
	Rank(s S) int

	// Neighbors returns the states adjacent in the dependency direction:
	// the states s pulls values from, or pushes contributions to.
	// Called exactly once per discovered state; the returned slice is
	// retained by the engine and must not be mutated afterwards.
	Neighbors(s S) []S
}

// PullRules describes one pull-style DP problem: a state's value is
// combined from the already-evaluated values of its neighbors.
type PullRules[S comparable, V any] interface {
	Graph[S]

	// Combine folds the values of s's neighbors into s's own value.
	// deps holds one value per neighbor, in Neighbors order, each fully
	// evaluated before this call.
	Combine(s S, deps []V) V
}

// Baser is an optional extension of PullRules: a state for which Base
// returns (v, true) takes v directly and its Combine is never called.
// Declared boundary states short-circuit this way.
type Baser[S comparable, V any] interface {
	Base(s S) (V, bool)
}

// PushRules describes one push-style DP problem: each state pushes a
// contribution along every outgoing edge, and arrivals at a state are
// folded with a commutative monoid.
type PushRules[S comparable, V any] interface {
	Graph[S]

	// Identity is the monoid's neutral element, the value of any state
	// that is neither seeded nor reached.
	Identity() V

	// Op folds two accumulated values. It must be associative and
	// commutative: arrival order of contributions is unspecified.
	Op(a, b V) V

	// Init seeds s with a starting value. Non-source states return
	// (zero, false).
	Init(s S) (V, bool)

	// Trans computes the contribution pushed along the edge from→to,
	// given from's accumulated value.
	Trans(from, to S, v V) V
}

// OrderedRules describes a DP evaluated in a caller-supplied order, with
// a boundary value standing in for dependencies outside the order.
type OrderedRules[S comparable, V any] interface {
	// Dependencies returns the states whose values s combines. A
	// dependency that has not been evaluated reads as Boundary().
	Dependencies(s S) []S

	// Combine folds dependency values into s's value, in Dependencies
	// order.
	Combine(s S, deps []V) V

	// Boundary is the stand-in value for never-evaluated dependencies.
	Boundary() V
}

// Panic messages shared by the engines. The missing-dependency message is
// the contract from PullRules: it fires only when the rank invariant was
// broken without WithRankCheck active.
const (
	panicNilRules   = "dagdp: rules must not be nil"
	panicMissingDep = "dagdp: child DP value must exist before parent"
)

// Option configures engine behavior. Use with Solve, Prepare, or
// Propagate.
type Option func(*Options)

// Options holds the configurable engine parameters.
type Options struct {
	// RankCheck, if true, verifies during discovery that every edge
	// respects the rank direction of the engine in use, panicking on the
	// first violation. Default false.
	RankCheck bool

	// SizeHint pre-sizes the discovery maps for callers that know the
	// approximate state count. 0 means no hint.
	SizeHint int
}

// DefaultOptions returns the engine defaults: no rank checking, no size
// hint.
func DefaultOptions() Options {
	return Options{
		RankCheck: false,
		SizeHint:  0,
	}
}

// WithRankCheck returns an Option that enables rank-direction
// verification during discovery.
func WithRankCheck() Option {
	return func(o *Options) {
		o.RankCheck = true
	}
}

// WithSizeHint returns an Option that pre-sizes internal maps for
// approximately n states. Panics if n is negative.
func WithSizeHint(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dagdp: WithSizeHint: n must be ≥ 0, got %d", n))
	}

	return func(o *Options) {
		o.SizeHint = n
	}
}
