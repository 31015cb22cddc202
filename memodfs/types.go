// Package memodfs defines the search contracts and options for memoized
// depth-first search over implicit graphs.
package memodfs

// Rules describes one search problem: how states expand, which states
// are goals, and what a goal reports back.
type Rules[S comparable, A any] interface {
	// Successors returns the states reachable one step from s. Called at
	// most once per visited state.
	Successors(s S) []S

	// Goal reports whether s is a goal state.
	Goal(s S) bool

	// Collect converts a goal state into its reported answer.
	Collect(s S) A
}

// BestRules extends Rules with an ordering over answers, for searches
// that keep only the best goal found.
type BestRules[S comparable, A any] interface {
	Rules[S, A]

	// Better reports whether a should replace b as the running best.
	Better(a, b A) bool
}

const panicNilRules = "memodfs: rules must not be nil"

// Option configures search behavior.
type Option func(*Options)

// Options holds the configurable search parameters.
type Options struct {
	// FirstGoal, if true, stops the whole search as soon as one goal has
	// been collected. Default false: the search is exhaustive.
	FirstGoal bool
}

// DefaultOptions returns the search defaults: exhaustive traversal.
func DefaultOptions() Options {
	return Options{
		FirstGoal: false,
	}
}

// WithFirstGoal returns an Option that stops the search at the first
// goal found.
func WithFirstGoal() Option {
	return func(o *Options) {
		o.FirstGoal = true
	}
}
