// Package treedp defines the rules contract, options, and sentinel errors
// for all-direction tree DP.
package treedp

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeCount is returned by New when the node count is negative.
	ErrNodeCount = errors.New("treedp: node count must be ≥ 0")

	// ErrEdgeEndpoint is returned by New when an edge endpoint falls
	// outside [0, n).
	ErrEdgeEndpoint = errors.New("treedp: edge endpoint out of range")

	// ErrEdgeCount is returned by New when the edge count is not exactly
	// n-1 (for n > 0); any other count cannot be a tree.
	ErrEdgeCount = errors.New("treedp: a tree on n nodes needs exactly n-1 edges")

	// ErrRootRange is returned by New when WithRoot names a node outside
	// [0, n).
	ErrRootRange = errors.New("treedp: root out of range")
)

const panicNilRules = "treedp: rules must not be nil"

// Rules describes one re-rooting problem over values of type V.
// Merge with Identity must form a monoid: Solve folds child aggregates in
// neighbor-list order and splits the fold with prefix/suffix sums, so
// associativity is load-bearing.
type Rules[V any] interface {
	// Identity is Merge's neutral element, the aggregate of no children.
	Identity() V

	// Merge folds two sibling aggregates into one. Must be associative
	// with Identity as neutral element.
	Merge(a, b V) V

	// Finish closes node over the merged aggregates of its children
	// (for the subtree pass) or of all its neighbors but one (for the
	// re-rooting pass), producing the value seen through the edge above
	// node.
	Finish(node int, acc V) V
}

// Option configures tree construction. Use with New.
type Option func(*Options)

// Options holds the configurable tree parameters.
type Options struct {
	// Root is the traversal root for both passes. Any node works — for
	// lawful Rules the answers are root-invariant — so this matters
	// mainly for tests and debugging. Default 0.
	Root int
}

// DefaultOptions returns the construction defaults: traversal root 0.
func DefaultOptions() Options {
	return Options{Root: 0}
}

// WithRoot returns an Option that sets the traversal root.
// Panics immediately if r is negative; New reports ErrRootRange when r
// is beyond the node count.
func WithRoot(r int) Option {
	if r < 0 {
		panic(fmt.Sprintf("treedp: WithRoot: root must be ≥ 0, got %d", r))
	}

	return func(o *Options) {
		o.Root = r
	}
}
