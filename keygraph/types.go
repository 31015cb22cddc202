// Package keygraph defines the contracts and options for key-addressed
// adjacency graphs.
package keygraph

// Arc is one outgoing adjacency entry: the dense index of the head node
// and the payload carried on the edge.
type Arc[E any] struct {
	To   int
	Edge E
}

// FoldRules folds subtree values bottom-up through TreeDP.
type FoldRules[E, N, V any] interface {
	// Merge combines the values of two sibling subtrees.
	Merge(a, b V) V

	// Finish produces the value a node hands its parent across edge.
	// acc is the merged value of the node's children; ok is false at a
	// leaf. payload carries the node's payload when one was set.
	Finish(acc V, ok bool, payload N, hasPayload bool, edge E) V
}

const panicNilRules = "keygraph: rules must not be nil"

// Option configures graph construction. Use with New.
type Option func(*Options)

// Options holds the configurable graph parameters.
type Options struct {
	// Directed, if true, makes Add insert one arc instead of a
	// symmetric pair. Default false.
	Directed bool
}

// DefaultOptions returns the graph defaults: undirected edges.
func DefaultOptions() Options {
	return Options{
		Directed: false,
	}
}

// WithDirected returns an Option that makes every added edge one-way.
func WithDirected() Option {
	return func(o *Options) {
		o.Directed = true
	}
}
