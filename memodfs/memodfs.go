package memodfs

// walker carries one Search invocation: the visited set shared by all
// starts and the answers collected so far.
type walker[S comparable, A any] struct {
	rules   Rules[S, A]
	visited map[S]struct{}
	goals   []A
	first   bool
}

// Search explores every state reachable from starts, visiting each at
// most once, and returns the collected answers of all goal states in
// depth-first discovery order. With WithFirstGoal, the search stops
// after the first goal and returns just that answer.
//
// No goals, or an empty start set, yields an empty result. Panics if
// rules is nil. Cycles are safe: the visited set cuts them.
func Search[S comparable, A any](rules Rules[S, A], starts []S, opts ...Option) []A {
	// 1. Guard the contract.
	if rules == nil {
		panic(panicNilRules)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, opt := range opts {
		opt(&dopts)
	}

	// 3. Walk each start against one shared visited set.
	w := &walker[S, A]{
		rules:   rules,
		visited: make(map[S]struct{}),
		first:   dopts.FirstGoal,
	}
	for _, s := range starts {
		if w.walk(s) {
			break
		}
	}

	return w.goals
}

// walk reports whether the search is finished early.
func (w *walker[S, A]) walk(s S) bool {
	if _, seen := w.visited[s]; seen {
		return false
	}
	w.visited[s] = struct{}{}

	if w.rules.Goal(s) {
		w.goals = append(w.goals, w.rules.Collect(s))
		if w.first {
			return true
		}
	}

	for _, next := range w.rules.Successors(s) {
		if w.walk(next) {
			return true
		}
	}

	return false
}

// bestWalker carries one Best invocation.
type bestWalker[S comparable, A any] struct {
	rules   BestRules[S, A]
	visited map[S]struct{}
	best    A
	found   bool
}

// Best explores every state reachable from starts and returns the best
// goal answer under rules.Better, plus whether any goal was reached at
// all. The first goal seeds the running best; later goals replace it
// only when Better says so.
//
// Panics if rules is nil.
func Best[S comparable, A any](rules BestRules[S, A], starts []S) (A, bool) {
	if rules == nil {
		panic(panicNilRules)
	}

	b := &bestWalker[S, A]{
		rules:   rules,
		visited: make(map[S]struct{}),
	}
	for _, s := range starts {
		b.walk(s)
	}

	return b.best, b.found
}

func (b *bestWalker[S, A]) walk(s S) {
	if _, seen := b.visited[s]; seen {
		return
	}
	b.visited[s] = struct{}{}

	if b.rules.Goal(s) {
		val := b.rules.Collect(s)
		if !b.found || b.rules.Better(val, b.best) {
			b.best, b.found = val, true
		}
	}

	for _, next := range b.rules.Successors(s) {
		b.walk(next)
	}
}
