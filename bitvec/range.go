package bitvec

// Range enumerates every vector of one width in ascending numeric order.
// Obtain one from All; the zero value is exhausted.
type Range struct {
	width int
	next  uint64
	done  bool
}

// All returns an enumerator over all 2^width vectors of the given width,
// from the all-zero vector upward. Width 0 yields exactly one (empty)
// vector. Panics if width is outside [0, MaxWidth].
//
// Widths near MaxWidth enumerate astronomically many values; callers are
// expected to stop early or keep width small.
func All(width int) *Range {
	checkWidth(width)

	return &Range{width: width}
}

// Next returns the following vector and true, or the zero BitVec and
// false once the enumeration is exhausted.
func (r *Range) Next() (BitVec, bool) {
	if r.done {
		return BitVec{}, false
	}

	v := BitVec{width: r.width, bits: r.next}
	if r.next == mask(r.width) {
		// Top value emitted; the counter would wrap.
		r.done = true
	} else {
		r.next++
	}

	return v, true
}
