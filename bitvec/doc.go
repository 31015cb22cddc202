// Package bitvec implements fixed-width bit vectors backed by a single
// machine word, with MSB-first indexing, wrapping arithmetic, bitwise
// combinators, and exhaustive enumeration of all vectors of a width.
//
// What:
//
//   - BitVec: an immutable value type (width, bits). Bit 0 is the MOST
//     significant of the width bits, matching how "0101" reads on paper.
//   - All(width): lazy ascending enumeration of all 2^width vectors,
//     used for brute-force subset scans.
//
// Why:
//   - Enumerate candidate subsets/assignments in bitmask brute force
//   - Carry per-position boolean state through DP transitions compactly
//   - Render and compare binary strings without slice juggling
//
// Complexity: every operation is O(1) on one word except Bits and String,
// which are O(width); enumeration yields 2^width values.
//
// Errors:
//
//   - Constructors and combinators panic with a "bitvec:"-prefixed message
//     on widths outside [0,63], on out-of-range bit indices, and on width
//     mismatches between operands. No method returns an error.
package bitvec
