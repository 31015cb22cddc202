// Package bitvec provides fixed-width, MSB-first bit vectors with
// wrapping arithmetic and exhaustive enumeration.
package bitvec

import (
	"fmt"
	"math/bits"
)

// MaxWidth is the largest supported vector width. One word minus one bit
// keeps every mask and every Add carry inside uint64 range.
const MaxWidth = 63

// BitVec is an immutable fixed-width bit vector. The zero value is the
// empty vector of width 0. Index 0 addresses the most significant of the
// width bits, so New(4) with bit 0 set prints as "1000".
type BitVec struct {
	width int
	bits  uint64
}

// New returns the all-zero vector of the given width.
// Panics if width is outside [0, MaxWidth].
func New(width int) BitVec {
	checkWidth(width)

	return BitVec{width: width}
}

// FromUint returns the vector of the given width holding the low width
// bits of v; higher bits of v are discarded. Panics on an invalid width.
func FromUint(width int, v uint64) BitVec {
	checkWidth(width)

	return BitVec{width: width, bits: v & mask(width)}
}

// Width reports the vector's fixed width in bits.
func (b BitVec) Width() int { return b.width }

// Uint returns the vector's numeric value.
func (b BitVec) Uint() uint64 { return b.bits }

// Bit reports whether bit i is set, counting from the most significant.
// Panics if i is out of range.
func (b BitVec) Bit(i int) bool {
	b.checkIndex(i)

	return b.bits>>(b.width-1-i)&1 == 1
}

// SetBit returns a copy of b with bit i (MSB-first) set to on.
// Panics if i is out of range.
func (b BitVec) SetBit(i int, on bool) BitVec {
	b.checkIndex(i)

	pos := uint64(1) << (b.width - 1 - i)
	if on {
		b.bits |= pos
	} else {
		b.bits &^= pos
	}

	return b
}

// Bits materializes the vector as a []bool, most significant first.
func (b BitVec) Bits() []bool {
	out := make([]bool, b.width)
	for i := range out {
		out[i] = b.bits>>(b.width-1-i)&1 == 1
	}

	return out
}

// OnesCount returns the number of set bits.
func (b BitVec) OnesCount() int { return bits.OnesCount64(b.bits) }

// Add returns the wrapping sum of b and o within their width: overflow
// past the top bit is discarded. Panics if widths differ.
func (b BitVec) Add(o BitVec) BitVec {
	b.checkSameWidth(o)

	return BitVec{width: b.width, bits: (b.bits + o.bits) & mask(b.width)}
}

// Xor returns the bitwise exclusive-or of b and o. Panics if widths differ.
func (b BitVec) Xor(o BitVec) BitVec {
	b.checkSameWidth(o)

	return BitVec{width: b.width, bits: b.bits ^ o.bits}
}

// And returns the bitwise conjunction of b and o. Panics if widths differ.
func (b BitVec) And(o BitVec) BitVec {
	b.checkSameWidth(o)

	return BitVec{width: b.width, bits: b.bits & o.bits}
}

// Or returns the bitwise disjunction of b and o. Panics if widths differ.
func (b BitVec) Or(o BitVec) BitVec {
	b.checkSameWidth(o)

	return BitVec{width: b.width, bits: b.bits | o.bits}
}

// Not returns the complement of b within its width.
func (b BitVec) Not() BitVec {
	return BitVec{width: b.width, bits: ^b.bits & mask(b.width)}
}

// String renders the vector as a zero-padded binary string, MSB first.
// The empty (width-0) vector renders as "".
func (b BitVec) String() string {
	if b.width == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", b.width, b.bits)
}

// mask returns width consecutive low one-bits.
func mask(width int) uint64 { return 1<<width - 1 }

func checkWidth(width int) {
	if width < 0 || width > MaxWidth {
		panic(fmt.Sprintf("bitvec: width must be in [0,%d], got %d", MaxWidth, width))
	}
}

func (b BitVec) checkIndex(i int) {
	if i < 0 || i >= b.width {
		panic(fmt.Sprintf("bitvec: bit %d out of range [0,%d)", i, b.width))
	}
}

func (b BitVec) checkSameWidth(o BitVec) {
	if b.width != o.width {
		panic(fmt.Sprintf("bitvec: width mismatch: %d vs %d", b.width, o.width))
	}
}
