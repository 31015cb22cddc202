package strnum_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algokata/algokata/strnum"
)

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", strnum.YesNo(true))
	assert.Equal(t, "No", strnum.YesNo(false))
	assert.Equal(t, "YES", strnum.YesNoUpper(true))
	assert.Equal(t, "NO", strnum.YesNoUpper(false))
}

func TestDigits(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		base int
		want []int
	}{
		{"zero", 0, 10, []int{0}},
		{"decimal", 1234, 10, []int{1, 2, 3, 4}},
		{"binary", 13, 2, []int{1, 1, 0, 1}},
		{"hex", 255, 16, []int{15, 15}},
		{"base36", 36, 36, []int{1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strnum.Digits(tc.n, tc.base))
		})
	}
}

func TestFromDigits_InvertsDigits(t *testing.T) {
	for _, base := range []int{2, 7, 10, 36} {
		for n := int64(0); n < 200; n++ {
			assert.Equal(t, n, strnum.FromDigits(strnum.Digits(n, base), base))
		}
	}
	assert.Equal(t, int64(0), strnum.FromDigits(nil, 10))
}

func TestDigits_Panics(t *testing.T) {
	assert.Panics(t, func() { strnum.Digits(-1, 10) })
	assert.Panics(t, func() { strnum.Digits(5, 1) })
	assert.Panics(t, func() { strnum.Digits(5, 37) })
	assert.Panics(t, func() { strnum.FromDigits([]int{5}, 5) })
	assert.Panics(t, func() { strnum.FromDigits([]int{-1}, 10) })
}

func TestIsPalindrome(t *testing.T) {
	assert.True(t, strnum.IsPalindrome(""))
	assert.True(t, strnum.IsPalindrome("a"))
	assert.True(t, strnum.IsPalindrome("12321"))
	assert.True(t, strnum.IsPalindrome("たけやぶやけた"), "multi-byte runes compare rune-wise")
	assert.False(t, strnum.IsPalindrome("12345"))
	assert.False(t, strnum.IsPalindrome("ab"))
}

func TestFormatBits(t *testing.T) {
	assert.Equal(t, "0101", strnum.FormatBits(5, 4))
	assert.Equal(t, "101", strnum.FormatBits(0b11101, 3), "high bits truncated")
	assert.Equal(t, "", strnum.FormatBits(9, 0))

	wide := strnum.FormatBits(5, 31)
	assert.Len(t, wide, 31)
	assert.True(t, strings.HasSuffix(wide, "101"))
	assert.Equal(t, strings.Repeat("0", 28), wide[:28])
	assert.Panics(t, func() { strnum.FormatBits(1, -1) })
	assert.Panics(t, func() { strnum.FormatBits(1, 65) })
}
