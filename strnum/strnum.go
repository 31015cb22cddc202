// Package strnum provides contest-style verdict and numeral helpers.
package strnum

import "fmt"

// YesNo renders a boolean verdict as "Yes" or "No".
func YesNo(ok bool) string {
	if ok {
		return "Yes"
	}

	return "No"
}

// YesNoUpper renders a boolean verdict as "YES" or "NO".
func YesNoUpper(ok bool) string {
	if ok {
		return "YES"
	}

	return "NO"
}

// Digits decomposes n into base-b digits, most significant first.
// Digits(0, b) returns [0]. Panics if n is negative or base is outside
// [2,36].
func Digits(n int64, base int) []int {
	// 1. Validate numeral parameters.
	checkBase(base)
	if n < 0 {
		panic(fmt.Sprintf("strnum: Digits: n must be ≥ 0, got %d", n))
	}

	// 2. Peel digits least-significant first.
	if n == 0 {
		return []int{0}
	}
	var rev []int
	for n > 0 {
		rev = append(rev, int(n%int64(base)))
		n /= int64(base)
	}

	// 3. Reverse into most-significant-first order.
	out := make([]int, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}

	return out
}

// FromDigits folds base-b digits (most significant first) back into an
// integer, the inverse of Digits. An empty slice folds to 0. Panics on an
// invalid base or on a digit outside [0,base).
func FromDigits(digits []int, base int) int64 {
	checkBase(base)

	var n int64
	for i, d := range digits {
		if d < 0 || d >= base {
			panic(fmt.Sprintf("strnum: FromDigits: digit %d at index %d outside [0,%d)", d, i, base))
		}
		n = n*int64(base) + int64(d)
	}

	return n
}

// IsPalindrome reports whether s reads the same forward and backward,
// compared rune-wise. The empty string is a palindrome.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}

	return true
}

// FormatBits renders the low width bits of n as a zero-padded binary
// string, most significant first. Width 0 renders as "". Panics if width
// is negative or exceeds 64.
func FormatBits(n uint64, width int) string {
	if width < 0 || width > 64 {
		panic(fmt.Sprintf("strnum: FormatBits: width must be in [0,64], got %d", width))
	}
	if width == 0 {
		return ""
	}
	if width < 64 {
		n &= 1<<width - 1
	}

	return fmt.Sprintf("%0*b", width, n)
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("strnum: base must be in [2,36], got %d", base))
	}
}
