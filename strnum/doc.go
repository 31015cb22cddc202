// Package strnum collects the small string/number helpers that recur in
// contest output: verdict words, digit decomposition, palindromes, and
// fixed-width binary rendering.
//
// What:
//
//   - YesNo / YesNoUpper: boolean to "Yes"/"No" ("YES"/"NO") verdicts
//   - Digits / FromDigits: non-negative integer to base-b digit slice
//     (most significant first) and back
//   - IsPalindrome: rune-wise palindrome check
//   - FormatBits: zero-padded binary rendering of the low width bits
//
// Errors: converters panic with a "strnum:"-prefixed message on bases
// outside [2,36], negative inputs, digits outside the base, or negative
// widths. Nothing here returns an error.
package strnum
