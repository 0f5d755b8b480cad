package predalgo

import "github.com/killvxk/ustl/ranges"

// Mismatch walks [firstA, lastA) and the range starting at firstB in
// lock-step while comp(a, b) holds, returning the pair of cursors at the
// first position where it fails, or (lastA, counterpart) when the first
// range is exhausted. The second range must have at least as many elements
// remaining as the first; its end is never checked.
func Mismatch[T, U any, CA ranges.Cursor[CA, T], CB ranges.Cursor[CB, U]](
	firstA, lastA CA, firstB CB, comp func(a T, b U) bool,
) (CA, CB) {
	for !firstA.Equal(lastA) && comp(firstA.Value(), firstB.Value()) {
		firstA = firstA.Next()
		firstB = firstB.Next()
	}
	return firstA, firstB
}

// Equal reports whether every element of [firstA, lastA) compares equal
// under comp to its counterpart starting at firstB. It short-circuits on
// the first inequality. The length precondition of [Mismatch] applies.
func Equal[T, U any, CA ranges.Cursor[CA, T], CB ranges.Cursor[CB, U]](
	firstA, lastA CA, firstB CB, comp func(a T, b U) bool,
) bool {
	at, _ := Mismatch(firstA, lastA, firstB, comp)
	return at.Equal(lastA)
}
