package sliceutil

import (
	"github.com/killvxk/ustl/predalgo"
	"github.com/killvxk/ustl/ranges"
)

// MismatchIndex walks a and b in lock-step while comp holds and returns
// the index of the first position where it fails, or len(a) if a is
// exhausted first. b must have at least as many elements as a; that is
// the caller's contract and is not checked.
func MismatchIndex[T, U any](a []T, b []U, comp func(a T, b U) bool) int {
	firstA, lastA := ranges.FromSlice(a)
	at, _ := predalgo.Mismatch(firstA, lastA, ranges.Begin(b), comp)
	return at.Index()
}

// Equal reports whether every element of a compares equal under comp to
// the element of b at the same index. The length contract of
// [MismatchIndex] applies.
func Equal[T, U any](a []T, b []U, comp func(a T, b U) bool) bool {
	firstA, lastA := ranges.FromSlice(a)
	return predalgo.Equal(firstA, lastA, ranges.Begin(b), comp)
}
