package sliceutil

import (
	"github.com/killvxk/ustl/predalgo"
	"github.com/killvxk/ustl/ranges"
)

// LowerBound returns the index of the leftmost position at which value
// could be inserted into the sorted slice without breaking the ordering.
// The slice must be sorted under comp.
func LowerBound[T any](collection []T, value T, comp func(a, b T) bool) int {
	first, last := ranges.FromSlice(collection)
	return predalgo.LowerBound(first, last, value, comp).Index()
}

// UpperBound returns the index of the rightmost valid insertion position
// for value in the sorted slice.
func UpperBound[T any](collection []T, value T, comp func(a, b T) bool) int {
	first, last := ranges.FromSlice(collection)
	return predalgo.UpperBound(first, last, value, comp).Index()
}

// EqualRange returns the index pair [lo, hi) delimiting the run of
// elements equivalent to value in the sorted slice. lo == hi when nothing
// matches.
func EqualRange[T any](collection []T, value T, comp func(a, b T) bool) (int, int) {
	first, last := ranges.FromSlice(collection)
	lo, hi := predalgo.EqualRange(first, last, value, comp)
	return lo.Index(), hi.Index()
}

// BinarySearch reports whether the sorted slice contains an element
// equivalent to value under comp.
func BinarySearch[T any](collection []T, value T, comp func(a, b T) bool) bool {
	first, last := ranges.FromSlice(collection)
	return predalgo.BinarySearch(first, last, value, comp)
}
