package sliceutil

import (
	"github.com/killvxk/ustl/predalgo"
	"github.com/killvxk/ustl/ranges"
)

// CopyIf returns a new slice holding, in their original order, the
// elements that satisfy the predicate. The input is not modified.
func CopyIf[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	first, last := ranges.FromSlice(collection)
	predalgo.CopyIf(first, last, ranges.AppendTo(&res), predicate)
	return res
}

// ReplaceIf overwrites, in place, every element that satisfies the
// predicate with newValue.
func ReplaceIf[T any](collection []T, predicate func(T) bool, newValue T) {
	if len(collection) == 0 {
		return
	}
	first, last := ranges.FromSlice(collection)
	predalgo.ReplaceIf(first, last, predicate, newValue)
}

// RemoveIf compacts the slice in place, dropping every element that
// satisfies the predicate, and returns the shortened slice. Retained
// elements keep their relative order; the original backing array is
// reused with zero allocation.
// Note: It modifies the underlying array of the original slice.
func RemoveIf[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return collection
	}
	first, last := ranges.FromSlice(collection)
	end := predalgo.RemoveIf(first, last, predicate)

	// allow GC to reclaim memory
	clear(collection[end.Index():])

	return collection[:end.Index()]
}
