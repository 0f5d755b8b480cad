// Package sliceutil exposes the predalgo algorithms in index-returning form
// for plain slices, so callers that never leave []T do not have to touch
// cursors. Every function delegates to predalgo over a ranges.SliceCursor.
package sliceutil

import (
	"github.com/killvxk/ustl/predalgo"
	"github.com/killvxk/ustl/ranges"
)

// FindIndexIf returns the index of the first element that satisfies the
// predicate, or -1 if none does.
func FindIndexIf[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return -1
	}
	first, last := ranges.FromSlice(collection)
	found := predalgo.FindIf(first, last, predicate)
	if found.Equal(last) {
		return -1
	}
	return found.Index()
}

// CountIf returns the number of elements that satisfy the predicate.
func CountIf[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return 0
	}
	first, last := ranges.FromSlice(collection)
	return predalgo.CountIf(first, last, predicate)
}

// AdjacentFindIndex returns the index i of the first pair such that
// predicate(collection[i], collection[i+1]) holds, or -1 if there is no
// such pair. Slices of length 0 or 1 have none.
func AdjacentFindIndex[T any](collection []T, predicate func(a, b T) bool) int {
	if len(collection) < 2 {
		return -1
	}
	first, last := ranges.FromSlice(collection)
	found := predalgo.AdjacentFind(first, last, predicate)
	if found.Equal(last) {
		return -1
	}
	return found.Index()
}
