package predalgo

import "github.com/killvxk/ustl/ranges"

// FindIf returns the first cursor in [first, last) whose element satisfies
// the predicate, or last if no element does. An empty range returns last
// immediately.
func FindIf[T any, C ranges.Cursor[C, T]](first, last C, predicate func(T) bool) C {
	for !first.Equal(last) && !predicate(first.Value()) {
		first = first.Next()
	}
	return first
}

// CountIf returns the number of elements in [first, last) that satisfy the
// predicate.
func CountIf[T any, C ranges.Cursor[C, T]](first, last C, predicate func(T) bool) int {
	total := 0
	for ; !first.Equal(last); first = first.Next() {
		if predicate(first.Value()) {
			total++
		}
	}
	return total
}

// AdjacentFind returns the first cursor i in [first, last) such that
// predicate(*i, *(i+1)) holds, or last if there is no such pair. Ranges of
// size zero or one have no adjacent pair and return last.
func AdjacentFind[T any, C ranges.Cursor[C, T]](first, last C, predicate func(a, b T) bool) C {
	if first.Equal(last) {
		return last
	}
	prev := first
	for first = first.Next(); !first.Equal(last); first = first.Next() {
		if predicate(prev.Value(), first.Value()) {
			return prev
		}
		prev = prev.Next()
	}
	return last
}
