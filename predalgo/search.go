package predalgo

import "github.com/killvxk/ustl/ranges"

// LowerBound returns the leftmost position in the sorted range
// [first, last) at which value could be inserted without breaking the
// ordering: the first position p such that comp(*p, value) is false.
// In a run of elements equivalent to value it lands on the front.
//
// comp must be the strict weak ordering the range is sorted under; an
// empty range returns first (== last).
func LowerBound[T any, C ranges.RandomCursor[C, T]](first, last C, value T, comp func(a, b T) bool) C {
	// Invariant: the answer lies in [first, last). Each step halves the
	// interval; the mid.Next() branch guarantees progress at size 1.
	for !first.Equal(last) {
		mid := first.Seek(first.Distance(last) / 2)
		if comp(mid.Value(), value) {
			first = mid.Next()
		} else {
			last = mid
		}
	}
	return first
}

// UpperBound returns the rightmost valid insertion position for value in
// the sorted range [first, last): the first position p such that
// comp(value, *p) is true. In a run of elements equivalent to value it
// lands past the back.
func UpperBound[T any, C ranges.RandomCursor[C, T]](first, last C, value T, comp func(a, b T) bool) C {
	for !first.Equal(last) {
		mid := first.Seek(first.Distance(last) / 2)
		if comp(value, mid.Value()) {
			last = mid
		} else {
			first = mid.Next()
		}
	}
	return first
}

// EqualRange returns the subrange [lo, hi) of the sorted range
// [first, last) whose elements are equivalent to value under comp, i.e.
// (LowerBound, UpperBound). When nothing matches, lo == hi at the
// insertion point.
//
// The upper bound is found by advancing linearly from the lower bound
// while the element is not ordered after value. That costs O(k) for k
// matching elements instead of a second O(log n) bisection; k is small in
// typical sorted data and the scan touches only elements it returns.
func EqualRange[T any, C ranges.RandomCursor[C, T]](first, last C, value T, comp func(a, b T) bool) (C, C) {
	lo := LowerBound(first, last, value, comp)
	hi := lo
	for !hi.Equal(last) && !comp(value, hi.Value()) {
		hi = hi.Next()
	}
	return lo, hi
}

// BinarySearch reports whether the sorted range [first, last) contains an
// element equivalent to value under comp. O(log n).
func BinarySearch[T any, C ranges.RandomCursor[C, T]](first, last C, value T, comp func(a, b T) bool) bool {
	found := LowerBound(first, last, value, comp)
	return !found.Equal(last) && !comp(value, found.Value())
}
