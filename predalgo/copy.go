package predalgo

import "github.com/killvxk/ustl/ranges"

// CopyIf copies every element of [first, last) satisfying the predicate to
// out, preserving relative order, and returns the output cursor advanced
// past the last copied element.
func CopyIf[T any, C ranges.Cursor[C, T], O ranges.OutputCursor[O, T]](
	first, last C, out O, predicate func(T) bool,
) O {
	for ; !first.Equal(last); first = first.Next() {
		if v := first.Value(); predicate(v) {
			out.Set(v)
			out = out.Next()
		}
	}
	return out
}

// ReplaceIf overwrites, in place, every element of [first, last) satisfying
// the predicate with newValue.
func ReplaceIf[T any, C ranges.Writer[C, T]](first, last C, predicate func(T) bool, newValue T) {
	for ; !first.Equal(last); first = first.Next() {
		if predicate(first.Value()) {
			first.Set(newValue)
		}
	}
}

// ReplaceCopyIf writes exactly one output element per input element of
// [first, last): newValue where the predicate holds, the input element
// otherwise. It returns the output cursor advanced by the range length.
func ReplaceCopyIf[T any, C ranges.Cursor[C, T], O ranges.OutputCursor[O, T]](
	first, last C, out O, predicate func(T) bool, newValue T,
) O {
	for ; !first.Equal(last); first = first.Next() {
		if v := first.Value(); predicate(v) {
			out.Set(newValue)
		} else {
			out.Set(v)
		}
		out = out.Next()
	}
	return out
}

// RemoveCopyIf copies to out only the elements of [first, last) for which
// the predicate is false, keeping their relative order, and returns the
// output cursor marking the new logical end.
func RemoveCopyIf[T any, C ranges.Cursor[C, T], O ranges.OutputCursor[O, T]](
	first, last C, out O, predicate func(T) bool,
) O {
	for ; !first.Equal(last); first = first.Next() {
		if v := first.Value(); !predicate(v) {
			out.Set(v)
			out = out.Next()
		}
	}
	return out
}

// RemoveIf compacts [first, last) in place so that [first, returned)
// contains, in their original order, exactly the elements for which the
// predicate is false. Elements in [returned, last) remain dereferenceable
// but hold unspecified values. Implemented as a RemoveCopyIf onto the
// range's own start: the write cursor can never overtake the read cursor.
func RemoveIf[T any, C ranges.Writer[C, T]](first, last C, predicate func(T) bool) C {
	return RemoveCopyIf[T, C, C](first, last, first, predicate)
}
