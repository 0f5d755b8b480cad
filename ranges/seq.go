package ranges

import "iter"

// Seq adapts the range [first, last) to a Go iterator.
// The cursors are not modified; each call walks a fresh copy.
//
// The element type cannot be inferred from the cursor alone, so callers
// instantiate it explicitly: Seq[int](first, last).
func Seq[T any, C Cursor[C, T]](first, last C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := first; !c.Equal(last); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect copies the elements of [first, last) into a new slice.
// Like [Seq], the element type is instantiated explicitly.
func Collect[T any, C Cursor[C, T]](first, last C) []T {
	var out []T
	for c := first; !c.Equal(last); c = c.Next() {
		out = append(out, c.Value())
	}
	return out
}
