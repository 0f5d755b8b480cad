package ranges

import "iter"

// SliceCursor is a position within a caller-owned slice. The backing array
// is shared between copies, so a Set through any copy is visible to all of
// them; the position itself is a plain value.
type SliceCursor[T any] struct {
	data []T
	pos  int
}

// Begin returns a cursor at the first element of s.
func Begin[T any](s []T) SliceCursor[T] {
	return SliceCursor[T]{data: s}
}

// End returns the past-the-end cursor of s.
func End[T any](s []T) SliceCursor[T] {
	return SliceCursor[T]{data: s, pos: len(s)}
}

// FromSlice returns the [Begin, End) pair covering all of s.
func FromSlice[T any](s []T) (SliceCursor[T], SliceCursor[T]) {
	return Begin(s), End(s)
}

// Value returns the element at the cursor position.
func (c SliceCursor[T]) Value() T {
	return c.data[c.pos]
}

// Set overwrites the element at the cursor position.
func (c SliceCursor[T]) Set(value T) {
	c.data[c.pos] = value
}

// Next returns a cursor advanced by one position.
func (c SliceCursor[T]) Next() SliceCursor[T] {
	c.pos++
	return c
}

// Equal reports whether both cursors are at the same position.
func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool {
	return c.pos == other.pos
}

// Seek returns a cursor moved by offset positions. O(1).
func (c SliceCursor[T]) Seek(offset int) SliceCursor[T] {
	c.pos += offset
	return c
}

// Distance returns the number of forward steps from c to other. O(1).
func (c SliceCursor[T]) Distance(other SliceCursor[T]) int {
	return other.pos - c.pos
}

// Index returns the position as an index into the backing slice.
// End(s).Index() == len(s).
func (c SliceCursor[T]) Index() int {
	return c.pos
}

// Seq returns a sequence over the elements from the cursor position to the
// end of the backing slice. The cursor is not modified.
func (c SliceCursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := c.pos; i < len(c.data); i++ {
			if !yield(c.data[i]) {
				return
			}
		}
	}
}
