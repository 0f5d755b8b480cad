// Package ranges defines the cursor capability sets the predalgo package
// is generic over, plus a slice-backed cursor and an appending output
// cursor so plain slices can be used as ranges without adapters.
package ranges

// Cursor is the minimal capability set for single-pass traversal of a
// half-open range [first, last). Cursors have value semantics: Next returns
// an advanced copy and never mutates the receiver, so callers can hold on
// to earlier positions.
//
// The self-referential constraint (C Cursor[C, T]) resolves every cursor
// operation at compile time; there is no interface dispatch in the
// algorithm loops.
type Cursor[C, T any] interface {
	// Value returns the element at the current position.
	// Dereferencing the end position is the caller's bug.
	Value() T

	// Next returns a cursor advanced by one position.
	Next() C

	// Equal reports whether both cursors denote the same position.
	Equal(other C) bool
}

// OutputCursor is a write-only destination for the *_copy algorithms.
// Writes follow the Set-then-Next discipline: exactly one Set per position.
type OutputCursor[O, T any] interface {
	// Set writes the element at the current position.
	Set(value T)

	// Next returns a cursor advanced past the written element.
	Next() O
}

// Writer is a Cursor that can also overwrite elements in place.
// Every Writer is structurally an OutputCursor, which is what lets an
// in-place compaction reuse a copying algorithm with the range's own
// start as the destination.
type Writer[C, T any] interface {
	Cursor[C, T]
	Set(value T)
}

// RandomCursor extends Cursor with constant-time repositioning, the
// stronger capability the bisection algorithms need: jumping to a midpoint
// must be O(1), not a walk.
type RandomCursor[C, T any] interface {
	Cursor[C, T]

	// Seek returns a cursor moved by offset positions
	// (negative moves backward).
	Seek(offset int) C

	// Distance returns the number of forward steps from the receiver to
	// other. Both cursors must belong to the same range.
	Distance(other C) int
}
