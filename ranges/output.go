package ranges

// Appender is an OutputCursor that appends every write to a slice, growing
// it as needed. Set performs the append, so Next is the identity; the
// Set-then-Next discipline of the copy algorithms keeps the two in step.
type Appender[T any] struct {
	buf *[]T
}

// AppendTo returns an Appender writing through buf.
func AppendTo[T any](buf *[]T) Appender[T] {
	return Appender[T]{buf: buf}
}

// Set appends value to the underlying slice.
func (a Appender[T]) Set(value T) {
	*a.buf = append(*a.buf, value)
}

// Next returns the receiver unchanged; the append already advanced.
func (a Appender[T]) Next() Appender[T] {
	return a
}
