package numeric

import "iter"

// ArrayCursor yields one decoded column branch element per ReadNext call.
//
// It splits a branch read into the two phases the decode contract promises:
// construction, which validates the branch and can fail with a typed error,
// and per-element reads, which never fail. Once the branch's count elements
// are consumed, further ReadNext calls return the zero value rather than an
// error, so a caller pulling columns aligned by an external length never has
// to special-case the shortest one.
type ArrayCursor[T Unsigned] struct {
	values []T
	pos    int
}

// NewArrayCursor reads one [ArrayTypeID][payload] branch from the front of
// data, using payloadLen from the caller's length sidecar, and returns a
// cursor positioned at the branch's first element along with the number of
// bytes consumed from data. count is the column's declared element count;
// decoding stops there and any shortfall in the encoded data reads as zero
// values.
func NewArrayCursor[T Unsigned](data []byte, payloadLen int, count int) (*ArrayCursor[T], int, error) {
	values, consumed, err := ArrayReader[T]{}.Read(data, payloadLen, count)
	if err != nil {
		return nil, 0, err
	}
	return &ArrayCursor[T]{values: values}, consumed, nil
}

// ReadNext returns the next element, or the zero value once the cursor is
// exhausted. It never fails: every decode error this branch can produce was
// already surfaced by NewArrayCursor.
func (c *ArrayCursor[T]) ReadNext() T {
	if c.pos >= len(c.values) {
		var zero T
		return zero
	}
	v := c.values[c.pos]
	c.pos++
	return v
}

// Remaining returns the number of elements left before the cursor starts
// yielding zero values.
func (c *ArrayCursor[T]) Remaining() int {
	return len(c.values) - c.pos
}

// All yields the cursor's remaining elements in order, advancing it. Unlike
// ReadNext, the sequence stops at the declared count instead of repeating
// zero values forever.
func (c *ArrayCursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.pos < len(c.values) {
			v := c.values[c.pos]
			c.pos++
			if !yield(v) {
				return
			}
		}
	}
}

// FloatArrayCursor is ArrayCursor's float64 counterpart, reading a branch
// written by FloatArrayWriter.
type FloatArrayCursor struct {
	values []float64
	pos    int
}

// NewFloatArrayCursor reads one float64 column branch from the front of
// data, returning a cursor over its elements and the number of bytes
// consumed. The same construction/read split applies: construction surfaces
// every possible decode error, ReadNext is infallible.
func NewFloatArrayCursor(data []byte, payloadLen int, count int) (*FloatArrayCursor, int, error) {
	values, consumed, err := FloatArrayReader{}.Read(data, payloadLen, count)
	if err != nil {
		return nil, 0, err
	}
	return &FloatArrayCursor{values: values}, consumed, nil
}

// ReadNext returns the next element, or 0 once the cursor is exhausted.
func (c *FloatArrayCursor) ReadNext() float64 {
	if c.pos >= len(c.values) {
		return 0
	}
	v := c.values[c.pos]
	c.pos++
	return v
}

// Remaining returns the number of elements left before the cursor starts
// yielding zeros.
func (c *FloatArrayCursor) Remaining() int {
	return len(c.values) - c.pos
}

// All yields the cursor's remaining elements in order, advancing it.
func (c *FloatArrayCursor) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for c.pos < len(c.values) {
			v := c.values[c.pos]
			c.pos++
			if !yield(v) {
				return
			}
		}
	}
}
