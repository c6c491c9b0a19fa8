package numeric

import (
	"fmt"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/wire"
)

// ArrayWriter buffers a column of unsigned integers and flushes them
// through the lowering ladder and candidate selection engine into a framed
// wire branch. The zero value is not usable; construct with
// NewArrayWriter.
type ArrayWriter[T Unsigned] struct {
	opts   *Options
	values []T
}

// NewArrayWriter returns an ArrayWriter configured by opts.
func NewArrayWriter[T Unsigned](opts *Options) *ArrayWriter[T] {
	return &ArrayWriter[T]{opts: opts}
}

// Write buffers a single value for the next Flush.
func (a *ArrayWriter[T]) Write(value T) {
	a.values = append(a.values, value)
}

// WriteSlice buffers every value in values.
func (a *ArrayWriter[T]) WriteSlice(values []T) {
	a.values = append(a.values, values...)
}

// Len returns the number of buffered values.
func (a *ArrayWriter[T]) Len() int {
	return len(a.values)
}

// Reset clears buffered values without releasing the underlying slice.
func (a *ArrayWriter[T]) Reset() {
	a.values = a.values[:0]
}

// Flush runs the buffered values through the lowering ladder and selection
// engine, then writes the resulting branch to w via WriteWithID wrapping
// WriteWithLen, the framing composition every array branch uses. It
// returns the ArrayTypeID that was written.
//
// A non-Void payload is wrapped with wire.CompressFrame under opts'
// FrameCompression codec before being written, so the bytes inside the
// branch are a compression frame, not the raw candidate output. A Void
// branch carries zero payload bytes and is left unwrapped, since
// WriteWithID asserts that invariant.
func (a *ArrayWriter[T]) Flush(w *wire.Writer) (format.ArrayTypeID, error) {
	var encodeErr error

	id := w.WriteWithID(func(w *wire.Writer) format.ArrayTypeID {
		return wire.WriteWithLen(w, func(w *wire.Writer) format.ArrayTypeID {
			payload, id, err := encodeLadder(a.values, a.opts)
			if err != nil {
				encodeErr = err
				return format.Void
			}
			if id == format.Void {
				return format.Void
			}
			framed, err := wire.CompressFrame(payload, frameCompression(a.opts))
			if err != nil {
				encodeErr = err
				return format.Void
			}
			w.Bytes = append(w.Bytes, framed...)
			return id
		})
	})

	if encodeErr != nil {
		return 0, fmt.Errorf("numeric: array writer flush: %w", encodeErr)
	}
	return id, nil
}

// encodeLadder dispatches to the width-specific lowering ladder entry point
// for T. Each rung's algorithm is specialized per concrete width (mirroring
// how the lowering ladder narrows between concrete types), so this type
// switch on the monomorphized slice is the dispatch point back into generic
// code.
func encodeLadder[T Unsigned](data []T, opts *Options) ([]byte, format.ArrayTypeID, error) {
	switch v := any(data).(type) {
	case []uint8:
		return EncodeU8(v, opts)
	case []uint16:
		return EncodeU16(v, opts)
	case []uint32:
		return EncodeU32(v, opts)
	case []uint64:
		return EncodeU64(v, opts)
	default:
		return nil, 0, fmt.Errorf("numeric: unsupported array element width %T", data)
	}
}
