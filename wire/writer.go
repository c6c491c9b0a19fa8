// Package wire implements the append-only framing discipline shared by every
// array branch: a type-tag byte reserved and backpatched around the
// payload, a length recorded to a side channel so the payload's own bytes
// never need to carry their length inline, and a reserve-then-backpatch
// helper for varint fields whose final value is not known until after
// something else has been written.
package wire

import (
	"fmt"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/varint"
)

// Writer accumulates encoded branch bytes and a parallel length sidecar.
//
// The zero value is ready to use. A Writer is not safe for concurrent use;
// callers encoding multiple columns concurrently should use one Writer per
// goroutine and merge results afterward.
type Writer struct {
	Bytes []byte
	Lens  []int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWithID reserves a one-byte hole for an ArrayTypeID, invokes f, and
// backpatches f's returned tag into the hole.
//
// If f returns format.Void, f must not have written any payload bytes; this
// is checked and panics on violation, since getting it wrong is a bug in the
// calling codec, not bad input.
func (w *Writer) WriteWithID(f func(w *Writer) format.ArrayTypeID) format.ArrayTypeID {
	typeIndex := len(w.Bytes)
	w.Bytes = append(w.Bytes, 0)

	id := f(w)

	if id == format.Void && len(w.Bytes) != typeIndex+1 {
		panic(fmt.Sprintf("wire: Void array wrote %d payload bytes, expected 0", len(w.Bytes)-typeIndex-1))
	}

	w.Bytes[typeIndex] = byte(id)
	return id
}

// WriteWithLen invokes f and pushes the number of bytes f wrote onto the
// length sidecar. The result of f is returned unchanged so callers can
// compose this with WriteWithID.
func WriteWithLen[T any](w *Writer, f func(w *Writer) T) T {
	start := len(w.Bytes)
	result := f(w)
	w.Lens = append(w.Lens, len(w.Bytes)-start)
	return result
}

// ReserveAndWriteWithVarint reserves varint.SizeFor(max) bytes, invokes f,
// and backpatches f's returned value into the reservation using a fixed
// width sized for max rather than for the value actually written. f must
// return a value no greater than max; violating this corrupts the
// backpatched bytes since the reservation was sized for max, not for an
// arbitrarily larger result.
func (w *Writer) ReserveAndWriteWithVarint(max uint64, f func(w *Writer) uint64) {
	reserved := varint.SizeFor(max)
	start := len(w.Bytes)
	w.Bytes = append(w.Bytes, make([]byte, reserved)...)
	end := len(w.Bytes)

	v := f(w)
	if v > max {
		panic(fmt.Sprintf("wire: reserved varint bound %d exceeded by %d", max, v))
	}

	varint.PutFixedWidth(w.Bytes[start:end], v, reserved)
}

// Len returns the number of bytes written to the stream so far.
func (w *Writer) Len() int {
	return len(w.Bytes)
}
