package numeric

import "iter"

// ColumnarEncoder is the buffer-then-finalize lifecycle shared by the
// low-level column encoders: values accumulate through Write/WriteSlice into
// a pooled buffer, Bytes exposes the encoded payload, and Finish returns the
// buffer to the pool. An encoder is single-use; construct a new one per
// column.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload. The slice aliases the internal
	// buffer and is valid until the next Write, WriteSlice, or Finish.
	Bytes() []byte

	// Len returns the number of values encoded so far.
	Len() int

	// Size returns the number of payload bytes written so far.
	Size() int

	// Reset clears per-sequence encoder state without discarding the
	// accumulated payload, so one buffer can carry several value sequences
	// until Finish.
	Reset()

	// Finish returns the internal buffer to the pool. The encoder must not
	// be used afterward; buffer-dependent methods panic once finished.
	// Callers should defer Finish after retrieving Bytes.
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes values in bulk, pre-sizing the buffer once instead
	// of growing per value.
	WriteSlice(values []T)
}

// ColumnarDecoder is the read-side counterpart: stateless over the payload,
// so one decoder value can serve many branches concurrently.
type ColumnarDecoder[T comparable] interface {
	// All yields the count values decoded from data in order. Malformed or
	// short data yields fewer values; callers that need hard validation
	// should go through the branch-level decode path instead.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false if index is outside [0, count)
	// or data is too short to contain it. Only fixed-width codecs support
	// random access; bit-packed ones must be decoded from the start.
	At(data []byte, index int, count int) (T, bool)
}
