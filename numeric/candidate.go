package numeric

import "github.com/colbuf/colbuf/format"

// Unsigned is the set of unsigned integer widths the lowering ladder and
// its candidate compressors operate on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Candidate is one encoding strategy competing to represent a slice of
// values. A candidate may decline (return ok=false from Compress) instead
// of erroring; declining is a normal outcome, not a failure, since a
// candidate's applicability can depend on the data itself (e.g. Simple16
// declining values that overflow 32 bits).
type Candidate[T Unsigned] interface {
	// FastSizeFor returns a cheap upper-bound estimate of the encoded byte
	// count for data, without actually encoding it. The second return value
	// is false when no cheap estimate is available, signaling the selection
	// engine to fall back to trial compression for this candidate.
	FastSizeFor(data []T) (size int, ok bool)

	// Compress writes data's encoding to buf and returns the resulting
	// bytes along with the ArrayTypeID it used. ok is false if this
	// candidate declines to handle data; in that case the returned bytes
	// must be ignored and buf must not have been retained by the candidate.
	Compress(data []T, buf []byte) (out []byte, id format.ArrayTypeID, ok bool)
}
