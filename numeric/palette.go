package numeric

import (
	"math"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/simple16"
	"github.com/colbuf/colbuf/varint"
)

// PrefixVarIntCandidate encodes every value as a prefix-varint. It never
// declines and always has a cheap exact size estimate, making it the
// universal fallback at every integer width.
type PrefixVarIntCandidate[T Unsigned] struct{}

func (PrefixVarIntCandidate[T]) FastSizeFor(data []T) (int, bool) {
	size := 0
	for _, v := range data {
		size += varint.SizeFor(uint64(v))
	}
	return size, true
}

func (PrefixVarIntCandidate[T]) Compress(data []T, buf []byte) ([]byte, format.ArrayTypeID, bool) {
	for _, v := range data {
		buf = varint.Encode(buf, uint64(v))
	}
	return buf, format.IntPrefixVar, true
}

// Simple16Candidate bit-packs values into 32-bit words. It declines if any
// value exceeds uint32 range, since the codec is defined only over u32.
// Packing is variable-width per block, so there is no cheap size estimate;
// the selection engine must trial-compress this candidate.
type Simple16Candidate[T Unsigned] struct{}

func (Simple16Candidate[T]) FastSizeFor(data []T) (int, bool) {
	return 0, false
}

func (Simple16Candidate[T]) Compress(data []T, buf []byte) ([]byte, format.ArrayTypeID, bool) {
	values := make([]uint32, len(data))
	for i, v := range data {
		u := uint64(v)
		if u > math.MaxUint32 {
			return nil, 0, false
		}
		values[i] = uint32(u)
	}

	out, err := simple16.Compress(values, buf)
	if err != nil {
		return nil, 0, false
	}
	return out, format.IntSimple16, true
}

// RawBytesCandidate stores each value as a single raw byte, truncating.
// It is only ever offered at the u8 rung, where truncation is lossless.
type RawBytesCandidate[T Unsigned] struct{}

func (RawBytesCandidate[T]) FastSizeFor(data []T) (int, bool) {
	return len(data), true
}

func (RawBytesCandidate[T]) Compress(data []T, buf []byte) ([]byte, format.ArrayTypeID, bool) {
	for _, v := range data {
		buf = append(buf, byte(v))
	}
	return buf, format.U8, true
}
