package numeric

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/colbuf/colbuf/format"
)

// WriteRoot appends the smallest encoding of a singleton unsigned integer
// to dst and returns the tag describing what it wrote: Zero and One carry
// no payload bytes, and everything else carries 1-8 little-endian bytes
// sized to the value's own magnitude. This is independent of array
// encoding; a root value never goes through the lowering ladder or
// selection engine.
func WriteRoot(dst []byte, value uint64) ([]byte, format.RootTypeID) {
	switch {
	case value == 0:
		return dst, format.Zero
	case value == 1:
		return dst, format.One
	}

	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], value)

	switch {
	case value <= 0xFF:
		return append(dst, le[0]), format.IntU8
	case value <= 0xFFFF:
		return append(dst, le[:2]...), format.IntU16
	case value <= 0xFFFFFF:
		return append(dst, le[:3]...), format.IntU24
	case value <= 0xFFFFFFFF:
		return append(dst, le[:4]...), format.IntU32
	case value <= 0xFFFFFFFFFF:
		return append(dst, le[:5]...), format.IntU40
	case value <= 0xFFFFFFFFFFFF:
		return append(dst, le[:6]...), format.IntU48
	case value <= 0xFFFFFFFFFFFFFF:
		return append(dst, le[:7]...), format.IntU56
	default:
		return append(dst, le[:8]...), format.IntU64
	}
}

// WriteRootFloat appends the fixed 8-byte IEEE 754 encoding of a singleton
// float64 root value to dst. Unlike the integer root forms, a float root
// has no smaller representation to pick among: every bit may be
// significant, so RootDouble always carries the full 8 bytes.
func WriteRootFloat(dst []byte, value float64) ([]byte, format.RootTypeID) {
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], math.Float64bits(value))
	return append(dst, le[:]...), format.RootDouble
}

// ReadRoot decodes a singleton unsigned integer given its tag and payload
// bytes. It returns ErrInvalidFormat if payload is shorter than the tag's
// PayloadBytes requires, and ErrSchemaMismatch if id is RootDouble (use
// ReadRootFloat for that tag).
func ReadRoot(id format.RootTypeID, payload []byte) (uint64, error) {
	switch id {
	case format.Zero:
		return 0, nil
	case format.One:
		return 1, nil
	case format.RootDouble:
		return 0, fmt.Errorf("%w: root tag %s is a float, not an integer", ErrSchemaMismatch, id)
	}

	n := id.PayloadBytes()
	if n == 0 || len(payload) < n {
		return 0, fmt.Errorf("%w: root tag %s needs %d bytes, have %d", ErrInvalidFormat, id, n, len(payload))
	}

	var le [8]byte
	copy(le[:n], payload[:n])
	return binary.LittleEndian.Uint64(le[:]), nil
}

// ReadRootFloat decodes a singleton float64 root value. id must be
// RootDouble.
func ReadRootFloat(id format.RootTypeID, payload []byte) (float64, error) {
	if id != format.RootDouble {
		return 0, fmt.Errorf("%w: root tag %s is not a float", ErrSchemaMismatch, id)
	}
	if len(payload) < 8 {
		return 0, fmt.Errorf("%w: root double needs 8 bytes, have %d", ErrInvalidFormat, len(payload))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(payload[:8])), nil
}
