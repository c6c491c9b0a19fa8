package numeric

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/colbuf/colbuf/endian"
	"github.com/colbuf/colbuf/internal/pool"
)

// NumericRawEncoder stores each float64 as 8 uncompressed IEEE 754 bytes in
// the order given by engine. It is DoubleRawCandidate's backing encoder: the
// universal fallback a float column's selection engine falls back to when
// Gorilla's XOR-delta scheme does not win.
type NumericRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder returns an encoder that writes float64 values in
// engine's byte order to a pooled buffer. Callers must call Finish to
// return the buffer to the pool.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetBlobBuffer(),
	}
}

// Write appends one value to the buffer, growing it if needed. Panics if
// Finish has already been called. Prefer WriteSlice for bulk writes, which
// pre-allocates once instead of growing incrementally.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++

	// Amortized growth: pre-grow buffer if near capacity
	// This prevents frequent reallocations when Write is called repeatedly
	e.buf.Grow(8)
	e.writeFloat64(val)
}

// WriteSlice pre-allocates 8*len(values) bytes once and encodes every value
// directly into that span, avoiding Write's per-call growth check.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	valLen := len(values)
	e.count += valLen

	if valLen == 0 {
		return
	}

	// Pre-allocate space for all values (8 bytes each)
	e.buf.Grow(valLen * 8)

	// Extend buffer length once for all values
	startIdx := e.buf.Len()
	e.buf.ExtendOrGrow(valLen * 8)

	// Write each value directly using PutUint64 on the buffer slice
	for i, v := range values {
		offset := startIdx + i*8
		e.engine.PutUint64(e.buf.Slice(offset, offset+8), math.Float64bits(v))
	}
}

// Bytes returns the accumulated encoded bytes. The slice aliases the
// internal buffer and is only valid until the next Write/WriteSlice/Reset.
func (e *NumericRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written since the last Finish.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Size returns the number of bytes written to the internal buffer since the
// last Finish.
func (e *NumericRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset is a no-op: raw encoding has no intermediate state to clear beyond
// the accumulated buffer, which callers keep reading via Bytes until Finish.
func (e *NumericRawEncoder) Reset() {
}

// Finish returns the buffer to the pool. The encoder must not be used again
// afterward; construct a new one to encode more data.
func (e *NumericRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// writeFloat64 appends one value's 8 bytes. Callers must ensure the buffer
// already has room; Write and WriteSlice both pre-grow before calling this.
func (e *NumericRawEncoder) writeFloat64(value float64) {
	bufLen := e.buf.Len()
	bs := e.buf.Slice(bufLen, bufLen+8)
	e.engine.PutUint64(bs, math.Float64bits(value))
	e.buf.SetLength(bufLen + 8)
}

// NumericRawDecoder decodes the fixed-width, engine-ordered layout written
// by NumericRawEncoder. It is the decode-side counterpart DoubleRawCandidate
// reads through; values are copied out of data rather than aliased.
type NumericRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = NumericRawDecoder{}

// NewNumericRawDecoder returns a decoder for data encoded with engine's byte
// order (which must match the encoder that produced it). The decoder is a
// small value type with no state of its own, so it is cheap to construct per
// call.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{engine: engine}
}

// All yields the count float64 values decoded from data. If data is shorter
// than count*8 bytes, it yields nothing rather than a partial sequence; use
// At to decode as many leading values as are actually present.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if len(data) < count*8 || count == 0 {
			return
		}

		for i := range count {
			start := i * 8
			bits := d.engine.Uint64(data[start : start+8])
			val := math.Float64frombits(bits)
			if !yield(val) {
				return
			}
		}
	}
}

// At decodes the value at index, returning false if index is out of [0,
// count) or data is too short to contain it. DecodeArrayFloat's over-pull
// tolerance for float columns is built on this per-index leniency.
func (d NumericRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if len(data) == 0 || index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	bits := d.engine.Uint64(data[start : start+8])
	val := math.Float64frombits(bits)

	return val, true
}

// NumericRawUnsafeDecoder reinterprets a NumericRawEncoder payload as
// []float64 via unsafe.Slice instead of copying one value at a time. It
// assumes data's byte order already matches the host's native order
// (true for GetLittleEndianEngine on every platform this module targets);
// it is not offered through DecodeArrayFloat's default path for that
// reason, but remains available for callers who know their data and want
// to skip NumericRawDecoder's per-value copy.
type NumericRawUnsafeDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = NumericRawUnsafeDecoder{}

// NewNumericRawUnsafeDecoder returns an unsafe decoder. engine is accepted
// for interface symmetry with NewNumericRawDecoder but unused: the unsafe
// cast always reads data in the host's native byte order.
func NewNumericRawUnsafeDecoder(engine endian.EndianEngine) NumericRawUnsafeDecoder {
	return NumericRawUnsafeDecoder{engine: engine}
}

// All yields the count values obtained by reinterpreting data's first
// count*8 bytes as a []float64. It yields nothing if data is shorter than
// that.
func (d NumericRawUnsafeDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if len(data) < count*8 || count == 0 {
			return
		}

		floatSlice, err := unsafeDecodeFloat64Slice(data[:count*8])
		if floatSlice == nil || err != nil {
			return
		}

		for _, val := range floatSlice {
			if !yield(val) {
				return
			}
		}
	}
}

// At decodes the value at index by reinterpreting all of data as a
// []float64, returning false if index is out of [0, count) or out of the
// reinterpreted slice's bounds.
func (d NumericRawUnsafeDecoder) At(data []byte, index int, count int) (float64, bool) {
	if len(data) == 0 || index < 0 || index >= count {
		return 0, false
	}

	floatSlice, err := unsafeDecodeFloat64Slice(data)
	if floatSlice == nil || err != nil {
		return 0, false
	}

	if index >= len(floatSlice) {
		return 0, false
	}

	return floatSlice[index], true
}

// unsafeDecodeFloat64Slice reinterprets data as []float64 without copying.
func unsafeDecodeFloat64Slice(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("byte slice length (%d) is not a multiple of 8", len(data))
	}

	ptr := (*float64)(unsafe.Pointer(&data[0]))
	return unsafe.Slice(ptr, len(data)/8), nil
}
