package numeric

import (
	"fmt"
	"math"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/internal/pool"
	"github.com/colbuf/colbuf/simple16"
	"github.com/colbuf/colbuf/varint"
)

// DecodeArray reconstructs count values of the requested width T from a
// type-tagged array branch, regardless of which width the encoder actually
// committed to: a column declared uint64 but narrowed all the way to a
// Boolean or U8 branch during encoding widens back out transparently here.
//
// Any branch type the encoder would not normally produce for an integer
// column (including a type mismatch from the surrounding schema) falls back
// to decoding the same bytes as a Boolean branch, mapping true to 1 and
// false to 0 — this is how columns promoted from an all-0/1 bool branch
// round-trip without the writer needing to record which path it took.
func DecodeArray[T Unsigned](id format.ArrayTypeID, payload []byte, count int) ([]T, error) {
	switch id {
	case format.Void:
		return make([]T, count), nil

	case format.U8:
		out := make([]T, count)
		for i := 0; i < count && i < len(payload); i++ {
			out[i] = T(payload[i])
		}
		return out, nil

	case format.IntPrefixVar:
		return decodePrefixVarArray[T](payload, count)

	case format.IntSimple16:
		return decodeSimple16Array[T](payload, count)

	case format.RLE:
		return decodeRLEArray[T](payload, count)

	default:
		// format.Boolean and any unexpected tag both fall back to the
		// bit-packed boolean reader.
		bools := decodeBool(payload, count)
		out := make([]T, count)
		for i, b := range bools {
			if b {
				out[i] = 1
			}
		}
		return out, nil
	}
}

func decodePrefixVarArray[T Unsigned](payload []byte, count int) ([]T, error) {
	out := make([]T, count)
	pos := 0
	maxVal := maxUnsigned[T]()

	for i := 0; i < count; i++ {
		if pos >= len(payload) {
			break // over-pull past the encoded data: leave the default zero value
		}
		v, n, err := varint.Decode(payload[pos:])
		if err != nil {
			return nil, fmt.Errorf("numeric: decode prefix-varint array: %w", err)
		}
		pos += n
		if v > maxVal {
			return nil, fmt.Errorf("%w: varint value %d overflows requested width", ErrSchemaMismatch, v)
		}
		out[i] = T(v)
	}
	return out, nil
}

func decodeSimple16Array[T Unsigned](payload []byte, count int) ([]T, error) {
	scratch, cleanup := pool.GetUint32Slice(count)
	defer cleanup()

	values, err := simple16.Decompress(payload, scratch[:0])
	if err != nil {
		return nil, fmt.Errorf("%w: simple16 payload: %v", ErrInvalidFormat, err)
	}

	out := make([]T, count)
	maxVal := maxUnsigned[T]()
	for i := 0; i < count && i < len(values); i++ {
		if uint64(values[i]) > maxVal {
			return nil, fmt.Errorf("%w: simple16 value %d overflows requested width", ErrSchemaMismatch, values[i])
		}
		out[i] = T(values[i])
	}
	return out, nil
}

func decodeRLEArray[T Unsigned](payload []byte, count int) ([]T, error) {
	runsCount, runsID, runsPayload, consumed, err := readCountedBranch(payload)
	if err != nil {
		return nil, fmt.Errorf("numeric: decode RLE runs branch: %w", err)
	}
	runs, err := DecodeArray[uint64](runsID, runsPayload, runsCount)
	if err != nil {
		return nil, fmt.Errorf("numeric: decode RLE runs: %w", err)
	}

	valuesCount, valuesID, valuesPayload, _, err := readCountedBranch(payload[consumed:])
	if err != nil {
		return nil, fmt.Errorf("numeric: decode RLE values branch: %w", err)
	}
	values, err := DecodeArray[T](valuesID, valuesPayload, valuesCount)
	if err != nil {
		return nil, fmt.Errorf("numeric: decode RLE values: %w", err)
	}

	expanded := expandRuns(runs, values)
	out := make([]T, count)
	copy(out, expanded)
	return out, nil
}

func maxUnsigned[T Unsigned]() uint64 {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return math.MaxUint8
	case uint16:
		return math.MaxUint16
	case uint32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}
