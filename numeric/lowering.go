package numeric

import (
	"fmt"
	"math"

	"github.com/colbuf/colbuf/format"
)

// EncodeU64 runs the integer lowering ladder over data: values that are all
// 0/1 flush as a boolean branch, values that all fit in uint32 narrow and
// recurse into EncodeU32, and everything else is raced across u64's
// candidate palette (prefix-varint, with RLE as a self-recursive entrant).
func EncodeU64(data []uint64, opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}

	max := maxOf(data)
	if max <= 1 {
		return encodeBool(boolsFrom(data)), format.Boolean, nil
	}
	if max <= math.MaxUint32 {
		narrowed := narrowTo[uint32](data)
		return EncodeU32(narrowed, opts)
	}

	candidates := []Candidate[uint64]{
		PrefixVarIntCandidate[uint64]{},
		RLECandidate[uint64]{
			Opts: opts,
			EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
				return EncodeU64(runs, opts)
			},
			EncodeValues: func(values []uint64) ([]byte, format.ArrayTypeID, error) {
				return encodeU64NoRLE(values)
			},
		},
	}
	payload, id, err := Select(data, candidates, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u64 array: %w", err)
	}
	return payload, id, nil
}

func encodeU64NoRLE(data []uint64) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}
	payload, id, err := Select[uint64](data, []Candidate[uint64]{PrefixVarIntCandidate[uint64]{}}, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u64 array (no RLE): %w", err)
	}
	return payload, id, nil
}

// EncodeU32 is EncodeU64's u32 rung: Simple16 and prefix-varint candidates,
// narrowing to u16 when possible.
func EncodeU32(data []uint32, opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}

	max := maxOf(data)
	if max <= 1 {
		return encodeBool(boolsFrom(data)), format.Boolean, nil
	}
	if max <= math.MaxUint16 {
		narrowed := narrowTo[uint16](data)
		return EncodeU16(narrowed, opts)
	}

	candidates := []Candidate[uint32]{
		Simple16Candidate[uint32]{},
		PrefixVarIntCandidate[uint32]{},
		RLECandidate[uint32]{
			Opts: opts,
			EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
				return EncodeU64(runs, opts)
			},
			EncodeValues: func(values []uint32) ([]byte, format.ArrayTypeID, error) {
				return encodeU32NoRLE(values)
			},
		},
	}
	payload, id, err := Select(data, candidates, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u32 array: %w", err)
	}
	return payload, id, nil
}

func encodeU32NoRLE(data []uint32) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}
	payload, id, err := Select[uint32](data, []Candidate[uint32]{Simple16Candidate[uint32]{}, PrefixVarIntCandidate[uint32]{}}, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u32 array (no RLE): %w", err)
	}
	return payload, id, nil
}

// EncodeU16 is EncodeU64's u16 rung: Simple16 and prefix-varint candidates,
// narrowing to u8 when possible.
func EncodeU16(data []uint16, opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}

	max := maxOf(data)
	if max <= 1 {
		return encodeBool(boolsFrom(data)), format.Boolean, nil
	}
	if max <= math.MaxUint8 {
		narrowed := narrowTo[uint8](data)
		return EncodeU8(narrowed, opts)
	}

	candidates := []Candidate[uint16]{
		Simple16Candidate[uint16]{},
		PrefixVarIntCandidate[uint16]{},
		RLECandidate[uint16]{
			Opts: opts,
			EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
				return EncodeU64(runs, opts)
			},
			EncodeValues: func(values []uint16) ([]byte, format.ArrayTypeID, error) {
				return encodeU16NoRLE(values)
			},
		},
	}
	payload, id, err := Select(data, candidates, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u16 array: %w", err)
	}
	return payload, id, nil
}

func encodeU16NoRLE(data []uint16) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}
	payload, id, err := Select[uint16](data, []Candidate[uint16]{Simple16Candidate[uint16]{}, PrefixVarIntCandidate[uint16]{}}, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u16 array (no RLE): %w", err)
	}
	return payload, id, nil
}

// EncodeU8 is the ladder's terminal rung. There is nowhere lower to narrow
// to, so it always races the u8 palette (Simple16 and raw bytes) directly.
func EncodeU8(data []uint8, opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}

	max := maxOf(data)
	if max <= 1 {
		return encodeBool(boolsFrom(data)), format.Boolean, nil
	}

	candidates := []Candidate[uint8]{
		Simple16Candidate[uint8]{},
		RawBytesCandidate[uint8]{},
		RLECandidate[uint8]{
			Opts: opts,
			EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
				return EncodeU64(runs, opts)
			},
			EncodeValues: func(values []uint8) ([]byte, format.ArrayTypeID, error) {
				return encodeU8NoRLE(values)
			},
		},
	}
	payload, id, err := Select(data, candidates, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u8 array: %w", err)
	}
	return payload, id, nil
}

func encodeU8NoRLE(data []uint8) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}
	payload, id, err := Select[uint8](data, []Candidate[uint8]{Simple16Candidate[uint8]{}, RawBytesCandidate[uint8]{}}, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode u8 array (no RLE): %w", err)
	}
	return payload, id, nil
}

func maxOf[T Unsigned](data []T) T {
	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func boolsFrom[T Unsigned](data []T) []bool {
	out := make([]bool, len(data))
	for i, v := range data {
		out[i] = v == 1
	}
	return out
}

// narrowTo element-wise converts data to the target width. The caller must
// already have verified every value fits; narrowTo performs no bounds
// checking itself, mirroring the lowering ladder's invariant that narrowing
// only ever happens after a max-value check.
func narrowTo[To Unsigned, From Unsigned](data []From) []To {
	out := make([]To, len(data))
	for i, v := range data {
		out[i] = To(v)
	}
	return out
}
