package numeric

import (
	"math"
	"math/bits"

	"github.com/colbuf/colbuf/bitstream"
	"github.com/colbuf/colbuf/internal/pool"
)

// GorillaEncoder XOR-delta compresses a sequence of float64 values using the
// leading/trailing-zero windowing scheme from Facebook's Gorilla paper: the
// first value is stored in full, and each subsequent value is XORed against
// its predecessor, with an unchanged value costing a single bit and a
// changed value reusing the previous meaningful-bit window when possible.
//
// The zero value is not usable; construct with NewGorillaEncoder. An
// encoder is not safe for concurrent use.
type GorillaEncoder struct {
	w             *bitstream.Writer
	started       bool
	previous      uint64
	previousValue float64
	prevXor       uint64
	count         int
	tolerance     *float64
}

// NewGorillaEncoder returns an empty GorillaEncoder using exact float64
// comparison: only bit-identical successive values take the one-bit
// unchanged-value path.
func NewGorillaEncoder() *GorillaEncoder {
	return &GorillaEncoder{w: bitstream.NewWriter()}
}

// NewGorillaEncoderWithOptions returns an empty GorillaEncoder configured by
// opts. When opts.LossyFloatTolerance is set, a successive value within that
// tolerance of the previous one is encoded as an exact repeat instead of a
// fresh XOR window, at the cost of reconstructing it as the previous value
// rather than its own.
func NewGorillaEncoderWithOptions(opts *Options) *GorillaEncoder {
	e := &GorillaEncoder{w: bitstream.NewWriter()}
	if opts != nil {
		e.tolerance = opts.LossyFloatTolerance
	}
	return e
}

// Write encodes the next value in the sequence.
func (e *GorillaEncoder) Write(v float64) {
	bitsv := math.Float64bits(v)

	if !e.started {
		e.w.WriteBits(bitsv, 64)
		e.previous = bitsv
		e.previousValue = v
		e.prevXor = bitsv
		e.started = true
		e.count = 1
		return
	}

	if e.tolerance != nil && math.Abs(v-e.previousValue) <= *e.tolerance {
		bitsv = e.previous
	}
	e.previousValue = v

	xored := e.previous ^ bitsv

	if xored == 0 {
		e.w.WriteBits(0, 1)
	} else {
		lz := uint64(bits.LeadingZeros64(xored))
		if lz > 31 {
			lz = 31
		}
		tz := uint64(bits.TrailingZeros64(xored))

		prevLz := uint64(bits.LeadingZeros64(e.prevXor))
		var prevTz uint64
		if prevLz != 64 {
			prevTz = uint64(bits.TrailingZeros64(e.prevXor))
		}

		if lz >= prevLz && tz >= prevTz {
			meaningfulBits := xored >> prevTz
			meaningfulBitCount := 64 - prevTz - prevLz

			e.w.WriteBits(0b10, 2)
			e.w.WriteBits(meaningfulBits, uint8(meaningfulBitCount))
		} else {
			meaningfulBits := xored >> tz
			meaningfulBitCount := 64 - tz - lz

			e.w.WriteBits(0b11, 2)
			e.w.WriteBits(lz, 5)
			e.w.WriteBits(meaningfulBitCount-1, 6)
			e.w.WriteBits(meaningfulBits, uint8(meaningfulBitCount))
		}
	}

	e.previous = bitsv
	e.prevXor = xored
	e.count++
}

// WriteSlice encodes every value in values in order.
func (e *GorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

// Len returns the number of values written so far.
func (e *GorillaEncoder) Len() int {
	return e.count
}

// Finish flushes the encoder and returns the complete payload. The encoder
// must not be used after calling Finish.
func (e *GorillaEncoder) Finish() []byte {
	if !e.started {
		return nil
	}
	return e.w.Finish()
}

// DecodeGorilla decodes count float64 values from a payload produced by
// GorillaEncoder.Finish.
func DecodeGorilla(payload []byte, count int) ([]float64, error) {
	if count == 0 {
		return make([]float64, 0), nil
	}

	scratch, cleanup := pool.GetFloat64Slice(count)
	defer cleanup()
	out := scratch

	r := bitstream.NewReader(payload)

	first, err := r.ReadBits(64)
	if err != nil {
		return nil, err
	}
	previous := first
	prevXor := first
	out[0] = math.Float64frombits(first)

	for i := 1; i < count; i++ {
		c0, err := r.ReadBits(1)
		if err != nil {
			return nil, err
		}

		var xored uint64
		if c0 == 1 {
			c1, err := r.ReadBits(1)
			if err != nil {
				return nil, err
			}

			if c1 == 0 {
				prevLz := uint64(bits.LeadingZeros64(prevXor))
				var prevTz uint64
				if prevLz != 64 {
					prevTz = uint64(bits.TrailingZeros64(prevXor))
				}
				meaningfulBitCount := 64 - prevTz - prevLz

				meaningfulBits, err := r.ReadBits(uint8(meaningfulBitCount))
				if err != nil {
					return nil, err
				}
				xored = meaningfulBits << prevTz
			} else {
				lz, err := r.ReadBits(5)
				if err != nil {
					return nil, err
				}
				lenMinus1, err := r.ReadBits(6)
				if err != nil {
					return nil, err
				}
				meaningfulBitCount := lenMinus1 + 1

				meaningfulBits, err := r.ReadBits(uint8(meaningfulBitCount))
				if err != nil {
					return nil, err
				}
				tz := 64 - lz - meaningfulBitCount
				xored = meaningfulBits << tz
			}
		}

		value := previous ^ xored
		out[i] = math.Float64frombits(value)
		previous = value
		prevXor = xored
	}

	result := make([]float64, count)
	copy(result, out)
	return result, nil
}
