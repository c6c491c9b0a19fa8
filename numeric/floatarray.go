package numeric

import (
	"fmt"

	"github.com/colbuf/colbuf/endian"
	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/wire"
)

// FloatCandidate is Candidate's float64 counterpart: Select[T] is generic
// over Unsigned, which float64 does not satisfy, so float arrays race their
// own small palette through the same estimate-then-trial discipline via
// selectFloat below.
type FloatCandidate interface {
	FastSizeFor(data []float64) (size int, ok bool)
	Compress(data []float64, buf []byte) (out []byte, id format.ArrayTypeID, ok bool)
}

// GorillaCandidate XOR-delta compresses a float64 column. It has no cheap
// size estimate, since the output size depends on how similar consecutive
// values turn out to be, so the selection engine always trial-compresses it.
type GorillaCandidate struct {
	Opts *Options
}

func (c GorillaCandidate) FastSizeFor(data []float64) (int, bool) {
	return 0, false
}

func (c GorillaCandidate) Compress(data []float64, buf []byte) ([]byte, format.ArrayTypeID, bool) {
	if len(data) == 0 {
		return nil, 0, false
	}
	enc := NewGorillaEncoderWithOptions(c.Opts)
	enc.WriteSlice(data)
	buf = append(buf, enc.Finish()...)
	return buf, format.DoubleGorilla, true
}

// DoubleRawCandidate stores each value as 8 uncompressed little-endian
// bytes via NumericRawEncoder. It never declines and has a cheap exact
// estimate, making it the universal fallback for float columns the way
// PrefixVarIntCandidate is for integer columns.
type DoubleRawCandidate struct{}

func (c DoubleRawCandidate) FastSizeFor(data []float64) (int, bool) {
	return len(data) * 8, true
}

func (c DoubleRawCandidate) Compress(data []float64, buf []byte) ([]byte, format.ArrayTypeID, bool) {
	enc := NewNumericRawEncoder(endian.GetLittleEndianEngine())
	defer enc.Finish()
	enc.WriteSlice(data)
	buf = append(buf, enc.Bytes()...)
	return buf, format.DoubleRaw, true
}

// selectFloat is Select[T]'s float64 counterpart, following the identical
// estimate-then-trial selection discipline.
func selectFloat(data []float64, candidates []FloatCandidate, opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(candidates) == 0 {
		return nil, 0, ErrNoCandidate
	}

	allEstimated := true
	estimates := make([]int, len(candidates))
	for i, c := range candidates {
		size, ok := c.FastSizeFor(data)
		if !ok {
			allEstimated = false
			break
		}
		estimates[i] = size
	}

	if allEstimated {
		winner := 0
		for i := 1; i < len(candidates); i++ {
			if estimates[i] < estimates[winner] {
				winner = i
			}
		}
		if out, id, ok := candidates[winner].Compress(data, nil); ok {
			recordSelection(opts, id)
			return out, id, nil
		}
	}

	bestIdx := -1
	var bestOut []byte
	var bestID format.ArrayTypeID

	for i, c := range candidates {
		out, id, ok := c.Compress(data, nil)
		if !ok {
			continue
		}
		if bestIdx == -1 || len(out) < len(bestOut) {
			bestIdx = i
			bestOut = out
			bestID = id
		}
	}

	if bestIdx == -1 {
		return nil, 0, ErrNoCandidate
	}
	recordSelection(opts, bestID)
	return bestOut, bestID, nil
}

// EncodeF64 races the float64 palette (Gorilla, raw) and returns whichever
// produces the smallest payload. Unlike the unsigned ladder, there is no
// width to lower: every float64 array is offered the same two candidates.
func EncodeF64(data []float64, opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(data) == 0 {
		return nil, format.Void, nil
	}

	candidates := []FloatCandidate{
		GorillaCandidate{Opts: opts},
		DoubleRawCandidate{},
	}
	payload, id, err := selectFloat(data, candidates, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: encode f64 array: %w", err)
	}
	return payload, id, nil
}

// DecodeArrayFloat reconstructs count float64 values from a type-tagged
// array branch. Unlike DecodeArray's integer dispatch, there is no implicit
// boolean fallback for floats: an unrecognized tag is a schema mismatch.
func DecodeArrayFloat(id format.ArrayTypeID, payload []byte, count int) ([]float64, error) {
	switch id {
	case format.Void:
		return make([]float64, count), nil

	case format.DoubleGorilla:
		return DecodeGorilla(payload, count)

	case format.DoubleRaw:
		return decodeDoubleRawArray(payload, count)

	default:
		return nil, fmt.Errorf("%w: array tag %s cannot decode as float64", ErrSchemaMismatch, id)
	}
}

// decodeDoubleRawArray delegates to NumericRawDecoder.At rather than
// re-deriving the byte layout here, so DoubleRawCandidate's encoder and its
// decoder share one definition of the wire format.
func decodeDoubleRawArray(payload []byte, count int) ([]float64, error) {
	decoder := NewNumericRawDecoder(endian.GetLittleEndianEngine())
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		val, ok := decoder.At(payload, i, count)
		if !ok {
			break // over-pull past the encoded data: leave the default zero value
		}
		out[i] = val
	}
	return out, nil
}

// FloatArrayWriter buffers a column of float64 values and flushes them
// through EncodeF64 into a framed wire branch, mirroring ArrayWriter[T]'s
// composition of WriteWithID wrapping WriteWithLen.
type FloatArrayWriter struct {
	opts   *Options
	values []float64
}

// NewFloatArrayWriter returns a FloatArrayWriter configured by opts.
func NewFloatArrayWriter(opts *Options) *FloatArrayWriter {
	return &FloatArrayWriter{opts: opts}
}

// Write buffers a single value for the next Flush.
func (a *FloatArrayWriter) Write(value float64) {
	a.values = append(a.values, value)
}

// WriteSlice buffers every value in values.
func (a *FloatArrayWriter) WriteSlice(values []float64) {
	a.values = append(a.values, values...)
}

// Len returns the number of buffered values.
func (a *FloatArrayWriter) Len() int {
	return len(a.values)
}

// Reset clears buffered values without releasing the underlying slice.
func (a *FloatArrayWriter) Reset() {
	a.values = a.values[:0]
}

// Flush runs the buffered values through EncodeF64 and writes the resulting
// branch to w, returning the ArrayTypeID that was written. Like
// ArrayWriter[T].Flush, a non-Void payload is wrapped with
// wire.CompressFrame under opts' FrameCompression codec before being
// written.
func (a *FloatArrayWriter) Flush(w *wire.Writer) (format.ArrayTypeID, error) {
	var encodeErr error

	id := w.WriteWithID(func(w *wire.Writer) format.ArrayTypeID {
		return wire.WriteWithLen(w, func(w *wire.Writer) format.ArrayTypeID {
			payload, id, err := EncodeF64(a.values, a.opts)
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
		return 0, fmt.Errorf("numeric: float array writer flush: %w", encodeErr)
	}
	return id, nil
}

// FloatArrayReader decodes a single float64 column branch written by a
// FloatArrayWriter.
type FloatArrayReader struct{}

// NewFloatArrayReader returns a FloatArrayReader.
func NewFloatArrayReader() *FloatArrayReader {
	return &FloatArrayReader{}
}

// Read consumes one [ArrayTypeID][payload] branch from the front of data,
// using payloadLen from the caller's length sidecar, and decodes it into
// count values. It returns the decoded values and the number of bytes
// consumed from data.
func (FloatArrayReader) Read(data []byte, payloadLen int, count int) ([]float64, int, error) {
	branch, consumed, err := wire.ReadBranch(data, payloadLen)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: float array reader: %w", err)
	}

	payload := branch.Payload
	if branch.Type != format.Void {
		payload, err = wire.DecompressFrame(branch.Payload)
		if err != nil {
			return nil, 0, fmt.Errorf("numeric: float array reader: %w", err)
		}
	}

	values, err := DecodeArrayFloat(branch.Type, payload, count)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: float array reader: %w", err)
	}
	return values, consumed, nil
}
