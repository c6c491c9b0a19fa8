package numeric

import (
	"fmt"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/internal/pool"
	"github.com/colbuf/colbuf/varint"
)

// runLengthEncode groups consecutive equal elements of data into run lengths
// appended to dst and the one value each run repeats. An empty input yields
// two nil slices. dst may be a pooled scratch slice sized to len(data), the
// worst case (no two consecutive elements equal), so the appends never grow
// past its capacity.
func runLengthEncode[T comparable](dst []uint64, data []T) ([]uint64, []T) {
	if len(data) == 0 {
		return nil, nil
	}

	runs := dst
	values := make([]T, 0, len(data))

	cur := data[0]
	count := uint64(1)
	for i := 1; i < len(data); i++ {
		if data[i] == cur {
			count++
			continue
		}
		runs = append(runs, count)
		values = append(values, cur)
		cur = data[i]
		count = 1
	}
	runs = append(runs, count)
	values = append(values, cur)

	return runs, values
}

// expandRuns is the inverse of runLengthEncode: it repeats each values[i]
// runs[i] times. It is lenient about mismatched lengths, stopping as soon as
// either slice is exhausted, so a reader that over-pulls columns externally
// aligned by length does not need to pre-validate the two children match.
func expandRuns[T any](runs []uint64, values []T) []T {
	n := len(runs)
	if len(values) < n {
		n = len(values)
	}

	var out []T
	for i := 0; i < n; i++ {
		for j := uint64(0); j < runs[i]; j++ {
			out = append(out, values[i])
		}
	}
	return out
}

// RLECandidate splits data into run lengths and run values, encodes each
// child independently (recursively, through EncodeRuns/EncodeValues), and
// frames the two results inline. It declines when the longest run in data
// is shorter than Opts.RLEMinRunLength, since short runs are never worth
// the two-branch framing overhead.
//
// EncodeRuns and EncodeValues are supplied by the caller rather than fixed
// here so that each child can be offered its own palette. The lowering
// ladder passes a values encoder that excludes RLE and a runs encoder that
// goes back through the full ladder, RLE included. That recursion ends:
// each runs child is either shorter than its parent or all ones, and an
// all-ones column flushes as a Boolean branch before any candidate runs.
type RLECandidate[T Unsigned] struct {
	Opts         *Options
	EncodeRuns   func(runs []uint64) ([]byte, format.ArrayTypeID, error)
	EncodeValues func(values []T) ([]byte, format.ArrayTypeID, error)
}

func (r RLECandidate[T]) FastSizeFor(data []T) (int, bool) {
	return 0, false
}

func (r RLECandidate[T]) Compress(data []T, buf []byte) ([]byte, format.ArrayTypeID, bool) {
	if len(data) == 0 {
		return nil, 0, false
	}

	scratch, release := pool.GetUint64Slice(len(data))
	defer release()
	runs, values := runLengthEncode(scratch[:0], data)

	var maxRun uint64
	for _, n := range runs {
		if n > maxRun {
			maxRun = n
		}
	}

	// Opts is nil when the caller built its ArrayWriter with NewArrayWriter(nil);
	// fall back to DefaultOptions' own minimum rather than requiring every caller
	// to construct an Options value just to buffer an array with repeats.
	minRun := 2
	if r.Opts != nil {
		minRun = r.Opts.RLEMinRunLength
	}
	if maxRun < uint64(minRun) {
		return nil, 0, false
	}

	runsPayload, runsID, err := r.EncodeRuns(runs)
	if err != nil {
		return nil, 0, false
	}
	valuesPayload, valuesID, err := r.EncodeValues(values)
	if err != nil {
		return nil, 0, false
	}

	out := buf
	out = appendCountedBranch(out, len(runs), runsID, runsPayload)
	out = appendCountedBranch(out, len(values), valuesID, valuesPayload)
	return out, format.RLE, true
}

// appendInlineBranch writes [ArrayTypeID][varint length][payload] to dst.
// Unlike the top-level writer_stream framing, RLE's two children live
// inside a single already-length-framed payload, so their own lengths must
// be self-describing inline rather than carried in an external sidecar.
func appendInlineBranch(dst []byte, id format.ArrayTypeID, payload []byte) []byte {
	dst = append(dst, byte(id))
	dst = varint.Encode(dst, uint64(len(payload)))
	dst = append(dst, payload...)
	return dst
}

// readInlineBranch is the inverse of appendInlineBranch. It returns the
// decoded tag, the payload slice (aliasing data), and the number of bytes
// consumed from the front of data.
func readInlineBranch(data []byte) (format.ArrayTypeID, []byte, int, error) {
	if len(data) < 1 {
		return 0, nil, 0, fmt.Errorf("%w: empty inline branch", ErrInvalidFormat)
	}

	id := format.ArrayTypeID(data[0])
	length, n, err := varint.Decode(data[1:])
	if err != nil {
		return 0, nil, 0, fmt.Errorf("%w: inline branch length: %v", ErrInvalidFormat, err)
	}

	start := 1 + n
	end := start + int(length)
	if end > len(data) {
		return 0, nil, 0, fmt.Errorf("%w: inline branch payload truncated", ErrInvalidFormat)
	}

	return id, data[start:end], end, nil
}

// appendCountedBranch writes [varint element count][ArrayTypeID][varint
// payload length][payload] to dst. RLE's two children (runs and values)
// have their own natural length distinct from the flattened element count
// the parent array reports, so that length must be recorded explicitly
// alongside each child rather than inferred from the enclosing read.
func appendCountedBranch(dst []byte, count int, id format.ArrayTypeID, payload []byte) []byte {
	dst = varint.Encode(dst, uint64(count))
	dst = appendInlineBranch(dst, id, payload)
	return dst
}

// readCountedBranch is the inverse of appendCountedBranch.
func readCountedBranch(data []byte) (count int, id format.ArrayTypeID, payload []byte, consumed int, err error) {
	c, n, err := varint.Decode(data)
	if err != nil {
		return 0, 0, nil, 0, fmt.Errorf("%w: counted branch count: %v", ErrInvalidFormat, err)
	}

	id, payload, bn, err := readInlineBranch(data[n:])
	if err != nil {
		return 0, 0, nil, 0, err
	}

	return int(c), id, payload, n + bn, nil
}
