// Package bitstream provides a little-endian bit-packing primitive for
// numeric codecs that emit a variable number of bits per value. Gorilla
// XOR-delta encoding is its user; Simple16 packs its 32-bit words directly.
//
// The wire format is intentionally simple: bits accumulate most-significant
// first into a 64-bit staging word, the word is flushed to the output buffer
// in little-endian byte order whenever it fills, and a final trailer byte
// records how many bits of the last partial word are meaningful. A reader
// that knows the trailer byte can stop exactly where the writer did without
// needing to know the value count in advance.
package bitstream

import "github.com/colbuf/colbuf/internal/pool"

// Writer accumulates bits MSB-first into a 64-bit staging word and flushes
// complete little-endian words to an internal buffer as they fill.
//
// The zero value is not usable; construct with NewWriter. A Writer is not
// safe for concurrent use.
type Writer struct {
	buf      *pool.ByteBuffer
	word     uint64
	capacity uint8 // remaining free bits in word, 0..64
}

// NewWriter returns a Writer with an empty staging word and full capacity.
func NewWriter() *Writer {
	return &Writer{
		buf:      pool.GetBlobBuffer(),
		capacity: 64,
	}
}

// WriteBits packs the low count bits of bits into the staging word,
// most-significant bit first, flushing the word to the output buffer in
// little-endian order whenever it fills. count must be in 0..64; count == 0
// is a no-op.
//
// This mirrors the accumulate-and-flush routine used by the Gorilla XOR
// encoder: values are shifted into the top of the word as capacity allows,
// and any overflow is carried into a freshly zeroed word after the flush.
func (w *Writer) WriteBits(bits uint64, count uint8) {
	if count == 0 {
		return
	}
	if count <= w.capacity {
		w.word ^= bits << (w.capacity - count)
		w.capacity -= count
		return
	}

	remainder := count - w.capacity
	w.word ^= bits >> remainder
	w.flushWord()
	w.capacity = 64 - remainder
	w.word = bits << w.capacity
}

// flushWord appends the current staging word to the output buffer in
// little-endian byte order and does not reset it; callers overwrite word
// immediately after calling this.
func (w *Writer) flushWord() {
	var b [8]byte
	putUint64LE(b[:], w.word)
	w.buf.MustWrite(b[:])
}

// Finish flushes any partially-filled staging word, appends a trailer byte
// recording the number of meaningful bits in that final partial word, and
// returns the complete encoded payload. The Writer must not be used after
// calling Finish.
//
// When the staging word is exactly full (capacity == 0) at the time of the
// last WriteBits call, remaining bits still belong to a partial word unless
// a full word was just flushed; the trailer byte is always written, even
// when its value is 0, so a reader can unconditionally consume the last byte
// as the bit count.
func (w *Writer) Finish() []byte {
	remaining := 64 - w.capacity
	byteCount := remaining / 8
	if byteCount*8 != remaining {
		byteCount++
	}

	var b [8]byte
	putUint64LE(b[:], w.word)
	w.buf.MustWrite(b[8-byteCount:])
	w.buf.MustWrite([]byte{remaining})

	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	pool.PutBlobBuffer(w.buf)
	w.buf = nil
	return out
}

// Len returns the number of complete bytes flushed so far, not including any
// pending partial word or the trailer byte that Finish will append.
func (w *Writer) Len() int {
	return w.buf.Len()
}

func putUint64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
