// Package numeric provides low-level encoding and decoding algorithms for
// columnar numeric arrays.
//
// This package implements the compressor selection and fallback machinery
// that backs the library's array format: for any given slice of integers or
// floats it tries a palette of candidate encodings, keeps whichever produces
// the smallest byte count, and records the winner's tag so a reader can
// dispatch straight back to the matching decoder.
//
// # Overview
//
// Two value families are supported, each with its own candidate palette:
//
// Unsigned integers - width-lowered and bit-packed:
//   - Raw bytes: no compression, 1 byte per value, used once nothing smaller fits
//   - Prefix-varint: unary length prefix + little-endian payload, good for skewed magnitudes
//   - Simple16: four-bit selector packing multiple values per 32-bit word
//   - RLE: recursive meta-compressor over repeated runs
//
// Float64 values - raw or delta-compressed:
//   - Raw encoding: no compression, 8 bytes per value
//   - Gorilla encoding: XOR-delta bit-packing, 1 to 77 bits per value after a full 64-bit first value
//
// # Architecture
//
// The package is organized around the ColumnarEncoder and ColumnarDecoder
// interfaces:
//
//	type ColumnarEncoder[T comparable] interface {
//	    Write(data T)           // Encode single value
//	    WriteSlice(data []T)    // Encode multiple values (more efficient)
//	    Bytes() []byte          // Get encoded data
//	    Len() int               // Number of values encoded
//	    Size() int              // Size in bytes
//	    Reset()                 // Clear state but keep buffer
//	    Finish()                // Finalize and release resources
//	}
//
//	type ColumnarDecoder[T comparable] interface {
//	    All(data []byte, count int) iter.Seq[T]      // Sequential iteration
//	    At(data []byte, index, count int) (T, bool)  // Random access (if supported)
//	}
//
// # Integer Lowering
//
// Unsigned integers are written through a width-lowering ladder: a u64 slice
// is first checked against the u32 range, then u16, then u8, narrowing the
// type used for bit-packing whenever every value fits. At each rung a small
// set of candidate compressors races against each other and the smallest
// output wins:
//
//	opts, _ := numeric.DefaultOptions()
//	writer := numeric.NewArrayWriter[uint64](opts)
//	writer.WriteSlice([]uint64{1, 1, 1, 1, 2, 2, 2})
//	w := wire.NewWriter()
//	tag, _ := writer.Flush(w)  // likely RLE or Simple16, not raw u64
//
// # Float64 Encoding
//
// NumericRawEncoder/Decoder - uncompressed float64 values:
//
//	encoder := numeric.NewNumericRawEncoder(endian.GetLittleEndianEngine())
//	encoder.Write(42.5)
//	encoder.Write(43.7)
//	data := encoder.Bytes()  // 16 bytes (2 x 8 bytes)
//
// Use when values change dramatically between points, random access is
// required, or compression provides no benefit.
//
// GorillaEncoder/Decoder - XOR-delta bit-packing:
//
//	encoder := numeric.NewGorillaEncoder()
//	encoder.Write(42.5)      // First: full 64 bits
//	encoder.Write(42.5)      // Unchanged: 1 bit
//	encoder.Write(42.501)    // Similar: a handful of meaningful bits
//	data := encoder.Finish()
//
// Algorithm:
//  1. XOR current value with previous value
//  2. If XOR = 0: store 1 control bit (0)
//  3. If XOR != 0:
//     - Store control bit (1)
//     - Count leading and trailing zeros in XOR
//     - If the meaningful bits fit inside the previous block's window: store 1 bit (0) + the bits of that window
//     - Otherwise: store 1 bit (1) + 5 bits (leading zero count, capped at 31) + 6 bits (window length minus one) + meaningful bits
//
// Use when values change slowly and consecutive values are similar.
//
// EncodeF64/FloatArrayWriter - automatic candidate selection:
//
// Most callers don't need to pick between raw and Gorilla by hand. EncodeF64
// races both candidates the same way the integer ladder races its palette,
// and FloatArrayWriter/FloatArrayReader frame the winner through the same
// WriteWithID/WriteWithLen composition ArrayWriter[T] uses for integers:
//
//	opts, _ := numeric.DefaultOptions()
//	fw := numeric.NewFloatArrayWriter(opts)
//	fw.WriteSlice([]float64{42.5, 42.5, 42.501})
//	w := wire.NewWriter()
//	tag, _ := fw.Flush(w)  // DoubleGorilla, here
//
// # RLE
//
// Runs of identical values are detected and split into a run-length child
// array and a values child array, each encoded recursively. The values child
// is offered the palette without RLE; the run-length child goes back through
// the full ladder and may itself be RLE. Each nested run-length child is
// either shorter than its parent or all ones (which flushes as a Boolean
// branch), so the recursion always ends.
//
// # Performance Characteristics
//
// Encoders use internal buffer pools to minimize allocations. Decoders favor
// sequential iteration (iter.Seq) with no allocation per step; random access
// is only supported by the raw codecs, since delta- and bit-packed codecs
// must be decoded from the start.
//
// # Thread Safety
//
// Encoders: not thread-safe, use one encoder per goroutine.
//
// Decoders: thread-safe for concurrent reads from different goroutines.
//
// Buffer pools: thread-safe with internal synchronization.
package numeric
