package wire

import (
	"fmt"

	"github.com/colbuf/colbuf/compress"
	"github.com/colbuf/colbuf/format"
)

// CompressFrame wraps an already-encoded array or branch payload with a
// frame-level byte compressor, independent of whichever codec the payload
// itself chose. The frame is the compression tag byte followed by the
// compressed bytes; DecompressFrame is its exact inverse.
func CompressFrame(payload []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("wire: compress frame: %w", err)
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("wire: compress frame: %w", err)
	}

	out := make([]byte, 0, len(compressed)+1)
	out = append(out, byte(compression))
	out = append(out, compressed...)
	return out, nil
}

// DecompressFrame reads the compression tag byte from frame, decompresses
// the remaining bytes, and returns the original payload.
func DecompressFrame(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("wire: decompress frame: empty input")
	}

	compression := format.CompressionType(frame[0])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("wire: decompress frame: %w", err)
	}

	payload, err := codec.Decompress(frame[1:])
	if err != nil {
		return nil, fmt.Errorf("wire: decompress frame: %w", err)
	}
	return payload, nil
}
