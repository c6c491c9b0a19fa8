package compress

import (
	"fmt"

	"github.com/colbuf/colbuf/format"
)

// Compressor compresses an already-encoded array branch payload. The
// returned slice is owned by the caller; the input is never modified or
// retained.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor is Compressor's inverse. It validates the compressed format
// and errors on corrupted or incompatible input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every backend in this package implements
// it and is safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
