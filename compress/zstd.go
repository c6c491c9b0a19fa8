package compress

// ZstdCompressor frame-compresses array branch payloads with Zstandard,
// the highest-ratio backend Options.FrameCompression can select — worth
// it for archival writes where decode happens far less often than encode.
// Compress/Decompress are implemented in zstd_pure.go (!nobuild, always active)
// or zstd_cgo.go (nobuild, opt-in).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
