// Package format defines the closed enumerations used to tag encoded arrays
// and root scalars on the wire.
package format

// ArrayTypeID identifies how the payload of an array branch is encoded.
//
// Every array branch written to a stream is preceded by exactly one
// ArrayTypeID byte. Void carries no payload bytes; every other tag is
// followed by a payload whose length lives in the enclosing frame's length
// sidecar.
type ArrayTypeID uint8

const (
	Void          ArrayTypeID = 0x0 // Empty array; zero payload bytes.
	Boolean       ArrayTypeID = 0x1 // Packed boolean bits.
	U8            ArrayTypeID = 0x2 // Raw unsigned bytes, widened on read.
	IntPrefixVar  ArrayTypeID = 0x3 // Prefix-varint encoded unsigned integers.
	IntSimple16   ArrayTypeID = 0x4 // Simple16-packed unsigned 32-bit integers.
	DoubleGorilla ArrayTypeID = 0x5 // Gorilla XOR-delta encoded float64 values.
	RLE           ArrayTypeID = 0x6 // Run-length encoding over two child branches.
	DoubleRaw     ArrayTypeID = 0x7 // Uncompressed float64 values, 8 bytes each.
)

// String returns a human-readable name for the tag, used in error messages
// and debug logging.
func (id ArrayTypeID) String() string {
	switch id {
	case Void:
		return "Void"
	case Boolean:
		return "Boolean"
	case U8:
		return "U8"
	case IntPrefixVar:
		return "IntPrefixVar"
	case IntSimple16:
		return "IntSimple16"
	case DoubleGorilla:
		return "DoubleGorilla"
	case RLE:
		return "RLE"
	case DoubleRaw:
		return "DoubleRaw"
	default:
		return "Unknown"
	}
}

// RootTypeID identifies the wire form of a singleton (non-array) root value.
//
// Unlike ArrayTypeID, a root value's payload length is implied entirely by
// the tag: Zero and One carry no bytes, IntU8..IntU64 carry 1-8 little-endian
// bytes, and RootDouble carries a fixed 8 bytes.
type RootTypeID uint8

const (
	Zero       RootTypeID = 0x0
	One        RootTypeID = 0x1
	IntU8      RootTypeID = 0x2
	IntU16     RootTypeID = 0x3
	IntU24     RootTypeID = 0x4
	IntU32     RootTypeID = 0x5
	IntU40     RootTypeID = 0x6
	IntU48     RootTypeID = 0x7
	IntU56     RootTypeID = 0x8
	IntU64     RootTypeID = 0x9
	RootDouble RootTypeID = 0xA // 8 little-endian bytes, IEEE 754 float64.
)

// String returns a human-readable name for the tag.
func (id RootTypeID) String() string {
	switch id {
	case Zero:
		return "Zero"
	case One:
		return "One"
	case IntU8:
		return "IntU8"
	case IntU16:
		return "IntU16"
	case IntU24:
		return "IntU24"
	case IntU32:
		return "IntU32"
	case IntU40:
		return "IntU40"
	case IntU48:
		return "IntU48"
	case IntU56:
		return "IntU56"
	case IntU64:
		return "IntU64"
	case RootDouble:
		return "RootDouble"
	default:
		return "Unknown"
	}
}

// PayloadBytes returns the number of little-endian payload bytes that follow
// an IntU8..IntU64 root tag. It returns 0 for Zero/One, which carry no
// payload, and for RootDouble, whose fixed 8-byte payload is handled
// separately by the root float path.
func (id RootTypeID) PayloadBytes() int {
	switch id {
	case IntU8:
		return 1
	case IntU16:
		return 2
	case IntU24:
		return 3
	case IntU32:
		return 4
	case IntU40:
		return 5
	case IntU48:
		return 6
	case IntU56:
		return 7
	case IntU64:
		return 8
	default:
		return 0
	}
}

// CompressionType identifies the frame-level byte compressor applied on top
// of an already-encoded array or branch payload, independent of the
// encoding choice the payload itself made.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // No compression.
	CompressionZstd CompressionType = 0x2 // Zstandard.
	CompressionS2   CompressionType = 0x3 // S2 (Snappy-compatible, faster/lower ratio).
	CompressionLZ4  CompressionType = 0x4 // LZ4.
)

// String returns a human-readable name for the compression tag.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
