package numeric

import "errors"

// ErrSchemaMismatch is returned when a decoded value cannot be represented
// in the type a reader was asked to produce, e.g. a root branch carrying a
// float where an integer was requested, or a narrowed value that overflows
// the requested width.
var ErrSchemaMismatch = errors.New("numeric: schema mismatch")

// ErrInvalidFormat is returned when a payload's internal structure is
// inconsistent with its declared encoding, e.g. a Simple16 payload whose
// length is not a multiple of 4 bytes, or an RLE branch missing one of its
// two children.
var ErrInvalidFormat = errors.New("numeric: invalid format")

// ErrNoCandidate is returned by the selection engine when every candidate in
// a palette declines to encode the given data and the caller's data was
// non-empty, so falling back to Void would silently drop values.
var ErrNoCandidate = errors.New("numeric: no candidate compressor accepted the data")
