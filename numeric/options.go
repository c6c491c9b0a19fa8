package numeric

import "github.com/colbuf/colbuf/format"

// Option configures an Options value as it is built by DefaultOptions. Unlike
// a generic functional-options helper, Option is tied directly to *Options:
// this package has exactly one configurable type, so there is nothing for a
// type parameter to abstract over.
type Option interface {
	apply(*Options) error
}

// optionFunc adapts a plain func(*Options) into an Option.
type optionFunc func(*Options) error

func (f optionFunc) apply(o *Options) error { return f(o) }

// noErrOption wraps a function that can never fail, for the common case of
// an option that just assigns a field.
func noErrOption(fn func(*Options)) Option {
	return optionFunc(func(o *Options) error {
		fn(o)
		return nil
	})
}

// Options configures array encoding behavior. The zero value is not valid;
// construct with DefaultOptions and override via the With* functions.
type Options struct {
	// RLEMinRunLength is the shortest run (in elements) the RLE candidate
	// will bother emitting. Runs shorter than this are still representable,
	// but the candidate declines early rather than pay the selection
	// engine's trial-compress cost for runs unlikely to ever win.
	RLEMinRunLength int

	// LossyFloatTolerance, when non-nil, permits the Gorilla candidate to
	// treat two float64 values as equal if their absolute difference is at
	// most this tolerance, trading exactness for a higher hit rate on the
	// XOR-equals-zero fast path. Nil means exact comparison only.
	LossyFloatTolerance *float64

	// Profile enables lightweight instrumentation of candidate selection,
	// recording which candidate won for each array encoded through this
	// Options value.
	Profile bool

	// FrameCompression selects the wire-level compression codec applied to an
	// array branch's encoded payload after the candidate selection engine has
	// already chosen its column representation. DefaultOptions sets it to
	// format.CompressionNone, which wraps the payload in a 1-byte identity
	// frame.
	FrameCompression format.CompressionType

	selections []format.ArrayTypeID
}

// Selections returns the ArrayTypeID of every candidate that has won
// selection through this Options value so far. It is empty unless Profile
// was enabled. The returned slice is a copy; callers may freely mutate it.
func (o *Options) Selections() []format.ArrayTypeID {
	out := make([]format.ArrayTypeID, len(o.selections))
	copy(out, o.selections)
	return out
}

// recordSelection appends id to opts' selection log when profiling is
// enabled. opts may be nil, in which case this is a no-op.
func recordSelection(opts *Options, id format.ArrayTypeID) {
	if opts == nil || !opts.Profile {
		return
	}
	opts.selections = append(opts.selections, id)
}

// frameCompression returns opts' configured FrameCompression, or
// format.CompressionNone if opts is nil or was built without one
// (format.CompressionType has no zero-valued member).
func frameCompression(opts *Options) format.CompressionType {
	if opts == nil || opts.FrameCompression == 0 {
		return format.CompressionNone
	}
	return opts.FrameCompression
}

// DefaultOptions returns an Options with conservative defaults: exact float
// comparison, no profiling, identity frame compression, and a minimum RLE
// run length of 2 (a run of 1 is never smaller than just emitting the value
// directly).
func DefaultOptions(opts ...Option) (*Options, error) {
	o := &Options{
		RLEMinRunLength:  2,
		FrameCompression: format.CompressionNone,
	}
	for _, opt := range opts {
		if err := opt.apply(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithRLEMinRunLength overrides the minimum run length the RLE candidate
// will consider emitting.
func WithRLEMinRunLength(n int) Option {
	return noErrOption(func(o *Options) {
		o.RLEMinRunLength = n
	})
}

// WithLossyFloatTolerance enables tolerance-based equality for the Gorilla
// candidate's zero-XOR fast path.
func WithLossyFloatTolerance(tolerance float64) Option {
	return noErrOption(func(o *Options) {
		o.LossyFloatTolerance = &tolerance
	})
}

// WithProfiling enables candidate-selection instrumentation.
func WithProfiling(enabled bool) Option {
	return noErrOption(func(o *Options) {
		o.Profile = enabled
	})
}

// WithFrameCompression sets the codec ArrayWriter/FloatArrayWriter use to
// compress a branch's payload bytes after encoding. format.CompressionNone
// (the default) costs one identity-frame tag byte and nothing else.
func WithFrameCompression(c format.CompressionType) Option {
	return noErrOption(func(o *Options) {
		o.FrameCompression = c
	})
}
