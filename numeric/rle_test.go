package numeric

import (
	"testing"

	"github.com/colbuf/colbuf/format"
	"github.com/stretchr/testify/require"
)

func TestRunLengthEncode(t *testing.T) {
	runs, values := runLengthEncode(nil, []uint64{1, 1, 1, 2, 2, 3, 3, 3, 3})
	require.Equal(t, []uint64{3, 2, 4}, runs)
	require.Equal(t, []uint64{1, 2, 3}, values)
}

func TestRunLengthEncode_Empty(t *testing.T) {
	runs, values := runLengthEncode(nil, []uint64{})
	require.Nil(t, runs)
	require.Nil(t, values)
}

func TestRunLengthEncode_ReusesScratchCapacity(t *testing.T) {
	scratch := make([]uint64, 0, 8)
	runs, _ := runLengthEncode(scratch, []uint64{5, 5, 6, 6, 6})
	require.Equal(t, []uint64{2, 3}, runs)
	require.Same(t, &scratch[:1][0], &runs[0])
}

func TestExpandRuns(t *testing.T) {
	out := expandRuns([]uint64{3, 2, 4}, []uint64{1, 2, 3})
	require.Equal(t, []uint64{1, 1, 1, 2, 2, 3, 3, 3, 3}, out)
}

func TestExpandRuns_MismatchedLengthsTruncates(t *testing.T) {
	out := expandRuns([]uint64{2, 3}, []uint64{9})
	require.Equal(t, []uint64{9, 9}, out)
}

func TestRLECandidate_DeclinesShortRuns(t *testing.T) {
	opts, err := DefaultOptions(WithRLEMinRunLength(5))
	require.NoError(t, err)

	c := RLECandidate[uint8]{
		Opts: opts,
		EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
			return EncodeU64(runs, opts)
		},
		EncodeValues: func(values []uint8) ([]byte, format.ArrayTypeID, error) {
			return encodeU8NoRLE(values)
		},
	}

	_, _, ok := c.Compress([]uint8{1, 2, 3, 4}, nil)
	require.False(t, ok, "no run reaches the minimum length, so RLE should decline")
}

func TestRLECandidate_AcceptsLongRuns(t *testing.T) {
	opts, err := DefaultOptions(WithRLEMinRunLength(3))
	require.NoError(t, err)

	c := RLECandidate[uint8]{
		Opts: opts,
		EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
			return EncodeU64(runs, opts)
		},
		EncodeValues: func(values []uint8) ([]byte, format.ArrayTypeID, error) {
			return encodeU8NoRLE(values)
		},
	}

	out, id, ok := c.Compress([]uint8{1, 1, 1, 1, 2}, nil)
	require.True(t, ok)
	require.Equal(t, format.RLE, id)
	require.NotEmpty(t, out)
}

func TestRLECandidate_NilOptsUsesDefaultMinRunLength(t *testing.T) {
	c := RLECandidate[uint8]{
		Opts: nil,
		EncodeRuns: func(runs []uint64) ([]byte, format.ArrayTypeID, error) {
			return EncodeU64(runs, nil)
		},
		EncodeValues: func(values []uint8) ([]byte, format.ArrayTypeID, error) {
			return encodeU8NoRLE(values)
		},
	}

	require.NotPanics(t, func() {
		_, _, ok := c.Compress([]uint8{1, 2, 3, 4}, nil)
		require.False(t, ok, "no run reaches the default minimum length, so RLE should decline")
	})

	out, id, ok := c.Compress([]uint8{1, 1, 1, 1, 2}, nil)
	require.True(t, ok, "a run of 4 clears the default minimum of 2 even with nil Opts")
	require.Equal(t, format.RLE, id)
	require.NotEmpty(t, out)
}

func TestAppendReadInlineBranch_RoundTrip(t *testing.T) {
	var dst []byte
	dst = appendInlineBranch(dst, 0x3, []byte{1, 2, 3, 4})

	id, payload, consumed, err := readInlineBranch(dst)
	require.NoError(t, err)
	require.Equal(t, byte(0x3), byte(id))
	require.Equal(t, []byte{1, 2, 3, 4}, payload)
	require.Equal(t, len(dst), consumed)
}

func TestAppendReadCountedBranch_RoundTrip(t *testing.T) {
	var dst []byte
	dst = appendCountedBranch(dst, 7, 0x4, []byte{9, 9, 9})

	count, id, payload, consumed, err := readCountedBranch(dst)
	require.NoError(t, err)
	require.Equal(t, 7, count)
	require.Equal(t, byte(0x4), byte(id))
	require.Equal(t, []byte{9, 9, 9}, payload)
	require.Equal(t, len(dst), consumed)
}
