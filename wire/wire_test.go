package wire

import (
	"testing"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/varint"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteWithID_BackpatchesTag(t *testing.T) {
	w := NewWriter()
	id := w.WriteWithID(func(w *Writer) format.ArrayTypeID {
		w.Bytes = append(w.Bytes, 0xAA, 0xBB)
		return format.U8
	})

	require.Equal(t, format.U8, id)
	require.Equal(t, []byte{byte(format.U8), 0xAA, 0xBB}, w.Bytes)
}

func TestWriter_WriteWithID_VoidWritesNoPayload(t *testing.T) {
	w := NewWriter()
	id := w.WriteWithID(func(w *Writer) format.ArrayTypeID {
		return format.Void
	})

	require.Equal(t, format.Void, id)
	require.Equal(t, []byte{byte(format.Void)}, w.Bytes)
}

func TestWriter_WriteWithID_VoidWithPayloadPanics(t *testing.T) {
	w := NewWriter()
	require.Panics(t, func() {
		w.WriteWithID(func(w *Writer) format.ArrayTypeID {
			w.Bytes = append(w.Bytes, 1)
			return format.Void
		})
	})
}

func TestWriter_WriteWithLen_RecordsLength(t *testing.T) {
	w := NewWriter()
	WriteWithLen(w, func(w *Writer) struct{} {
		w.Bytes = append(w.Bytes, 1, 2, 3)
		return struct{}{}
	})

	require.Equal(t, []int{3}, w.Lens)
}

func TestWriter_ReserveAndWriteWithVarint(t *testing.T) {
	w := NewWriter()
	w.ReserveAndWriteWithVarint(1<<20, func(w *Writer) uint64 {
		w.Bytes = append(w.Bytes, 0xFF)
		return 42
	})

	require.Equal(t, byte(0xFF), w.Bytes[len(w.Bytes)-1])

	// The backpatched varint occupies the width reserved for max, not the
	// value's own minimal width.
	v, n, err := varint.Decode(w.Bytes)
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)
	require.Equal(t, varint.SizeFor(1<<20), n)
}

func TestWriter_ReserveAndWriteWithVarint_OverMaxPanics(t *testing.T) {
	w := NewWriter()
	require.Panics(t, func() {
		w.ReserveAndWriteWithVarint(10, func(w *Writer) uint64 {
			return 11
		})
	})
}

func TestReadBranch_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteWithID(func(w *Writer) format.ArrayTypeID {
		return WriteWithLen(w, func(w *Writer) format.ArrayTypeID {
			w.Bytes = append(w.Bytes, 10, 20, 30)
			return format.U8
		})
	})

	branch, n, err := ReadBranch(w.Bytes, w.Lens[0])
	require.NoError(t, err)
	require.Equal(t, format.U8, branch.Type)
	require.Equal(t, []byte{10, 20, 30}, branch.Payload)
	require.Equal(t, len(w.Bytes), n)
}

func TestReadBranch_Truncated(t *testing.T) {
	_, _, err := ReadBranch([]byte{byte(format.U8)}, 5)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestCompressDecompressFrame_RoundTrip(t *testing.T) {
	payload := []byte("some encoded array payload, repeated repeated repeated")
	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionS2, format.CompressionLZ4} {
		frame, err := CompressFrame(payload, ct)
		require.NoError(t, err)

		got, err := DecompressFrame(frame)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	}
}
