package numeric

import (
	"testing"

	"github.com/colbuf/colbuf/wire"
	"github.com/stretchr/testify/require"
)

func TestArrayCursor_ReadNext(t *testing.T) {
	opts := mustOptions(t)
	values := []uint32{5, 10, 15, 20}

	aw := NewArrayWriter[uint32](opts)
	aw.WriteSlice(values)
	w := wire.NewWriter()
	_, err := aw.Flush(w)
	require.NoError(t, err)

	cur, consumed, err := NewArrayCursor[uint32](w.Bytes, w.Lens[0], len(values))
	require.NoError(t, err)
	require.Equal(t, len(w.Bytes), consumed)
	require.Equal(t, len(values), cur.Remaining())

	for _, want := range values {
		require.Equal(t, want, cur.ReadNext())
	}
	require.Equal(t, 0, cur.Remaining())
}

func TestArrayCursor_OverPullYieldsZeros(t *testing.T) {
	opts := mustOptions(t)
	aw := NewArrayWriter[uint64](opts)
	aw.WriteSlice([]uint64{7, 8})
	w := wire.NewWriter()
	_, err := aw.Flush(w)
	require.NoError(t, err)

	cur, _, err := NewArrayCursor[uint64](w.Bytes, w.Lens[0], 2)
	require.NoError(t, err)

	require.Equal(t, uint64(7), cur.ReadNext())
	require.Equal(t, uint64(8), cur.ReadNext())
	for i := 0; i < 5; i++ {
		require.Equal(t, uint64(0), cur.ReadNext())
	}
}

func TestArrayCursor_EmptyBranch(t *testing.T) {
	opts := mustOptions(t)
	aw := NewArrayWriter[uint16](opts)
	w := wire.NewWriter()
	_, err := aw.Flush(w)
	require.NoError(t, err)

	cur, _, err := NewArrayCursor[uint16](w.Bytes, w.Lens[0], 0)
	require.NoError(t, err)
	require.Equal(t, 0, cur.Remaining())
	require.Equal(t, uint16(0), cur.ReadNext())
}

func TestArrayCursor_ConstructionSurfacesTruncation(t *testing.T) {
	_, _, err := NewArrayCursor[uint32]([]byte{0x3}, 10, 4)
	require.Error(t, err)
}

func TestArrayCursor_All(t *testing.T) {
	opts := mustOptions(t)
	values := []uint8{3, 6, 9}

	aw := NewArrayWriter[uint8](opts)
	aw.WriteSlice(values)
	w := wire.NewWriter()
	_, err := aw.Flush(w)
	require.NoError(t, err)

	cur, _, err := NewArrayCursor[uint8](w.Bytes, w.Lens[0], len(values))
	require.NoError(t, err)

	var got []uint8
	for v := range cur.All() {
		got = append(got, v)
	}
	require.Equal(t, values, got)
	require.Equal(t, 0, cur.Remaining())
}

func TestFloatArrayCursor_ReadNext(t *testing.T) {
	opts := mustOptions(t)
	values := []float64{1.5, 1.5, 2.25, -8.0}

	fw := NewFloatArrayWriter(opts)
	fw.WriteSlice(values)
	w := wire.NewWriter()
	_, err := fw.Flush(w)
	require.NoError(t, err)

	cur, consumed, err := NewFloatArrayCursor(w.Bytes, w.Lens[0], len(values))
	require.NoError(t, err)
	require.Equal(t, len(w.Bytes), consumed)

	for _, want := range values {
		require.Equal(t, want, cur.ReadNext())
	}
	require.Equal(t, float64(0), cur.ReadNext())
	require.Equal(t, float64(0), cur.ReadNext())
}

func TestFloatArrayCursor_MultipleColumns(t *testing.T) {
	opts := mustOptions(t)
	w := wire.NewWriter()

	fw := NewFloatArrayWriter(opts)
	fw.WriteSlice([]float64{1.0, 2.0})
	_, err := fw.Flush(w)
	require.NoError(t, err)

	aw := NewArrayWriter[uint32](opts)
	aw.WriteSlice([]uint32{100, 200, 300})
	_, err = aw.Flush(w)
	require.NoError(t, err)

	fcur, consumed, err := NewFloatArrayCursor(w.Bytes, w.Lens[0], 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, fcur.ReadNext())
	require.Equal(t, 2.0, fcur.ReadNext())

	icur, _, err := NewArrayCursor[uint32](w.Bytes[consumed:], w.Lens[1], 3)
	require.NoError(t, err)
	require.Equal(t, uint32(100), icur.ReadNext())
	require.Equal(t, uint32(200), icur.ReadNext())
	require.Equal(t, uint32(300), icur.ReadNext())
}
