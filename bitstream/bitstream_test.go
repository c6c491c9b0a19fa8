package bitstream

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTripFixedWidths(t *testing.T) {
	w := NewWriter()
	values := []struct {
		bits  uint64
		count uint8
	}{
		{0b1, 1},
		{0b101, 3},
		{0xABCD, 16},
		{0x1FFFFFFFF, 33},
		{0, 1},
		{0xFFFFFFFFFFFFFFFF, 64},
	}

	for _, v := range values {
		w.WriteBits(v.bits, v.count)
	}
	payload := w.Finish()
	require.NotEmpty(t, payload)

	r := NewReader(payload)
	for _, v := range values {
		got, err := r.ReadBits(v.count)
		require.NoError(t, err)
		require.Equal(t, v.bits&mask(v.count), got)
	}
}

func TestWriterReader_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := NewWriter()

	type entry struct {
		bits  uint64
		count uint8
	}
	var entries []entry
	for i := 0; i < 500; i++ {
		count := uint8(1 + rng.Intn(64))
		bits := rng.Uint64() & mask(count)
		entries = append(entries, entry{bits, count})
		w.WriteBits(bits, count)
	}

	payload := w.Finish()
	r := NewReader(payload)
	for _, e := range entries {
		got, err := r.ReadBits(e.count)
		require.NoError(t, err)
		require.Equal(t, e.bits, got)
	}
}

func TestReader_TruncatedPayload(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b1, 1)
	payload := w.Finish()

	r := NewReader(payload)
	_, err := r.ReadBits(1)
	require.NoError(t, err)

	_, err = r.ReadBits(64)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestWriter_EmptyFinish(t *testing.T) {
	w := NewWriter()
	payload := w.Finish()
	require.Len(t, payload, 1)
	require.Equal(t, byte(0), payload[0])
}
