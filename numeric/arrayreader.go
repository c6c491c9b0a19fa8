package numeric

import (
	"fmt"

	"github.com/colbuf/colbuf/format"
	"github.com/colbuf/colbuf/wire"
)

// ArrayReader decodes a single column branch from a byte stream written by
// an ArrayWriter[T]. It mirrors ArrayWriter's width T but carries no
// buffered state of its own: every Read call is independent.
type ArrayReader[T Unsigned] struct{}

// NewArrayReader returns an ArrayReader for width T.
func NewArrayReader[T Unsigned]() *ArrayReader[T] {
	return &ArrayReader[T]{}
}

// Read consumes one [ArrayTypeID][payload] branch from the front of data,
// using payloadLen from the caller's length sidecar (the counterpart to the
// WriteWithLen call that produced it), and decodes it into count values.
// It returns the decoded values and the number of bytes consumed from data.
//
// count may exceed the number of values the branch actually encoded; the
// excess is filled with zero values rather than treated as an error, so a
// reader asking for a column's full declared length never needs to special
// case a shorter encoded run.
func (ArrayReader[T]) Read(data []byte, payloadLen int, count int) ([]T, int, error) {
	branch, consumed, err := wire.ReadBranch(data, payloadLen)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: array reader: %w", err)
	}

	payload := branch.Payload
	if branch.Type != format.Void {
		payload, err = wire.DecompressFrame(branch.Payload)
		if err != nil {
			return nil, 0, fmt.Errorf("numeric: array reader: %w", err)
		}
	}

	values, err := DecodeArray[T](branch.Type, payload, count)
	if err != nil {
		return nil, 0, fmt.Errorf("numeric: array reader: %w", err)
	}
	return values, consumed, nil
}
