package wire

import (
	"errors"
	"fmt"

	"github.com/colbuf/colbuf/format"
)

// ErrTruncated is returned when a branch cannot be fully read from the
// supplied bytes.
var ErrTruncated = errors.New("wire: truncated branch")

// Branch is a decoded array branch: its type tag and its payload bytes.
type Branch struct {
	Type    format.ArrayTypeID
	Payload []byte
}

// ReadBranch reads one [ArrayTypeID][payload] branch from the front of
// data. payloadLen is supplied by the caller from the length sidecar that
// accompanied the original WriteWithLen call; it is not self-describing
// in the byte stream. It returns the decoded branch and the number of bytes
// consumed from data.
func ReadBranch(data []byte, payloadLen int) (Branch, int, error) {
	if len(data) < 1+payloadLen {
		return Branch{}, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, 1+payloadLen, len(data))
	}

	branch := Branch{
		Type:    format.ArrayTypeID(data[0]),
		Payload: data[1 : 1+payloadLen],
	}
	return branch, 1 + payloadLen, nil
}
