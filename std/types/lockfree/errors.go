package lockfree

import (
	"errors"
	"fmt"
)

var ErrNilSequence = errors.New("source sequence is nil")
var ErrOffsetRange = errors.New("offset out of range")
var ErrShortBuffer = errors.New("destination too small")

// ErrCopy is returned by CopyTo when the destination cannot take the snapshot.
type ErrCopy struct {
	Offset int
	Need   int
	Have   int
	Err    error
}

func (e *ErrCopy) Error() string {
	return fmt.Sprintf("copy error [offset=%d need=%d have=%d]: %v", e.Offset, e.Need, e.Have, e.Err)
}

func (e *ErrCopy) Unwrap() error {
	return e.Err
}

// ErrInvariant is the panic value raised when the linked structure is found
// in a state no interleaving can produce. It always means a bug in this package.
type ErrInvariant struct {
	Op     string
	Detail string
}

func (e *ErrInvariant) Error() string {
	return fmt.Sprintf("lockfree: invariant violated in %s: %s", e.Op, e.Detail)
}
