package staticgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOffsets is returned when offsets decrease or the sentinel does
	// not match the number of targets.
	ErrInvalidOffsets = errors.New("staticgraph: invalid offsets")

	// ErrUnsortedEdges is returned when a node's targets are not ascending.
	ErrUnsortedEdges = errors.New("staticgraph: edges not sorted")

	// ErrMisalignedFile is returned when a file size is not a multiple of its element width.
	ErrMisalignedFile = errors.New("staticgraph: file size is not a multiple of the element width")

	// ErrUnalignedAccess is returned when mapped memory is not aligned for the element type.
	ErrUnalignedAccess = errors.New("staticgraph: unaligned memory access")

	// ErrBigEndian is returned on big-endian hosts, which cannot map the little-endian layout.
	ErrBigEndian = errors.New("staticgraph: big-endian systems are not supported")

	// ErrNodeOutOfRange is returned when an edge source is outside the node domain.
	ErrNodeOutOfRange = errors.New("staticgraph: node out of range")

	// ErrInvalidNodeCount is returned for a negative node count.
	ErrInvalidNodeCount = errors.New("staticgraph: invalid node count")

	// ErrGraphClosed is returned when acquiring a graph whose last holder already closed it.
	ErrGraphClosed = errors.New("staticgraph: graph is closed")
)

// OpenError reports a failure to map one of a graph's backing files.
//
// The original underlying error can be accessed via errors.Unwrap, so
// errors.Is(err, os.ErrNotExist) works for missing files.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("staticgraph: open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
