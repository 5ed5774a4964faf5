package staticgraph

import (
	"cmp"
)

// Graph is a read-only adjacency list.
type Graph[T cmp.Ordered] interface {
	// Nodes returns the length of the offsets array. The final entry is the
	// edge-count sentinel, not a usable node.
	Nodes() int

	// Edges returns the ascending targets of node. It is defined for every
	// node id and returns an empty slice when node+1 >= Nodes().
	// The returned slice is a shared view and must not be modified.
	Edges(node uint64) []T
}

// Fixed is the set of fixed-width target types that can be stored in a
// mapped graph file. Floating point targets must not contain NaN.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Edge is a single (source, target) pair used by FromEdges.
type Edge[T cmp.Ordered] struct {
	Source uint64
	Target T
}

// edgeRange slices targets for node. Slicing with uint64 indices keeps the
// check overflow-free for node == math.MaxUint64.
func edgeRange[T any](offsets []uint64, targets []T, node uint64) []T {
	n := uint64(len(offsets))
	if n == 0 || node >= n-1 {
		return nil
	}
	return targets[offsets[node]:offsets[node+1]]
}

// Paths returns the offsets and targets file names for prefix.
func Paths(prefix string) (offsets, targets string) {
	return prefix + ".offsets", prefix + ".targets"
}
