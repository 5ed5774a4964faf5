package staticgraph

import (
	"cmp"
	"fmt"
	"slices"
)

// FromEdges builds a Vector with nodes usable nodes from an unordered edge
// list. The offsets array has nodes+1 entries, the last being the edge
// count. Each node's targets are sorted ascending and duplicate edges are
// dropped.
func FromEdges[T cmp.Ordered](nodes int, edges []Edge[T]) (*Vector[T], error) {
	if nodes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNodeCount, nodes)
	}

	// bounds[i] is the start of node i's bucket once prefix-summed.
	bounds := make([]uint64, nodes+1)
	for _, e := range edges {
		if e.Source >= uint64(nodes) {
			return nil, fmt.Errorf("%w: source %d with %d nodes", ErrNodeOutOfRange, e.Source, nodes)
		}
		bounds[e.Source+1]++
	}
	for i := 1; i <= nodes; i++ {
		bounds[i] += bounds[i-1]
	}

	targets := make([]T, len(edges))
	cursor := slices.Clone(bounds[:nodes])
	for _, e := range edges {
		targets[cursor[e.Source]] = e.Target
		cursor[e.Source]++
	}

	offsets := make([]uint64, nodes+1)
	w := 0
	for i := 0; i < nodes; i++ {
		run := targets[bounds[i]:bounds[i+1]]
		slices.Sort(run)
		run = slices.Compact(run)
		offsets[i] = uint64(w)
		w += copy(targets[w:], run)
	}
	offsets[nodes] = uint64(w)

	return NewVector(offsets, targets[:w:w]), nil
}
