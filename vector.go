package staticgraph

import (
	"cmp"
	"context"
	"runtime"
)

// Vector is an in-memory CSR graph.
type Vector[T cmp.Ordered] struct {
	offsets []uint64
	targets []T
}

// NewVector adopts offsets and targets as a graph. The slices must not be
// modified afterwards. Use Validate to check untrusted input; Edges may
// panic on offsets that point outside targets.
func NewVector[T cmp.Ordered](offsets []uint64, targets []T) *Vector[T] {
	return &Vector[T]{
		offsets: offsets,
		targets: targets,
	}
}

// Nodes implements Graph.
func (v *Vector[T]) Nodes() int {
	return len(v.offsets)
}

// Edges implements Graph.
func (v *Vector[T]) Edges(node uint64) []T {
	return edgeRange(v.offsets, v.targets, node)
}

// Offsets returns the offsets array (read-only).
func (v *Vector[T]) Offsets() []uint64 {
	return v.offsets
}

// Targets returns the flat targets array (read-only).
func (v *Vector[T]) Targets() []T {
	return v.targets
}

// Validate checks the CSR invariants up to level.
func (v *Vector[T]) Validate(ctx context.Context, level ValidationLevel) error {
	return validate(ctx, v.offsets, v.targets, level, runtime.GOMAXPROCS(0))
}
