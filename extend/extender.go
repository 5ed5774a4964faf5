package extend

import (
	"cmp"

	"github.com/hupe1980/staticgraph"
)

// PrefixExtender is the per-relation capability set consumed by a join driver.
type PrefixExtender[P, E any] interface {
	// Count returns how many extensions the relation offers for prefix.
	Count(prefix P) uint64
	// Propose replaces *list with the relation's extensions for prefix.
	Propose(prefix P, list *[]E)
	// Intersect filters *list in place, keeping values the relation also
	// offers for prefix. Order is preserved.
	Intersect(prefix P, list *[]E)
}

// Route maps a prefix to a node id. It must be pure and deterministic.
type Route[P any] func(P) uint64

// DefaultGallopRatio selects galloping intersection when the candidate list
// is shorter than edges/DefaultGallopRatio.
const DefaultGallopRatio = 4

// Option configures a GraphExtender.
type Option func(*options)

type options struct {
	gallopRatio int
}

// WithGallopRatio overrides DefaultGallopRatio. Values below 1 keep the default.
func WithGallopRatio(ratio int) Option {
	return func(o *options) {
		if ratio >= 1 {
			o.gallopRatio = ratio
		}
	}
}

// GraphExtender exposes a graph as a PrefixExtender through a routing function.
type GraphExtender[P any, T cmp.Ordered] struct {
	graph       staticgraph.Graph[T]
	route       Route[P]
	gallopRatio int
}

var _ PrefixExtender[uint64, uint32] = (*GraphExtender[uint64, uint32])(nil)

// New binds graph and route into an extender. Both are shared, never copied.
func New[P any, T cmp.Ordered](graph staticgraph.Graph[T], route Route[P], optFns ...Option) *GraphExtender[P, T] {
	o := options{gallopRatio: DefaultGallopRatio}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return &GraphExtender[P, T]{
		graph:       graph,
		route:       route,
		gallopRatio: o.gallopRatio,
	}
}

// Graph returns the shared graph.
func (e *GraphExtender[P, T]) Graph() staticgraph.Graph[T] {
	return e.graph
}

// Route returns the shared routing function, e.g. to build a sibling
// extender over another graph with the same binding.
func (e *GraphExtender[P, T]) Route() Route[P] {
	return e.route
}

// Count implements PrefixExtender.
func (e *GraphExtender[P, T]) Count(prefix P) uint64 {
	return uint64(len(e.edges(prefix)))
}

// Propose implements PrefixExtender. The list's capacity is reused.
func (e *GraphExtender[P, T]) Propose(prefix P, list *[]T) {
	*list = append((*list)[:0], e.edges(prefix)...)
}

// Intersect implements PrefixExtender.
func (e *GraphExtender[P, T]) Intersect(prefix P, list *[]T) {
	*list = intersect(*list, e.edges(prefix), e.gallopRatio)
}

func (e *GraphExtender[P, T]) edges(prefix P) []T {
	return e.graph.Edges(e.route(prefix))
}
