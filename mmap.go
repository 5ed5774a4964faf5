package staticgraph

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hupe1980/staticgraph/internal/mmap"
)

// MMap is a CSR graph whose offsets and targets are mapped read-only from
// <prefix>.offsets and <prefix>.targets.
//
// An MMap is shared by reference counting: Open returns it with one holder,
// Acquire adds a holder, and the files are unmapped when the last holder
// calls Close. Slices returned by Edges must not be used after that.
type MMap[T Fixed] struct {
	prefix  string
	offsets []uint64
	targets []T

	offsetsMap *mmap.Mapping
	targetsMap *mmap.Mapping

	refs    atomic.Int64
	logger  *Logger
	metrics MetricsCollector
}

// Open maps the graph stored under prefix. It is the only operation on a
// mapped graph that performs I/O; failures are returned as *OpenError for
// file problems or as validation errors (see WithValidation).
func Open[T Fixed](ctx context.Context, prefix string, optFns ...Option) (*MMap[T], error) {
	o := applyOptions(optFns)
	logger := o.logger.WithPrefix(prefix)
	start := time.Now()

	g, err := openMMap[T](ctx, prefix, o, logger)

	var size int64
	nodes, edges := 0, 0
	if err == nil {
		size = int64(g.offsetsMap.Size()) + int64(g.targetsMap.Size())
		nodes, edges = g.Nodes(), len(g.targets)
	}
	took := time.Since(start)
	o.metricsCollector.RecordOpen(size, took, err)
	logger.LogOpen(ctx, nodes, edges, o.accessPattern, took, err)

	return g, err
}

func openMMap[T Fixed](ctx context.Context, prefix string, o options, logger *Logger) (*MMap[T], error) {
	if !isLittleEndian() {
		return nil, ErrBigEndian
	}

	offsetsPath, targetsPath := Paths(prefix)

	om, offsets, err := mapFile[uint64](offsetsPath, o.accessPattern)
	if err != nil {
		return nil, err
	}
	tm, targets, err := mapFile[T](targetsPath, o.accessPattern)
	if err != nil {
		_ = om.Close()
		return nil, err
	}

	start := time.Now()
	err = validate(ctx, offsets, targets, o.validation, o.workers)
	if o.validation > ValidateNone {
		took := time.Since(start)
		o.metricsCollector.RecordValidate(o.validation, took, err)
		logger.LogValidate(ctx, o.validation, took, err)
	}
	if err != nil {
		return nil, errors.Join(err, om.Close(), tm.Close())
	}

	g := &MMap[T]{
		prefix:     prefix,
		offsets:    offsets,
		targets:    targets,
		offsetsMap: om,
		targetsMap: tm,
		logger:     logger,
		metrics:    o.metricsCollector,
	}
	g.refs.Store(1)
	return g, nil
}

func mapFile[E Fixed](path string, pattern AccessPattern) (*mmap.Mapping, []E, error) {
	m, err := mmap.Open(path, pattern)
	if err != nil {
		return nil, nil, &OpenError{Path: path, Err: err}
	}

	data, err := castSlice[E](m.Bytes())
	if err != nil {
		_ = m.Close()
		return nil, nil, &OpenError{Path: path, Err: err}
	}

	return m, data, nil
}

// Nodes implements Graph.
func (g *MMap[T]) Nodes() int {
	return len(g.offsets)
}

// Edges implements Graph. The returned slice points into the mapping.
func (g *MMap[T]) Edges(node uint64) []T {
	return edgeRange(g.offsets, g.targets, node)
}

// Prefix returns the file prefix the graph was opened from.
func (g *MMap[T]) Prefix() string {
	return g.prefix
}

// Acquire registers an additional holder. Each successful Acquire must be
// paired with a Close.
func (g *MMap[T]) Acquire() (*MMap[T], error) {
	for {
		n := g.refs.Load()
		if n <= 0 {
			return nil, ErrGraphClosed
		}
		if g.refs.CompareAndSwap(n, n+1) {
			return g, nil
		}
	}
}

// Refs returns the current number of holders.
func (g *MMap[T]) Refs() int64 {
	return g.refs.Load()
}

// Close releases one holder. The last Close unmaps both files; further
// calls are no-ops.
func (g *MMap[T]) Close() error {
	for {
		n := g.refs.Load()
		if n <= 0 {
			return nil
		}
		if g.refs.CompareAndSwap(n, n-1) {
			if n > 1 {
				return nil
			}
			break
		}
	}

	err := errors.Join(g.offsetsMap.Close(), g.targetsMap.Close())
	g.metrics.RecordClose(err)
	g.logger.LogClose(err)
	return err
}
