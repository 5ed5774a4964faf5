// Package staticgraph provides a read-only, compressed-sparse-row (CSR)
// adjacency graph for worst-case-optimal join evaluation.
//
// A graph is an offsets array of length N plus a flat targets array. For a
// node i with i+1 < N the edges are targets[offsets[i]:offsets[i+1]], sorted
// ascending. The last offsets entry is a sentinel holding the total edge
// count, so Nodes reports N and the last "node" never has edges. Edges is a
// total function: any node id whose successor is outside the offsets array
// yields an empty slice.
//
// # Backends
//
//   - [Vector]: offsets and targets held in memory
//   - [MMap]: offsets and targets mapped zero-copy from <prefix>.offsets and
//     <prefix>.targets
//
// # Quick Start
//
//	g, _ := staticgraph.FromEdges(3, []staticgraph.Edge[uint32]{
//	    {Source: 0, Target: 1},
//	    {Source: 0, Target: 2},
//	    {Source: 1, Target: 2},
//	})
//	_ = staticgraph.WriteFiles(ctx, "data/web", g)
//
//	mg, _ := staticgraph.Open[uint32](ctx, "data/web")
//	defer mg.Close()
//	mg.Edges(0) // [1 2]
//
// # File Layout
//
// <prefix>.offsets holds N little-endian uint64 values; <prefix>.targets holds
// the fixed-width little-endian targets. There is no header: compatibility is
// purely positional.
//
// # Concurrency
//
// Graphs never change after construction. Any number of goroutines may call
// Nodes and Edges concurrently without synchronization. Slices returned by
// Edges are shared views and must not be modified.
//
// Package extend adapts a Graph into a prefix extender (count, propose,
// intersect) for a join driver.
package staticgraph
