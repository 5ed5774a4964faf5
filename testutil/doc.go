// Package testutil provides testing utilities for staticgraph.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random graphs and sorted sets and a
// naive reference intersection to check the extenders against.
//
// # Random Graphs
//
//	rng := testutil.NewRNG(seed)
//	edges := rng.PowerLawEdges(1000, 64, 1<<16, 1.2) // skewed degrees
//	g, _ := staticgraph.FromEdges(1000, edges)
//
// # Ground Truth
//
//	want := testutil.NaiveIntersect(list, g.Edges(n))
package testutil
