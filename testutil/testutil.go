package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/staticgraph"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// SortedSet returns up to n distinct ascending values drawn from [0, universe).
func (r *RNG) SortedSet(n int, universe uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedSetLocked(n, universe)
}

func (r *RNG) sortedSetLocked(n int, universe uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(r.rand.Int63n(int64(universe)))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// UniformEdges generates up to maxDegree targets in [0, universe) for each of
// nodes sources.
func (r *RNG) UniformEdges(nodes, maxDegree int, universe uint32) []staticgraph.Edge[uint32] {
	r.mu.Lock()
	defer r.mu.Unlock()

	var edges []staticgraph.Edge[uint32]
	for src := range nodes {
		for _, t := range r.sortedSetLocked(r.rand.Intn(maxDegree+1), universe) {
			edges = append(edges, staticgraph.Edge[uint32]{Source: uint64(src), Target: t})
		}
	}
	return edges
}

// PowerLawEdges generates edges whose out-degrees follow a Zipf law with
// skew s: a few hubs with up to maxDegree targets and many small nodes.
// This is the shape where galloping intersection pays off.
func (r *RNG) PowerLawEdges(nodes, maxDegree int, universe uint32, s float64) []staticgraph.Edge[uint32] {
	r.mu.Lock()
	defer r.mu.Unlock()

	var edges []staticgraph.Edge[uint32]
	for src := range nodes {
		degree := r.zipfLocked(maxDegree, s) + 1
		for _, t := range r.sortedSetLocked(degree, universe) {
			edges = append(edges, staticgraph.Edge[uint32]{Source: uint64(src), Target: t})
		}
	}
	return edges
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// NaiveIntersect returns the elements of list that occur anywhere in edges,
// in list order. It assumes nothing about ordering.
func NaiveIntersect[T comparable](list, edges []T) []T {
	set := make(map[T]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}

	out := []T{}
	for _, v := range list {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
