package extend_test

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/staticgraph"
	"github.com/hupe1980/staticgraph/extend"
	"github.com/hupe1980/staticgraph/testutil"
)

func exampleGraph() *staticgraph.Vector[uint32] {
	return staticgraph.NewVector([]uint64{0, 2, 2, 5}, []uint32{1, 3, 4, 6, 9})
}

func TestGraphExtender_Example(t *testing.T) {
	ext := extend.New(exampleGraph(), func(string) uint64 { return 2 })

	assert.Equal(t, uint64(3), ext.Count("p"))

	var list []uint32
	ext.Propose("p", &list)
	assert.Equal(t, []uint32{4, 6, 9}, list)

	list = []uint32{3, 4, 6}
	ext.Intersect("p", &list)
	assert.Equal(t, []uint32{4, 6}, list)
}

func TestGraphExtender_Accessors(t *testing.T) {
	g := exampleGraph()
	route := extend.Route[uint64](func(p uint64) uint64 { return p / 2 })
	ext := extend.New(g, route)

	assert.Same(t, g, ext.Graph())
	assert.Equal(t, uint64(2), ext.Route()(4))

	// A sibling extender reuses the routing function.
	sibling := extend.New[uint64, uint32](staticgraph.NewVector([]uint64{0, 1, 1, 2}, []uint32{7, 8}), ext.Route())
	assert.Equal(t, uint64(1), sibling.Count(4))
}

func TestGraphExtender_OutOfDomainPrefix(t *testing.T) {
	ext := extend.New(exampleGraph(), func(p uint64) uint64 { return p })

	for _, p := range []uint64{1, 3, 4, 1 << 40} {
		assert.Zero(t, ext.Count(p))

		list := []uint32{1, 2, 3}
		ext.Propose(p, &list)
		assert.Empty(t, list)

		list = []uint32{1, 4, 9}
		ext.Intersect(p, &list)
		assert.Empty(t, list)
	}
}

func TestGraphExtender_ProposeReplaces(t *testing.T) {
	ext := extend.New(exampleGraph(), func(p uint64) uint64 { return p })

	list := make([]uint32, 0, 16)
	list = append(list, 100, 200, 300, 400)
	ext.Propose(0, &list)
	assert.Equal(t, []uint32{1, 3}, list)
	assert.Equal(t, 16, cap(list), "capacity reused")

	// The proposal is a copy, not a view into the graph.
	list[0] = 42
	assert.Equal(t, []uint32{1, 3}, ext.Graph().Edges(0))
}

func TestGraphExtender_GallopRatio(t *testing.T) {
	g := exampleGraph()
	list := []uint32{4}

	for _, ratio := range []int{-3, 0, 1, 2, 4, 100} {
		ext := extend.New(g, func(uint64) uint64 { return 2 }, extend.WithGallopRatio(ratio))
		got := slices.Clone(list)
		ext.Intersect(0, &got)
		assert.Equal(t, []uint32{4}, got, "ratio %d", ratio)
	}
}

// extenderProperties checks count, propose and intersect against the graph
// for every node, with candidate lists of varying size so both intersect
// strategies run.
func extenderProperties(t *testing.T, g staticgraph.Graph[uint32], rng *testutil.RNG, ratio int) {
	t.Helper()
	ext := extend.New(g, func(p uint64) uint64 { return p }, extend.WithGallopRatio(ratio))

	for n := 0; n <= g.Nodes(); n++ {
		p := uint64(n)
		edges := g.Edges(p)

		assert.Equal(t, uint64(len(edges)), ext.Count(p))

		var proposed []uint32
		ext.Propose(p, &proposed)
		assert.Equal(t, len(edges), len(proposed))
		if len(edges) > 0 {
			assert.Equal(t, edges, proposed)
		}

		for _, size := range []int{1, 4, 32, 256} {
			list := rng.SortedSet(size, 2000)
			want := testutil.NaiveIntersect(list, edges)

			got := slices.Clone(list)
			ext.Intersect(p, &got)
			assert.Equal(t, want, append([]uint32{}, got...), "node %d size %d", n, size)
		}
	}
}

func TestGraphExtender_Properties(t *testing.T) {
	rng := testutil.NewRNG(2024)
	vec, err := staticgraph.FromEdges(120, rng.PowerLawEdges(120, 400, 2000, 1.05))
	require.NoError(t, err)

	t.Run("vector", func(t *testing.T) {
		for _, ratio := range []int{1, extend.DefaultGallopRatio, 64} {
			extenderProperties(t, vec, rng, ratio)
		}
	})

	t.Run("mmap", func(t *testing.T) {
		ctx := context.Background()
		prefix := filepath.Join(t.TempDir(), "prop")
		require.NoError(t, staticgraph.WriteFiles(ctx, prefix, vec))

		g, err := staticgraph.Open[uint32](ctx, prefix)
		require.NoError(t, err)
		defer g.Close()

		extenderProperties(t, g, rng, extend.DefaultGallopRatio)
	})
}

func TestGraphExtender_Concurrent(t *testing.T) {
	rng := testutil.NewRNG(31)
	vec, err := staticgraph.FromEdges(64, rng.UniformEdges(64, 200, 1000))
	require.NoError(t, err)

	ext := extend.New(vec, func(p uint64) uint64 { return p % 64 })
	lists := make([][]uint32, 16)
	for i := range lists {
		lists[i] = rng.SortedSet(50, 1000)
	}

	var wg sync.WaitGroup
	for i, list := range lists {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range uint64(256) {
				got := slices.Clone(list)
				ext.Intersect(p, &got)
				assert.Equal(t, testutil.NaiveIntersect(list, vec.Edges(p%64)), append([]uint32{}, got...), "worker %d", i)

				var proposed []uint32
				ext.Propose(p, &proposed)
				assert.Equal(t, int(ext.Count(p)), len(proposed))
			}
		}()
	}
	wg.Wait()
}
