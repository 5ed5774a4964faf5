package staticgraph_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/staticgraph"
	"github.com/hupe1980/staticgraph/fs"
)

func TestWriteFiles_Layout(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "layout")
	metrics := &staticgraph.BasicMetricsCollector{}

	err := staticgraph.WriteFiles(context.Background(), prefix, exampleGraph(), staticgraph.WithMetricsCollector(metrics))
	require.NoError(t, err)

	offsetsPath, targetsPath := staticgraph.Paths(prefix)
	offsets, err := os.ReadFile(offsetsPath)
	require.NoError(t, err)
	targets, err := os.ReadFile(targetsPath)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		2, 0, 0, 0, 0, 0, 0, 0,
		2, 0, 0, 0, 0, 0, 0, 0,
		5, 0, 0, 0, 0, 0, 0, 0,
	}, offsets)
	assert.Equal(t, uint32Bytes(1, 3, 4, 6, 9), targets)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.WriteCount)
	assert.Equal(t, int64(len(offsets)+len(targets)), stats.WriteBytes)

	_, err = os.Stat(offsetsPath + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file removed by rename")
}

func TestWriteFiles_RejectsInvalidOffsets(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "invalid")
	g := staticgraph.NewVector([]uint64{0, 4}, []uint32{1, 2})

	err := staticgraph.WriteFiles(context.Background(), prefix, g)
	assert.ErrorIs(t, err, staticgraph.ErrInvalidOffsets)

	offsetsPath, _ := staticgraph.Paths(prefix)
	_, statErr := os.Stat(offsetsPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFiles_Faults(t *testing.T) {
	injected := errors.New("device unplugged")

	// Same offsets as exampleGraph, so a mix of old and new files would
	// pass offsets validation.
	replacement := staticgraph.NewVector([]uint64{0, 2, 2, 5}, []uint32{10, 20, 30, 40, 50})

	tests := []struct {
		name    string
		pattern string
		fault   fs.Fault
		// oldRemoved reports whether the fault hits after an existing
		// offsets file has been removed.
		oldRemoved bool
	}{
		{"open targets", ".targets.tmp", fs.Fault{FailOnOpen: true, Err: injected}, false},
		{"short write", ".targets.tmp", fs.Fault{FailAfterBytes: 4, Err: injected}, false},
		{"sync offsets", ".offsets.tmp", fs.Fault{FailAfterBytes: -1, FailOnSync: true, Err: injected}, false},
		{"close offsets", ".offsets.tmp", fs.Fault{FailAfterBytes: -1, FailOnClose: true, Err: injected}, false},
		{"rename targets", ".targets", fs.Fault{FailAfterBytes: -1, FailOnRename: true, Err: injected}, true},
		{"rename offsets", ".offsets", fs.Fault{FailAfterBytes: -1, FailOnRename: true, Err: injected}, true},
	}

	for _, tt := range tests {
		for _, overwrite := range []bool{false, true} {
			name := tt.name
			if overwrite {
				name += " overwrite"
			}

			t.Run(name, func(t *testing.T) {
				ctx := context.Background()
				dir := t.TempDir()
				prefix := filepath.Join(dir, "g")

				if overwrite {
					require.NoError(t, staticgraph.WriteFiles(ctx, prefix, exampleGraph()))
				}

				ffs := fs.NewFaultyFS(nil)
				ffs.AddRule(tt.pattern, tt.fault)
				metrics := &staticgraph.BasicMetricsCollector{}

				err := staticgraph.WriteFiles(ctx, prefix, replacement,
					staticgraph.WithFileSystem(ffs),
					staticgraph.WithMetricsCollector(metrics),
				)
				require.ErrorIs(t, err, injected)
				assert.Equal(t, int64(1), metrics.GetStats().WriteErrors)

				entries, err := os.ReadDir(dir)
				require.NoError(t, err)
				for _, e := range entries {
					assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()), "leftover %s", e.Name())
				}

				g, err := staticgraph.Open[uint32](ctx, prefix)
				if !overwrite || tt.oldRemoved {
					// No offsets file means no openable graph.
					require.ErrorIs(t, err, os.ErrNotExist)
					return
				}

				// The previous graph is untouched.
				require.NoError(t, err)
				defer g.Close()
				assert.Equal(t, []uint32{1, 3}, g.Edges(0))
				assert.Equal(t, []uint32{4, 6, 9}, g.Edges(2))
			})
		}
	}
}

func TestWriteFiles_Overwrite(t *testing.T) {
	ctx := context.Background()
	prefix := filepath.Join(t.TempDir(), "g")

	require.NoError(t, staticgraph.WriteFiles(ctx, prefix, exampleGraph()))
	require.NoError(t, staticgraph.WriteFiles(ctx, prefix, staticgraph.NewVector([]uint64{0, 1}, []uint32{7})))

	g, err := staticgraph.Open[uint32](ctx, prefix)
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, 2, g.Nodes())
	assert.Equal(t, []uint32{7}, g.Edges(0))
}
