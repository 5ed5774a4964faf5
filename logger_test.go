package staticgraph_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/staticgraph"
)

func TestLogger_OpenAndClose(t *testing.T) {
	ctx := context.Background()
	prefix := filepath.Join(t.TempDir(), "logged")
	require.NoError(t, staticgraph.WriteFiles(ctx, prefix, exampleGraph()))

	var buf bytes.Buffer
	logger := staticgraph.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, err := staticgraph.Open[uint32](ctx, prefix,
		staticgraph.WithLogger(logger),
		staticgraph.WithValidation(staticgraph.ValidateFull),
	)
	require.NoError(t, err)
	require.NoError(t, g.Close())

	var msgs []string
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		assert.Equal(t, prefix, rec["prefix"])
		msgs = append(msgs, rec["msg"].(string))

		if rec["msg"] == "graph opened" {
			assert.EqualValues(t, 4, rec["nodes"])
			assert.EqualValues(t, 5, rec["edges"])
		}
	}
	assert.Equal(t, []string{"graph validated", "graph opened", "graph closed"}, msgs)
}

func TestLogger_OpenFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := staticgraph.NewLogger(slog.NewTextHandler(&buf, nil))

	_, err := staticgraph.Open[uint32](context.Background(), filepath.Join(t.TempDir(), "missing"), staticgraph.WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "graph open failed")
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, staticgraph.NewLogger(nil))
	assert.NotNil(t, staticgraph.NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, staticgraph.NewTextLogger(slog.LevelWarn))

	noop := staticgraph.NoopLogger()
	assert.False(t, noop.Enabled(context.Background(), slog.LevelError))
}
