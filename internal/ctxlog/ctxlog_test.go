package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	l := ctxlog.Discard()
	ctx := ctxlog.WithLogger(context.Background(), l)
	assert.Same(t, l, ctxlog.FromContext(ctx))

	// A typed nil does not shadow the default.
	ctx = ctxlog.WithLogger(context.Background(), nil)
	assert.Same(t, slog.Default(), ctxlog.FromContext(ctx))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := ctxlog.New("warn", "json", &buf)

	l.Info("dropped")
	l.Warn("kept", slog.Int("segment", 2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(2), rec["segment"])
}

func TestNew_TextDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := ctxlog.New("verbose", "text", &buf)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ctxlog.ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, ok = ctxlog.ParseLevel("loud")
	assert.False(t, ok)
}
