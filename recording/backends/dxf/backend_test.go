package dxf

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func TestBackend_Registered(t *testing.T) {
	b, err := recording.NewBackend("dxf")
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
}

func TestBackend_WritesLines(t *testing.T) {
	rec := recording.NewRecorder()
	g := koch.Generator{Radius: 10, Depth: 1}
	require.NoError(t, g.GenerateAll(context.Background(), []koch.Point{koch.Pt(0, 0), koch.Pt(25, 0)}, rec))
	r := rec.FinishRecording()

	b := NewBackend()
	require.NoError(t, r.Playback(b))
	assert.Equal(t, 24, b.Lines())

	path := filepath.Join(t.TempDir(), "flake.dxf")
	require.NoError(t, b.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "SNOWFLAKE-0")
	assert.Contains(t, out, "SNOWFLAKE-1")
	assert.Contains(t, out, "LINE")
}

func TestBackend_ExportViaRegistry(t *testing.T) {
	rec := recording.NewRecorder()
	koch.GenerateSnowflake(koch.Pt(1, 2), 4, 0, rec)

	path := filepath.Join(t.TempDir(), "seed.dxf")
	require.NoError(t, recording.Export(rec.FinishRecording(), "dxf", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "EOF"))
}

func TestBackend_SaveBeforeEnd(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(koch.Rect{}))
	assert.ErrorIs(t, b.SaveToFile(filepath.Join(t.TempDir(), "x.dxf")), errNotFinished)
}

func TestBackend_CustomLayer(t *testing.T) {
	b := NewBackend()
	b.Layer = "KOCH"
	require.NoError(t, b.Begin(koch.Rect{}))
	b.BeginShape(3)
	b.Line(koch.Pt(0, 0), koch.Pt(1, 1))
	require.NoError(t, b.End())

	path := filepath.Join(t.TempDir(), "custom.dxf")
	require.NoError(t, b.SaveToFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "KOCH-3")
}
