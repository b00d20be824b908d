package raster

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func renderSnowflake(t *testing.T, b *Backend, depth int) {
	t.Helper()
	rec := recording.NewRecorder()
	g := koch.Generator{Radius: 10, Depth: depth}
	if err := g.GenerateAll(context.Background(), []koch.Point{koch.Pt(0, 0)}, rec); err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
}

func isDark(c color.Color) bool {
	r, _, _, _ := c.RGBA()
	return r < 0x8000
}

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	backend, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()
	backend.Width, backend.Height = 100, 50

	if err := backend.Begin(koch.Rect{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("image size = %v, want 100x50", img.Bounds())
	}
	if isDark(img.At(10, 10)) {
		t.Error("empty canvas should be background colored")
	}
}

func TestBackendDrawsEdges(t *testing.T) {
	b := NewBackend()
	b.Width, b.Height = 256, 256
	renderSnowflake(t, b, 0)
	img := b.Image()

	// The top edge of the seed triangle is horizontal at y = 2.5.
	x, y := b.project(koch.Pt(0, 2.5))
	if !isDark(img.At(int(x), int(y))) {
		t.Errorf("pixel on edge (%v, %v) is not drawn", x, y)
	}

	// The anchor lies well inside the triangle.
	cx, cy := b.project(koch.Pt(0, 0))
	if isDark(img.At(int(cx), int(cy))) {
		t.Error("pixel at anchor should be background")
	}
	if isDark(img.At(0, 0)) {
		t.Error("corner should be background")
	}
}

func TestBackendFitsCanvas(t *testing.T) {
	b := NewBackend()
	b.Width, b.Height = 200, 100
	renderSnowflake(t, b, 1)

	bounds := koch.Bounds(koch.Snowflake(koch.Pt(0, 0), 10, 1))
	for _, p := range []koch.Point{bounds.Min, bounds.Max} {
		x, y := b.project(p)
		if x < 0 || x > 200 || y < 0 || y > 100 {
			t.Errorf("corner %v projects outside the canvas: (%v, %v)", p, x, y)
		}
	}
}

func TestBackendPNG(t *testing.T) {
	b := NewBackend()
	b.Width, b.Height = 64, 48
	renderSnowflake(t, b, 2)

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 64 || decoded.Bounds().Dy() != 48 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("SaveToFile produced no output: %v", err)
	}
}

func TestBackendDegenerateSegments(t *testing.T) {
	b := NewBackend()
	b.Width, b.Height = 32, 32

	rec := recording.NewRecorder()
	koch.GenerateSnowflake(koch.Pt(0, 0), 0, 0, rec)
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	x, y := b.project(koch.Pt(0, 0))
	if !isDark(b.Image().At(int(x), int(y))) {
		t.Error("zero-radius snowflake should leave a visible dot")
	}
}
