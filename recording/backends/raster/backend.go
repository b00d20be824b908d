// Package raster provides a PNG backend for the recording system.
//
// The recording bounds are fitted into a fixed pixel canvas with a small
// margin, preserving the aspect ratio, and each segment is stroked as a
// thin quad using golang.org/x/image/vector.
//
// # Example
//
//	import _ "github.com/gogpu/koch/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = r.Playback(backend)
//	_ = backend.(*raster.Backend).SaveToFile("snowflake.png")
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Defaults used by NewBackend.
const (
	DefaultSize      = 1024
	DefaultLineWidth = 1.5
)

// Backend renders recordings to an RGBA image.
type Backend struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	Background color.Color
	Foreground color.Color

	img *image.RGBA
	z   *vector.Rasterizer

	// model to pixel mapping
	scale      float64
	minX, minY float64
	offX, offY float64
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a raster backend with a DefaultSize square canvas,
// black lines on white.
func NewBackend() *Backend {
	return &Backend{
		Width:      DefaultSize,
		Height:     DefaultSize,
		LineWidth:  DefaultLineWidth,
		Background: color.White,
		Foreground: color.Black,
	}
}

// Begin allocates the canvas and computes the model to pixel transform.
func (b *Backend) Begin(bounds koch.Rect) error {
	w, h := max(b.Width, 1), max(b.Height, 1)
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.Background), image.Point{}, xdraw.Src)
	b.z = vector.NewRasterizer(w, h)

	margin := 0.05 * math.Min(float64(w), float64(h))
	availW := float64(w) - 2*margin
	availH := float64(h) - 2*margin

	bw, bh := bounds.Width(), bounds.Height()
	switch {
	case bw > 0 && bh > 0:
		b.scale = math.Min(availW/bw, availH/bh)
	case bw > 0:
		b.scale = availW / bw
	case bh > 0:
		b.scale = availH / bh
	default:
		b.scale = 1
	}

	b.minX, b.minY = bounds.Min.X, bounds.Min.Y
	b.offX = (float64(w) - bw*b.scale) / 2
	b.offY = (float64(h) - bh*b.scale) / 2
	return nil
}

// BeginShape is a no-op; all snowflakes share one layer.
func (b *Backend) BeginShape(int) {}

// Line adds the stroked segment to the rasterizer.
func (b *Backend) Line(p, q koch.Point) {
	x0, y0 := b.project(p)
	x1, y1 := b.project(q)

	half := b.LineWidth / 2
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		// Degenerate segment: draw a dot so it stays visible.
		half = math.Max(half, 1)
		dx, dy, length = 1, 0, 1
		x0 -= half
		x1 += half
	}
	nx, ny := -dy/length*half, dx/length*half

	b.z.MoveTo(float32(x0+nx), float32(y0+ny))
	b.z.LineTo(float32(x1+nx), float32(y1+ny))
	b.z.LineTo(float32(x1-nx), float32(y1-ny))
	b.z.LineTo(float32(x0-nx), float32(y0-ny))
	b.z.ClosePath()
}

// End composites the accumulated strokes onto the canvas.
func (b *Backend) End() error {
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(b.Foreground), image.Point{})
	return nil
}

// Image returns the rendered image. Valid after End.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = b.WriteTo(f)
	return err
}

// project maps a model point to pixel space. Pixel Y grows downward.
func (b *Backend) project(p koch.Point) (x, y float64) {
	x = b.offX + (p.X-b.minX)*b.scale
	y = float64(b.img.Bounds().Dy()) - (b.offY + (p.Y-b.minY)*b.scale)
	return x, y
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
