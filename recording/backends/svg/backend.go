// Package svg provides an SVG backend for the recording system.
//
// Every snowflake becomes a <g> group of <line> elements. Model space is
// Y-up while SVG is Y-down, so Y is negated on output; the viewBox is the
// recording bounds plus a margin.
//
//	import _ "github.com/gogpu/koch/recording/backends/svg"
//
//	err := recording.Export(r, "svg", "snowflake.svg")
package svg

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// DefaultStroke is the stroke color used when Backend.Stroke is empty.
const DefaultStroke = "black"

// Backend renders recordings to an SVG document.
type Backend struct {
	// Stroke is the line color. Empty means DefaultStroke.
	Stroke string

	// StrokeWidth is the line width in model units. Zero picks 0.2% of
	// the larger side of the drawing.
	StrokeWidth float64

	buf   bytes.Buffer
	group bool
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin writes the document header.
func (b *Backend) Begin(bounds koch.Rect) error {
	b.buf.Reset()
	b.group = false

	side := math.Max(bounds.Width(), bounds.Height())
	margin := side * 0.05
	if side == 0 {
		margin = 1
	}
	view := bounds.Pad(margin)

	width := b.StrokeWidth
	if width == 0 {
		width = math.Max(side*0.002, 0.01)
	}
	stroke := b.Stroke
	if stroke == "" {
		stroke = DefaultStroke
	}

	fmt.Fprintf(&b.buf, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="%s %s %s %s">
<g fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round">
`, num(view.Min.X), num(-view.Max.Y), num(view.Width()), num(view.Height()), html.EscapeString(stroke), num(width))
	return nil
}

// BeginShape opens a group for the snowflake.
func (b *Backend) BeginShape(index int) {
	b.closeGroup()
	fmt.Fprintf(&b.buf, "<g id=\"snowflake-%d\">\n", index)
	b.group = true
}

// Line writes one <line> element.
func (b *Backend) Line(p, q koch.Point) {
	fmt.Fprintf(&b.buf, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n",
		num(p.X), num(-p.Y), num(q.X), num(-q.Y))
}

// End closes the document.
func (b *Backend) End() error {
	b.closeGroup()
	b.buf.WriteString("</g>\n</svg>\n")
	return nil
}

// Bytes returns the SVG document. Valid after End.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the SVG document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the SVG document to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

func (b *Backend) closeGroup() {
	if b.group {
		b.buf.WriteString("</g>\n")
		b.group = false
	}
}

func num(v float64) string {
	if v == 0 {
		// Avoid "-0" after the Y flip.
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
