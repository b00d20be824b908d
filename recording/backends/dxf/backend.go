// Package dxf provides a DXF backend for the recording system, so that
// generated snowflakes can be opened in CAD applications.
//
// Each segment becomes a LINE entity. Each snowflake is placed on its own
// layer named "<Layer>-<index>".
//
//	import _ "github.com/gogpu/koch/recording/backends/dxf"
//
//	err := recording.Export(r, "dxf", "snowflake.dxf")
package dxf

import (
	"errors"
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func init() {
	recording.Register("dxf", func() recording.Backend {
		return NewBackend()
	})
}

// DefaultLayer is the layer name prefix used when Backend.Layer is empty.
const DefaultLayer = "SNOWFLAKE"

var errNotFinished = errors.New("dxf: drawing not finished")

// Backend renders recordings to a DXF drawing.
type Backend struct {
	// Layer is the layer name prefix.
	Layer string

	// Color is the layer color.
	Color color.ColorNumber

	d     *drawing.Drawing
	lines int
	err   error
	done  bool
}

var _ recording.FileBackend = (*Backend)(nil)

// NewBackend creates a DXF backend.
func NewBackend() *Backend {
	return &Backend{Layer: DefaultLayer, Color: color.Red}
}

// Begin creates an empty drawing.
func (b *Backend) Begin(koch.Rect) error {
	b.d = dxf.NewDrawing()
	b.lines = 0
	b.err = nil
	b.done = false
	return nil
}

// BeginShape creates the layer for the snowflake and makes it current.
func (b *Backend) BeginShape(index int) {
	if b.err != nil {
		return
	}
	name := fmt.Sprintf("%s-%d", b.layerPrefix(), index)
	if _, err := b.d.AddLayer(name, b.Color, dxf.DefaultLineType, true); err != nil {
		b.err = fmt.Errorf("dxf: add layer %s: %w", name, err)
	}
}

// Line adds a LINE entity on the current layer.
func (b *Backend) Line(p, q koch.Point) {
	if b.err != nil {
		return
	}
	if _, err := b.d.Line(p.X, p.Y, p.Z, q.X, q.Y, q.Z); err != nil {
		b.err = fmt.Errorf("dxf: line: %w", err)
		return
	}
	b.lines++
}

// End reports the first error met while building the drawing.
func (b *Backend) End() error {
	b.done = true
	if b.err != nil {
		return b.err
	}
	koch.Logger().Debug("dxf: drawing built", "lines", b.lines)
	return nil
}

// Lines returns the number of LINE entities added.
func (b *Backend) Lines() int {
	return b.lines
}

// SaveToFile writes the drawing to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done || b.d == nil {
		return errNotFinished
	}
	if b.err != nil {
		return b.err
	}
	return b.d.SaveAs(path)
}

func (b *Backend) layerPrefix() string {
	if b.Layer == "" {
		return DefaultLayer
	}
	return b.Layer
}
