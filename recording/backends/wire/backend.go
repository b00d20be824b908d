// Package wire provides a compact binary backend for the recording system.
//
// The output is a protobuf-encoded message matching:
//
//	message Point   { double x = 1; double y = 2; double z = 3; }
//	message Segment { Point a = 1; Point b = 2; uint32 shape = 3; }
//	message Drawing { repeated Segment segments = 1; }
//
// so any protobuf runtime can read it with the schema above. Decode parses
// it back without generated code.
package wire

import (
	"io"
	"math"
	"os"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func init() {
	recording.Register("wire", func() recording.Backend {
		return NewBackend()
	})
}

// Field numbers.
const (
	fieldDrawingSegments protowire.Number = 1

	fieldSegmentA     protowire.Number = 1
	fieldSegmentB     protowire.Number = 2
	fieldSegmentShape protowire.Number = 3

	fieldPointX protowire.Number = 1
	fieldPointY protowire.Number = 2
	fieldPointZ protowire.Number = 3
)

// Backend encodes recordings as a protobuf Drawing message.
type Backend struct {
	buf   []byte
	seg   []byte
	shape int
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a wire backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin resets the output buffer.
func (b *Backend) Begin(koch.Rect) error {
	b.buf = b.buf[:0]
	b.shape = 0
	return nil
}

// BeginShape sets the shape index stamped on following segments.
func (b *Backend) BeginShape(index int) {
	b.shape = index
}

// Line appends one Segment to the Drawing.
func (b *Backend) Line(p, q koch.Point) {
	seg := b.seg[:0]
	seg = protowire.AppendTag(seg, fieldSegmentA, protowire.BytesType)
	seg = protowire.AppendBytes(seg, appendPoint(nil, p))
	seg = protowire.AppendTag(seg, fieldSegmentB, protowire.BytesType)
	seg = protowire.AppendBytes(seg, appendPoint(nil, q))
	if b.shape != 0 {
		seg = protowire.AppendTag(seg, fieldSegmentShape, protowire.VarintType)
		seg = protowire.AppendVarint(seg, uint64(b.shape))
	}
	b.seg = seg

	b.buf = protowire.AppendTag(b.buf, fieldDrawingSegments, protowire.BytesType)
	b.buf = protowire.AppendBytes(b.buf, seg)
}

// End is a no-op; the encoding is complete after the last Line.
func (b *Backend) End() error {
	return nil
}

// Bytes returns the encoded Drawing.
func (b *Backend) Bytes() []byte {
	return b.buf
}

// WriteTo writes the encoded Drawing to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}

// SaveToFile writes the encoded Drawing to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.buf, 0o644)
}

func appendPoint(buf []byte, p koch.Point) []byte {
	for _, f := range [...]struct {
		num protowire.Number
		v   float64
	}{{fieldPointX, p.X}, {fieldPointY, p.Y}, {fieldPointZ, p.Z}} {
		if f.v == 0 && !math.Signbit(f.v) {
			continue
		}
		buf = protowire.AppendTag(buf, f.num, protowire.Fixed64Type)
		buf = protowire.AppendFixed64(buf, math.Float64bits(f.v))
	}
	return buf
}
