// Package geojson provides a GeoJSON backend for the recording system.
//
// Every continuous run of segments becomes a LineString feature carrying
// the index of the snowflake it belongs to. Consecutive segments whose
// endpoints meet within 1e-9 are joined, so a snowflake normally yields a
// single closed LineString of 3·4^depth+1 points.
package geojson

import (
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

func init() {
	recording.Register("geojson", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a GeoJSON FeatureCollection.
type Backend struct {
	fc    *geojson.FeatureCollection
	run   orb.LineString
	shape int
	data  []byte
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a GeoJSON backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts an empty feature collection.
func (b *Backend) Begin(koch.Rect) error {
	b.fc = geojson.NewFeatureCollection()
	b.run = nil
	b.shape = 0
	b.data = nil
	return nil
}

// BeginShape ends the current run and starts a new snowflake.
func (b *Backend) BeginShape(index int) {
	b.flush()
	b.shape = index
}

// Line extends the current run, or starts a new one if p does not continue it.
func (b *Backend) Line(p, q koch.Point) {
	if len(b.run) == 0 || !continues(b.run[len(b.run)-1], p) {
		b.flush()
		b.run = orb.LineString{{p.X, p.Y}}
	}
	b.run = append(b.run, orb.Point{q.X, q.Y})
}

// End encodes the collection.
func (b *Backend) End() error {
	b.flush()
	data, err := b.fc.MarshalJSON()
	if err != nil {
		return err
	}
	b.data = data
	return nil
}

// Collection returns the feature collection. Valid after End.
func (b *Backend) Collection() *geojson.FeatureCollection {
	return b.fc
}

// Bytes returns the encoded GeoJSON. Valid after End.
func (b *Backend) Bytes() []byte {
	return b.data
}

// WriteTo writes the encoded GeoJSON to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}

// SaveToFile writes the encoded GeoJSON to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.data, 0o644)
}

const joinEpsilon = 1e-9

func continues(last orb.Point, p koch.Point) bool {
	return koch.Pt(last[0], last[1]).Approx(koch.Pt(p.X, p.Y), joinEpsilon)
}

func (b *Backend) flush() {
	if len(b.run) < 2 {
		b.run = nil
		return
	}
	f := geojson.NewFeature(b.run)
	f.Properties["snowflake"] = b.shape
	b.fc.Append(f)
	b.run = nil
}
