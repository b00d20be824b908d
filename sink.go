package koch

import "sync"

// SegmentSink receives the line segments produced by the generator.
// Accept is called once per terminal fractal edge, in drawing order.
type SegmentSink interface {
	Accept(a, b Point)
}

// ShapeSink is implemented by sinks that want to know where one snowflake
// ends and the next begins. BeginShape is called before the first segment
// of each anchor with the anchor's index.
type ShapeSink interface {
	SegmentSink
	BeginShape(index int)
}

// FailingSink is implemented by sinks whose underlying store can fail.
// Generation stops after the current anchor once Err returns non-nil.
type FailingSink interface {
	SegmentSink
	Err() error
}

// SinkFunc adapts an ordinary function to the SegmentSink interface.
type SinkFunc func(a, b Point)

// Accept calls f(a, b).
func (f SinkFunc) Accept(a, b Point) { f(a, b) }

// Collector is an append-only in-memory sink.
// It is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	segments []Segment
}

// maxCollectorPrealloc caps the capacity hint honoured by NewCollector.
const maxCollectorPrealloc = 1 << 20

// NewCollector creates a Collector with room for n segments.
func NewCollector(n int) *Collector {
	n = max(0, min(n, maxCollectorPrealloc))
	return &Collector{segments: make([]Segment, 0, n)}
}

// Accept appends the segment.
func (c *Collector) Accept(a, b Point) {
	c.mu.Lock()
	c.segments = append(c.segments, Segment{A: a, B: b})
	c.mu.Unlock()
}

// Segments returns a copy of the collected segments.
func (c *Collector) Segments() []Segment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Len returns the number of collected segments.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.segments)
}

// Reset drops all collected segments but keeps the allocated storage.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.segments = c.segments[:0]
	c.mu.Unlock()
}

// ReplayTo feeds every collected segment, in order, into sink.
func (c *Collector) ReplayTo(sink SegmentSink) {
	for _, s := range c.Segments() {
		sink.Accept(s.A, s.B)
	}
}

// Counter counts segments without storing them.
type Counter struct {
	N int
}

// Accept increments the count.
func (c *Counter) Accept(_, _ Point) { c.N++ }

// Tee returns a sink that forwards every segment to each of sinks in turn.
// Shape boundaries are forwarded to the sinks that implement ShapeSink.
func Tee(sinks ...SegmentSink) ShapeSink {
	return tee(sinks)
}

type tee []SegmentSink

func (t tee) Accept(a, b Point) {
	for _, s := range t {
		s.Accept(a, b)
	}
}

func (t tee) BeginShape(index int) {
	for _, s := range t {
		if ss, ok := s.(ShapeSink); ok {
			ss.BeginShape(index)
		}
	}
}
