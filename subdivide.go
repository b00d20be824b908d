package koch

import "math"

// generator holds the heading changes of the Koch motif: straight, turn
// right 60°, turn left 120°, turn right 60°. The deltas accumulate.
var generator = [4]float64{0, -math.Pi / 3, 2 * math.Pi / 3, -math.Pi / 3}

// Subdivide traces one edge of length starting at pos along heading
// (radians, XY plane) and expands it into a Koch curve of the given depth.
// Every terminal sub-edge is passed to sink in drawing order, and the
// position reached at the end of the edge is returned.
//
// At depth 0 a single segment is emitted. Each level replaces an edge
// with four edges a third as long, so one call emits 4^depth segments.
// Negative depth is treated as 0.
func Subdivide(depth int, pos Point, heading, length float64, sink SegmentSink) Point {
	if depth <= 0 {
		sin, cos := math.Sincos(heading)
		end := Point{X: pos.X + length*cos, Y: pos.Y + length*sin}
		sink.Accept(pos, end)
		return end
	}

	sub := length / 3
	for _, delta := range generator {
		heading += delta
		pos = Subdivide(depth-1, pos, heading, sub, sink)
	}
	return pos
}
