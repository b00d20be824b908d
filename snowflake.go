package koch

import (
	"math"
	"strconv"
)

// DefaultMaxDepth is the deepest recursion accepted by Generator unless
// MaxDepth says otherwise.
const DefaultMaxDepth = 5

// MaxSupportedDepth is the hard ceiling on recursion depth. A snowflake of
// this depth is already 3·4^12 (about fifty million) segments.
const MaxSupportedDepth = 12

// GenerateSnowflake emits the Koch snowflake anchored at anchor into sink.
//
// Each of the three seed triangle edges is expanded independently from its
// own starting vertex, so the output is three continuous runs of 4^depth
// segments each. Depth 0 draws the plain triangle. The snowflake is drawn
// in the Z=0 plane whatever the anchor's Z.
func GenerateSnowflake(anchor Point, radius float64, depth int, sink SegmentSink) {
	tri := BuildTriangle(anchor, radius)
	for i := range tri {
		from, to := tri.Edge(i)
		from.Z = 0
		dx := to.X - from.X
		dy := to.Y - from.Y
		Subdivide(depth, from, math.Atan2(dy, dx), math.Hypot(dx, dy), sink)
	}
}

// Snowflake is a convenience wrapper around GenerateSnowflake that returns
// the segments instead of streaming them.
func Snowflake(anchor Point, radius float64, depth int) []Segment {
	c := NewCollector(SegmentCount(min(depth, MaxSupportedDepth)))
	GenerateSnowflake(anchor, radius, depth, c)
	return c.segments
}

// SegmentCount returns the number of segments one snowflake of the given
// depth is made of: 3 * 4^depth. Negative depth counts as 0. Counts that
// do not fit in an int saturate at math.MaxInt.
func SegmentCount(depth int) int {
	if depth < 0 {
		depth = 0
	}
	if depth >= strconv.IntSize/2-1 {
		return math.MaxInt
	}
	return 3 << (2 * uint(depth))
}

// ClampDepth limits depth to the inclusive range [lo, hi].
func ClampDepth(depth, lo, hi int) int {
	return max(lo, min(depth, hi))
}
