package koch

import "math"

// Triangle is the seed of a snowflake. The order of the vertices defines
// the winding and which edge is expanded first.
type Triangle [3]Point

// BuildTriangle returns the equilateral seed triangle around anchor.
//
// The first vertex sits radius/2 below the anchor; the other two are that
// vertex rotated about the anchor by +120° and -120°. radius is not
// validated: zero collapses the triangle onto the anchor and a negative
// value mirrors it.
func BuildTriangle(anchor Point, radius float64) Triangle {
	first := anchor.Sub(Pt(0, radius/2))
	const third = 2 * math.Pi / 3
	return Triangle{
		first,
		first.RotateAround(anchor, third),
		first.RotateAround(anchor, -third),
	}
}

// Edge returns the i-th edge of the triangle, from vertex i to the next
// vertex in cyclic order.
func (t Triangle) Edge(i int) (from, to Point) {
	return t[i%3], t[(i+1)%3]
}
