package koch

import "math"

// Point represents a point or vector in model space.
// Generated geometry is planar, so Z stays 0 unless the caller sets it.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a planar Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 creates a Point with an explicit Z coordinate.
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// RotateAround returns p rotated by angle radians about center in the XY
// plane, i.e. about an axis parallel to Z. Z is carried through unchanged.
func (p Point) RotateAround(center Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
		Z: p.Z,
	}
}

// Approx reports whether p and q are equal within epsilon on every axis.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon
}

// Segment is a straight line between two endpoints.
type Segment struct {
	A, B Point
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}
