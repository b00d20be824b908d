package koch

import "math"

// Rect is an axis-aligned rectangle in the XY plane.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a rectangle that contains nothing; expanding it with a
// point yields a zero-size rectangle at that point.
func EmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{
		Min: Point{X: inf, Y: inf},
		Max: Point{X: -inf, Y: -inf},
	}
}

// Bounds returns the bounding rectangle of segments. It returns the
// zero Rect when segments is empty.
func Bounds(segments []Segment) Rect {
	if len(segments) == 0 {
		return Rect{}
	}
	r := EmptyRect()
	for _, s := range segments {
		r = r.Expand(s.A).Expand(s.B)
	}
	return r
}

// IsEmpty reports whether r contains no point.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Expand returns the smallest rectangle containing r and p.
func (r Rect) Expand(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Pad grows r by d on every side. A negative d shrinks it.
func (r Rect) Pad(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
