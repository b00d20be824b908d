package koch

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Path is a polyline made of subpaths.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line from the current point to pt.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Subpaths splits the path into its runs of connected points.
func (p *Path) Subpaths() [][]Point {
	var out [][]Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, []Point{e.Point})
		case LineTo:
			if len(out) == 0 {
				out = append(out, nil)
			}
			last := len(out) - 1
			out[last] = append(out[last], e.Point)
		}
	}
	return out
}

// joinEpsilon is how close a segment start must be to the current point
// to continue the current subpath.
const joinEpsilon = 1e-9

// PathBuilder is a SegmentSink that assembles accepted segments into a
// Path, starting a new subpath whenever a segment does not continue from
// the previous one.
type PathBuilder struct {
	path  *Path
	split bool
}

// NewPathBuilder creates an empty PathBuilder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// Accept appends the segment to the path.
func (b *PathBuilder) Accept(a, c Point) {
	if b.split || !b.path.HasCurrentPoint() || !b.path.CurrentPoint().Approx(a, joinEpsilon) {
		b.path.MoveTo(a)
		b.split = false
	}
	b.path.LineTo(c)
}

// BeginShape forces the next segment to start a new subpath.
func (b *PathBuilder) BeginShape(int) {
	b.split = true
}

// Build returns the assembled path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
