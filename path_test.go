package koch

import (
	"math"
	"testing"
)

func TestPathBuilder_ClosedOutline(t *testing.T) {
	b := NewPathBuilder()
	GenerateSnowflake(Pt(0, 0), 10, 2, b)

	// Each edge ends where the next one starts, so the three runs join
	// into one closed outline: MoveTo plus 48 LineTo.
	subs := b.Build().Subpaths()
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	if len(subs[0]) != 49 {
		t.Errorf("subpath has %d points, want 49", len(subs[0]))
	}
	if !subs[0][0].Approx(subs[0][48], 1e-9) {
		t.Errorf("outline not closed: %v != %v", subs[0][0], subs[0][48])
	}
}

func TestPathBuilder_Joins(t *testing.T) {
	b := NewPathBuilder()
	b.Accept(Pt(0, 0), Pt(1, 0))
	b.Accept(Pt(1, 0), Pt(1, 1))
	b.Accept(Pt(5, 5), Pt(6, 6))

	elems := b.Build().Elements()
	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(1, 0)},
		LineTo{Point: Pt(1, 1)},
		MoveTo{Point: Pt(5, 5)},
		LineTo{Point: Pt(6, 6)},
	}
	if len(elems) != len(want) {
		t.Fatalf("got %d elements, want %d", len(elems), len(want))
	}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, elems[i], want[i])
		}
	}
}

func TestPathBuilder_BeginShapeSplits(t *testing.T) {
	b := NewPathBuilder()
	b.BeginShape(0)
	b.Accept(Pt(0, 0), Pt(1, 0))
	b.BeginShape(1)
	b.Accept(Pt(1, 0), Pt(2, 0))

	if n := len(b.Build().Subpaths()); n != 2 {
		t.Errorf("got %d subpaths, want 2", n)
	}
}

func TestPath_Clear(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(1, 2))
	p.LineTo(Pt(3, 4))
	if !p.HasCurrentPoint() || p.CurrentPoint() != Pt(3, 4) {
		t.Fatalf("current point = %v", p.CurrentPoint())
	}
	p.Clear()
	if p.HasCurrentPoint() || len(p.Elements()) != 0 {
		t.Error("Clear should empty the path")
	}
}

func TestBounds(t *testing.T) {
	if r := Bounds(nil); r != (Rect{}) {
		t.Errorf("Bounds(nil) = %v, want zero Rect", r)
	}

	segs := Snowflake(Pt(0, 0), 10, 0)
	r := Bounds(segs)
	h := 5 * math.Sqrt(3) / 2
	if !approxEqual(r.Min.X, -h, 1e-9) || !approxEqual(r.Max.X, h, 1e-9) {
		t.Errorf("X extent = [%v, %v], want ±%v", r.Min.X, r.Max.X, h)
	}
	if !approxEqual(r.Min.Y, -5, 1e-9) || !approxEqual(r.Max.Y, 2.5, 1e-9) {
		t.Errorf("Y extent = [%v, %v], want [-5, 2.5]", r.Min.Y, r.Max.Y)
	}

	padded := r.Pad(1)
	if !approxEqual(padded.Width(), r.Width()+2, 1e-12) || !approxEqual(padded.Height(), r.Height()+2, 1e-12) {
		t.Errorf("Pad(1) = %v", padded)
	}
	if !EmptyRect().IsEmpty() || r.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestCollectorAndTee(t *testing.T) {
	c := NewCollector(0)
	var n Counter
	var shapes []int
	fn := SinkFunc(func(_, _ Point) {})
	rec := &shapeRecorder{}

	sink := Tee(c, &n, fn, rec)
	sink.BeginShape(4)
	sink.Accept(Pt(0, 0), Pt(1, 1))
	sink.Accept(Pt(1, 1), Pt(2, 2))
	shapes = rec.begun

	if c.Len() != 2 || n.N != 2 {
		t.Errorf("collector %d, counter %d, want 2 and 2", c.Len(), n.N)
	}
	if len(shapes) != 1 || shapes[0] != 4 {
		t.Errorf("BeginShape forwarded %v, want [4]", shapes)
	}

	replay := NewCollector(0)
	c.ReplayTo(replay)
	if replay.Len() != 2 || replay.Segments()[1] != (Segment{A: Pt(1, 1), B: Pt(2, 2)}) {
		t.Errorf("replay = %v", replay.Segments())
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len after Reset = %d", c.Len())
	}
}
