package recording

import (
	"context"
	"testing"

	"github.com/gogpu/koch"
)

// traceBackend records the calls it receives.
type traceBackend struct {
	bounds  koch.Rect
	shapes  []int
	lines   []koch.Segment
	begins  int
	ends    int
	failEnd error
}

func (b *traceBackend) Begin(bounds koch.Rect) error {
	b.begins++
	b.bounds = bounds
	return nil
}

func (b *traceBackend) BeginShape(index int) { b.shapes = append(b.shapes, index) }

func (b *traceBackend) Line(p, q koch.Point) {
	b.lines = append(b.lines, koch.Segment{A: p, B: q})
}

func (b *traceBackend) End() error {
	b.ends++
	return b.failEnd
}

func record(t *testing.T, depth int, anchors ...koch.Point) *Recording {
	t.Helper()
	rec := NewRecorder()
	g := koch.Generator{Radius: 10, Depth: depth}
	if err := g.GenerateAll(context.Background(), anchors, rec); err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	return rec.FinishRecording()
}

func TestRecorder_Counts(t *testing.T) {
	r := record(t, 2, koch.Pt(0, 0), koch.Pt(30, 0))

	if r.Shapes() != 2 {
		t.Errorf("Shapes() = %d, want 2", r.Shapes())
	}
	if r.Lines() != 96 {
		t.Errorf("Lines() = %d, want 96", r.Lines())
	}
	if len(r.Segments()) != 96 {
		t.Errorf("len(Segments()) = %d, want 96", len(r.Segments()))
	}
	if len(r.Commands()) != 98 {
		t.Errorf("len(Commands()) = %d, want 98", len(r.Commands()))
	}
}

func TestRecorder_Bounds(t *testing.T) {
	r := record(t, 0, koch.Pt(0, 0))
	want := koch.Bounds(koch.Snowflake(koch.Pt(0, 0), 10, 0))
	if !r.Bounds().Min.Approx(want.Min, 1e-12) || !r.Bounds().Max.Approx(want.Max, 1e-12) {
		t.Errorf("Bounds() = %v, want %v", r.Bounds(), want)
	}

	empty := NewRecorder().FinishRecording()
	if empty.Bounds() != (koch.Rect{}) || empty.Lines() != 0 || empty.Shapes() != 0 {
		t.Errorf("empty recording = %+v", empty)
	}
}

func TestRecorder_ImplicitShape(t *testing.T) {
	rec := NewRecorder()
	koch.GenerateSnowflake(koch.Pt(0, 0), 10, 0, rec)
	r := rec.FinishRecording()

	if r.Shapes() != 1 {
		t.Errorf("Shapes() = %d, want 1", r.Shapes())
	}
	if _, ok := r.Commands()[0].(BeginShapeCommand); !ok {
		t.Errorf("first command = %T, want BeginShapeCommand", r.Commands()[0])
	}
}

func TestRecording_Playback(t *testing.T) {
	r := record(t, 1, koch.Pt(0, 0), koch.Pt(5, 5))

	// Play back twice to the same kind of backend; output must match.
	for i := 0; i < 2; i++ {
		b := &traceBackend{}
		if err := r.Playback(b); err != nil {
			t.Fatalf("Playback: %v", err)
		}
		if b.begins != 1 || b.ends != 1 {
			t.Errorf("Begin/End calls = %d/%d, want 1/1", b.begins, b.ends)
		}
		if len(b.shapes) != 2 || b.shapes[0] != 0 || b.shapes[1] != 1 {
			t.Errorf("shapes = %v, want [0 1]", b.shapes)
		}
		if len(b.lines) != 24 {
			t.Errorf("lines = %d, want 24", len(b.lines))
		}
		if b.bounds != r.Bounds() {
			t.Errorf("Begin bounds = %v, want %v", b.bounds, r.Bounds())
		}
	}
}

func TestRecording_PlaybackEndError(t *testing.T) {
	r := record(t, 0, koch.Pt(0, 0))
	want := context.DeadlineExceeded
	if err := r.Playback(&traceBackend{failEnd: want}); err != want {
		t.Errorf("Playback error = %v, want %v", err, want)
	}
}
