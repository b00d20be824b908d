package recording

import "github.com/gogpu/koch"

// Recorder captures generated segments as commands.
// It implements koch.ShapeSink, so it can be handed directly to
// koch.GenerateSnowflake or koch.Generator.GenerateAll.
//
// Example:
//
//	rec := recording.NewRecorder()
//	g := koch.Generator{Radius: 10, Depth: 3}
//	_ = g.GenerateAll(ctx, anchors, rec)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	bounds   koch.Rect
	shapes   int
	lines    int
	open     bool
}

var _ koch.ShapeSink = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
		bounds:   koch.EmptyRect(),
	}
}

// BeginShape starts a new snowflake.
func (r *Recorder) BeginShape(index int) {
	r.commands = append(r.commands, BeginShapeCommand{Index: index})
	r.shapes++
	r.open = true
}

// Accept records one segment. Segments accepted before any BeginShape
// are grouped into an implicit shape 0.
func (r *Recorder) Accept(a, b koch.Point) {
	if !r.open {
		r.BeginShape(0)
	}
	r.commands = append(r.commands, LineCommand{A: a, B: b})
	r.bounds = r.bounds.Expand(a).Expand(b)
	r.lines++
}

// Lines returns the number of segments recorded so far.
func (r *Recorder) Lines() int {
	return r.lines
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	bounds := r.bounds
	if r.lines == 0 {
		bounds = koch.Rect{}
	}
	return &Recording{
		commands: r.commands,
		bounds:   bounds,
		shapes:   r.shapes,
		lines:    r.lines,
	}
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend implementation, any number of times,
// from multiple goroutines.
type Recording struct {
	commands []Command
	bounds   koch.Rect
	shapes   int
	lines    int
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Bounds returns the bounding rectangle of all recorded segments.
func (r *Recording) Bounds() koch.Rect {
	return r.bounds
}

// Shapes returns the number of snowflakes recorded.
func (r *Recording) Shapes() int {
	return r.shapes
}

// Lines returns the number of segments recorded.
func (r *Recording) Lines() int {
	return r.lines
}

// Segments returns every recorded segment in order.
func (r *Recording) Segments() []koch.Segment {
	out := make([]koch.Segment, 0, r.lines)
	for _, cmd := range r.commands {
		if c, ok := cmd.(LineCommand); ok {
			out = append(out, koch.Segment{A: c.A, B: c.B})
		}
	}
	return out
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.bounds); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginShapeCommand:
			backend.BeginShape(c.Index)
		case LineCommand:
			backend.Line(c.A, c.B)
		}
	}

	return backend.End()
}
