package recording

import (
	"io"

	"github.com/gogpu/koch"
)

// Backend is the interface that all export backends must implement.
// Backends receive the recorded snowflakes and translate them to their
// output format (SVG elements, raster pixels, DXF entities, ...).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept Begin with an empty Rect when nothing was recorded
//  3. Translate coordinates if needed (e.g., SVG Y-flip)
type Backend interface {
	// Begin initializes the backend. bounds covers every segment that
	// will follow.
	Begin(bounds koch.Rect) error

	// BeginShape starts the snowflake with the given index.
	BeginShape(index int)

	// Line draws one segment.
	Line(a, b koch.Point)

	// End finalizes the output. After End, WriteTo or SaveToFile can be
	// used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
