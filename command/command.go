// Package command implements the interactive snowflake command against a
// host document: it asks for anchor points, a depth and a radius, then
// adds one line per generated segment to the document.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/koch"
)

// Prompt texts shown by Run.
const (
	PromptPoints = "Select point"
	PromptDepth  = "The Depth of the Snowflake?"
	PromptRadius = "The size of the Snowflake?"
)

// Result is the outcome of a command run, as reported to the host.
type Result int

const (
	Success Result = iota
	Cancel
	Failure
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Cancel:
		return "cancel"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Prompter asks the user for input. Implementations return an error
// wrapping koch.ErrAborted when the user cancels.
type Prompter interface {
	// SelectPoints returns the selected points. Zero points is valid.
	SelectPoints(ctx context.Context, prompt string) ([]koch.Point, error)

	// GetInteger asks for an integer in [lo, hi], offering def.
	GetInteger(ctx context.Context, prompt string, def, lo, hi int) (int, error)

	// GetNumber asks for a real number, offering def.
	GetNumber(ctx context.Context, prompt string, def float64) (float64, error)
}

// Document stores the generated lines.
type Document interface {
	AddLine(a, b koch.Point) error
}

// Unselecter is implemented by documents that keep a selection. Run
// clears it once the anchor points have been picked.
type Unselecter interface {
	UnselectAll()
}

// ShapeDocument is implemented by documents that group lines per
// snowflake.
type ShapeDocument interface {
	BeginShape(index int)
}

// Command is the snowflake command.
type Command struct {
	DefaultDepth  int
	MinDepth      int
	MaxDepth      int
	DefaultRadius float64

	// Parallel generates snowflakes concurrently before adding them to
	// the document in anchor order.
	Parallel bool
}

// New returns the command with its standard settings: depth 0 within
// [0, 5] and radius 10.
func New() *Command {
	return &Command{
		DefaultDepth:  0,
		MinDepth:      0,
		MaxDepth:      koch.DefaultMaxDepth,
		DefaultRadius: 10,
	}
}

// Name is the command name as shown to the user.
func (c *Command) Name() string { return "Snowflake" }

// Run executes the command. Any cancelled input stops the command before
// geometry is produced and yields Cancel with an error wrapping
// koch.ErrAborted.
func (c *Command) Run(ctx context.Context, p Prompter, doc Document) (Result, error) {
	log := koch.Logger()

	points, err := p.SelectPoints(ctx, PromptPoints)
	if err != nil {
		return c.abort("select points", err)
	}
	if u, ok := doc.(Unselecter); ok {
		u.UnselectAll()
	}
	if len(points) == 0 {
		log.Info("command: no points selected")
		return Success, nil
	}

	hi := min(c.MaxDepth, koch.MaxSupportedDepth)
	depth, err := p.GetInteger(ctx, PromptDepth, c.DefaultDepth, c.MinDepth, hi)
	if err != nil {
		return c.abort("depth", err)
	}
	if depth < c.MinDepth || depth > hi {
		return Failure, fmt.Errorf("command: depth %d not in [%d, %d]: %w",
			depth, c.MinDepth, hi, koch.ErrDepthOutOfRange)
	}

	radius, err := p.GetNumber(ctx, PromptRadius, c.DefaultRadius)
	if err != nil {
		return c.abort("radius", err)
	}

	log.Info("command: generating snowflakes",
		"anchors", len(points), "depth", depth, "radius", radius)

	g := koch.Generator{
		Radius:   radius,
		Depth:    depth,
		MaxDepth: hi,
		Parallel: c.Parallel,
	}
	sink := &documentSink{doc: doc}
	if err := g.GenerateAll(ctx, points, sink); err != nil {
		if errors.Is(err, koch.ErrAborted) {
			log.Warn("command: generation cancelled", "lines", sink.lines)
			return Cancel, err
		}
		log.Warn("command: document rejected line", "lines", sink.lines, "error", err)
		return Failure, fmt.Errorf("command: add line: %w", err)
	}

	log.Info("command: done", "lines", sink.lines)
	return Success, nil
}

func (c *Command) abort(stage string, err error) (Result, error) {
	koch.Logger().Warn("command: input aborted", "stage", stage, "error", err)
	switch {
	case errors.Is(err, koch.ErrAborted):
		return Cancel, fmt.Errorf("command: %s: %w", stage, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Cancel, fmt.Errorf("command: %s: %w: %w", stage, koch.ErrAborted, err)
	default:
		return Failure, fmt.Errorf("command: %s: %w", stage, err)
	}
}

// documentSink adapts a Document to koch.SegmentSink. The first AddLine
// error is kept and later segments are dropped.
type documentSink struct {
	doc   Document
	err   error
	lines int
}

func (s *documentSink) Accept(a, b koch.Point) {
	if s.err != nil {
		return
	}
	if err := s.doc.AddLine(a, b); err != nil {
		s.err = err
		return
	}
	s.lines++
}

func (s *documentSink) BeginShape(index int) {
	if sd, ok := s.doc.(ShapeDocument); ok {
		sd.BeginShape(index)
	}
}

func (s *documentSink) Err() error { return s.err }
