package recording

import "github.com/gogpu/koch"

// Command is a single recorded operation.
type Command interface {
	isCommand()
}

// BeginShapeCommand marks the start of the snowflake with the given index.
type BeginShapeCommand struct {
	Index int
}

func (BeginShapeCommand) isCommand() {}

// LineCommand is one emitted line segment.
type LineCommand struct {
	A, B koch.Point
}

func (LineCommand) isCommand() {}
