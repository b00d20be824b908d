package command

import (
	"github.com/gogpu/koch"
	"github.com/gogpu/koch/recording"
)

// RecordingDocument is a Document that records lines for later export.
type RecordingDocument struct {
	rec *recording.Recorder
}

var (
	_ Document      = (*RecordingDocument)(nil)
	_ ShapeDocument = (*RecordingDocument)(nil)
)

// NewRecordingDocument creates an empty RecordingDocument.
func NewRecordingDocument() *RecordingDocument {
	return &RecordingDocument{rec: recording.NewRecorder()}
}

// AddLine records the line. It never fails.
func (d *RecordingDocument) AddLine(a, b koch.Point) error {
	d.rec.Accept(a, b)
	return nil
}

// BeginShape starts a new snowflake group.
func (d *RecordingDocument) BeginShape(index int) {
	d.rec.BeginShape(index)
}

// Lines returns the number of lines added so far.
func (d *RecordingDocument) Lines() int {
	return d.rec.Lines()
}

// Finish returns the recording. The document must not be used afterwards.
func (d *RecordingDocument) Finish() *recording.Recording {
	return d.rec.FinishRecording()
}
