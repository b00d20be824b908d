// Package recording captures generated snowflakes and plays them back to
// export backends.
//
// # Architecture
//
//   - Recorder: a koch.ShapeSink that captures segments as commands
//   - Recording: the immutable result, with bounds and counts
//   - Backend: renders a recording to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	g := koch.Generator{Radius: 10, Depth: 3}
//	if err := g.GenerateAll(ctx, anchors, rec); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	import _ "github.com/gogpu/koch/recording/backends/svg"
//
//	err := recording.Export(r, "svg", "snowflake.svg")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    _ "github.com/gogpu/koch/recording/backends/dxf"     // "dxf"
//	    _ "github.com/gogpu/koch/recording/backends/geojson" // "geojson"
//	    _ "github.com/gogpu/koch/recording/backends/raster"  // "raster"
//	    _ "github.com/gogpu/koch/recording/backends/svg"     // "svg"
//	    _ "github.com/gogpu/koch/recording/backends/wire"    // "wire"
//	)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
