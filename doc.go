// Package koch generates Koch snowflake outlines as streams of line
// segments.
//
// # Overview
//
// A snowflake is anchored at a point and sized by a radius. An equilateral
// seed triangle is built around the anchor and each of its three edges is
// recursively replaced by the four-segment Koch motif. The segments are
// not returned as a shape; they are pushed into a [SegmentSink], which can
// be an in-memory [Collector], a [PathBuilder], or a document owned by a
// host application.
//
// # Quick Start
//
//	import "github.com/gogpu/koch"
//
//	c := koch.NewCollector(koch.SegmentCount(3))
//	koch.GenerateSnowflake(koch.Pt(0, 0), 10, 3, c)
//	fmt.Println(c.Len()) // 192
//
// Several anchors with shared settings:
//
//	g := koch.Generator{Radius: 10, Depth: 2, Parallel: true}
//	err := g.GenerateAll(ctx, anchors, sink)
//
// # Geometry
//
//   - The first triangle vertex lies radius/2 below the anchor; the other
//     two are rotated from it by ±120° about the anchor.
//   - Each recursion level splits an edge into four edges a third as long,
//     turning by 0°, -60°, +120°, -60° in turn, so one edge of depth d
//     becomes 4^d segments and the snowflake 3·4^d.
//   - The three triangle edges are expanded independently from their own
//     starting vertex. Within an edge, consecutive segments share an
//     endpoint.
//   - Output lies in the Z=0 plane. Angles are radians, counter-clockwise.
//
// # Sub-packages
//
//   - recording: recordings, the backend registry and file export
//   - recording/backends/...: svg, raster (PNG), dxf, geojson and wire formats
//   - command: the interactive snowflake command against a host document
//   - config: YAML configuration for the snowflake CLI
package koch
