package koch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Generator produces one snowflake per anchor point with shared settings.
//
// The zero value draws depth-0 snowflakes of radius 0; set Radius and
// Depth before use. A Generator holds no state between calls and may be
// copied freely.
type Generator struct {
	Radius float64
	Depth  int

	// MaxDepth bounds Depth. Zero means DefaultMaxDepth. It may not exceed
	// MaxSupportedDepth.
	MaxDepth int

	// Parallel computes anchors concurrently. Output order and content
	// are identical to the sequential mode.
	Parallel bool
}

func (g Generator) maxDepth() int {
	if g.MaxDepth > 0 {
		return g.MaxDepth
	}
	return DefaultMaxDepth
}

// Validate reports whether Depth lies within [0, MaxDepth] and MaxDepth
// within [0, MaxSupportedDepth].
func (g Generator) Validate() error {
	if g.MaxDepth < 0 || g.MaxDepth > MaxSupportedDepth {
		return fmt.Errorf("%w: max depth %d not in [0, %d]", ErrDepthOutOfRange, g.MaxDepth, MaxSupportedDepth)
	}
	if g.Depth < 0 || g.Depth > g.maxDepth() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrDepthOutOfRange, g.Depth, g.maxDepth())
	}
	return nil
}

// GenerateAll emits a snowflake for every anchor into sink, in anchor
// order. If sink implements ShapeSink, BeginShape is called before each
// snowflake. If sink implements FailingSink, generation stops at the first
// anchor after which Err is non-nil and that error is returned.
//
// Cancellation of ctx is checked between anchors and reported as an error
// wrapping ErrAborted. Snowflakes already emitted stay emitted.
func (g Generator) GenerateAll(ctx context.Context, anchors []Point, sink SegmentSink) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Parallel && len(anchors) > 1 {
		return g.generateParallel(ctx, anchors, sink)
	}

	log := Logger()
	for i, anchor := range anchors {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}
		beginShape(sink, i)
		GenerateSnowflake(anchor, g.Radius, g.Depth, sink)
		if err := sinkErr(sink); err != nil {
			return err
		}
		log.Debug("koch: snowflake generated",
			"index", i, "anchor", anchor, "segments", SegmentCount(g.Depth))
	}
	return nil
}

// generateParallel expands anchors on a bounded worker group into private
// collectors and then replays them into sink sequentially, so sink never
// sees concurrent calls.
func (g Generator) generateParallel(ctx context.Context, anchors []Point, sink SegmentSink) error {
	shapes := make([]*Collector, len(anchors))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i, anchor := range anchors {
		i, anchor := i, anchor
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := NewCollector(SegmentCount(g.Depth))
			GenerateSnowflake(anchor, g.Radius, g.Depth, c)
			shapes[i] = c
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}

	Logger().Debug("koch: parallel generation finished", "anchors", len(anchors))

	for i, c := range shapes {
		beginShape(sink, i)
		c.ReplayTo(sink)
		if err := sinkErr(sink); err != nil {
			return err
		}
	}
	return nil
}

func beginShape(sink SegmentSink, index int) {
	if ss, ok := sink.(ShapeSink); ok {
		ss.BeginShape(index)
	}
}

func sinkErr(sink SegmentSink) error {
	if fs, ok := sink.(FailingSink); ok {
		return fs.Err()
	}
	return nil
}
