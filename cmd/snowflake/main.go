// Command snowflake draws Koch snowflakes around a set of points and
// exports them as SVG, PNG, DXF, GeoJSON or a protobuf stream.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/koch"
	"github.com/gogpu/koch/command"
	"github.com/gogpu/koch/config"
	"github.com/gogpu/koch/recording"
	_ "github.com/gogpu/koch/recording/backends/dxf"
	_ "github.com/gogpu/koch/recording/backends/geojson"
	"github.com/gogpu/koch/recording/backends/raster"
	_ "github.com/gogpu/koch/recording/backends/svg"
	_ "github.com/gogpu/koch/recording/backends/wire"
)

// Exit codes.
const (
	exitFailure = 1
	exitCancel  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("snowflake", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "YAML configuration file")
		points      = fs.String("points", "", `anchor points, e.g. "0,0;25,0"`)
		depth       = fs.Int("depth", -1, "recursion depth (overrides config)")
		radius      = fs.Float64("radius", 0, "snowflake size (overrides config)")
		format      = fs.String("format", "", "output format (overrides config)")
		output      = fs.String("output", "", "output file (overrides config)")
		width       = fs.Int("width", 0, "raster width in pixels")
		height      = fs.Int("height", 0, "raster height in pixels")
		parallel    = fs.Bool("parallel", false, "generate snowflakes concurrently")
		interactive = fs.Bool("interactive", false, "ask for points, depth and size on stdin")
		verbose     = fs.Bool("v", false, "debug logging")
		listFormats = fs.Bool("list-formats", false, "print the available output formats and exit")
	)
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	if *listFormats {
		fmt.Println(strings.Join(recording.Backends(), "\n"))
		return 0
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFailure
		}
	}
	if err := applyFlags(&cfg, fs, *points, *depth, *radius, *format, *output, *width, *height, *parallel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	koch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var prompter command.Prompter
	if *interactive {
		prompter = command.NewLinePrompter(os.Stdin, os.Stdout)
	} else {
		prompter = &command.ScriptedPrompter{
			Points: cfg.Points(),
			Depth:  cfg.Depth,
			Radius: cfg.Radius,
		}
	}

	cmd := command.New()
	cmd.DefaultDepth = cfg.Depth
	cmd.DefaultRadius = cfg.Radius
	cmd.MinDepth = cfg.MinDepth
	cmd.MaxDepth = cfg.MaxDepth
	cmd.Parallel = cfg.Parallel

	doc := command.NewRecordingDocument()
	res, err := cmd.Run(ctx, prompter, doc)
	switch res {
	case command.Cancel:
		fmt.Fprintln(os.Stderr, "Cancelled.")
		return exitCancel
	case command.Failure:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	rec := doc.Finish()
	if rec.Lines() == 0 {
		fmt.Println("No points selected, nothing to export.")
		return 0
	}

	if err := export(rec, cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	p := message.NewPrinter(language.English)
	p.Printf("%d snowflakes, %d lines written to %s (%s)\n",
		rec.Shapes(), rec.Lines(), cfg.Output.Path, cfg.Output.Format)
	return 0
}

// applyFlags overlays the flags that were set explicitly on cfg.
func applyFlags(cfg *config.Snowflake, fs *flag.FlagSet, points string, depth int, radius float64,
	format, output string, width, height int, parallel bool) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["points"] {
		pts, err := command.ParsePoints(points)
		if err != nil {
			return err
		}
		cfg.Anchors = cfg.Anchors[:0]
		for _, p := range pts {
			cfg.Anchors = append(cfg.Anchors, config.Anchor{X: p.X, Y: p.Y, Z: p.Z})
		}
	}
	if set["depth"] {
		cfg.Depth = depth
	}
	if set["radius"] {
		cfg.Radius = radius
	}
	if set["format"] {
		cfg.Output.Format = format
	}
	if set["output"] {
		cfg.Output.Path = output
	}
	if set["width"] {
		cfg.Output.Width = width
	}
	if set["height"] {
		cfg.Output.Height = height
	}
	if set["parallel"] {
		cfg.Parallel = parallel
	}
	if len(cfg.Anchors) == 0 && !set["interactive"] {
		return errors.New("no anchor points: use -points, the config file or -interactive")
	}
	return nil
}

// export writes rec with the configured backend. The raster backend is
// sized from the config; the others use their defaults.
func export(rec *recording.Recording, out config.OutputConfig) error {
	if out.Format != "raster" {
		return recording.Export(rec, out.Format, out.Path)
	}

	b := raster.NewBackend()
	b.Width, b.Height = out.Width, out.Height
	b.LineWidth = out.Stroke
	if err := rec.Playback(b); err != nil {
		return err
	}
	return b.SaveToFile(out.Path)
}
