package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temporalkit/tgmin/pkg/render"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (or base path for timelines)
	format   string // output format: dot, svg, png
	index    int    // graph index when the input is a corpus
	snapshot int64  // render the snapshot at this label
	timeline bool   // render one panel per distinct label
}

// newRenderCmd creates the render command for visualizing graphs.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatDOT, snapshot: -1}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a temporal graph to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to input name with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().IntVar(&opts.index, "index", 0, "graph index when the input is a corpus")
	cmd.Flags().Int64Var(&opts.snapshot, "at", -1, "render only the snapshot at this label")
	cmd.Flags().BoolVar(&opts.timeline, "timeline", false, "render one panel per distinct label")

	return cmd
}

var validRenderFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

func validateRenderFormat(format string) error {
	if !validRenderFormats[format] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", format)
	}
	return nil
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	graphs, err := loadGraphs(input)
	if err != nil {
		return err
	}
	if opts.index < 0 || opts.index >= len(graphs) {
		return fmt.Errorf("index %d out of range, corpus has %d graphs", opts.index, len(graphs))
	}
	g := graphs[opts.index]
	logger.Debug("rendering graph", "index", opts.index,
		"vertices", g.VertexCount(), "edges", g.EdgeCount())

	if opts.timeline {
		return renderTimeline(ctx, g, input, opts)
	}

	dot := render.ToDOT(g)
	if opts.snapshot >= 0 {
		dot = render.ToDOTAt(g, temporal.TimeStep(opts.snapshot))
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}

	data := []byte(dot)
	switch opts.format {
	case formatSVG:
		if data, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
	case formatPNG:
		if data, err = render.RenderPNG(ctx, dot); err != nil {
			return err
		}
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered graph #%d", opts.index)
	printFile(output)
	return nil
}

func renderTimeline(ctx context.Context, g *temporal.Graph, input string, opts *renderOpts) error {
	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	dir := filepath.Dir(base)
	prefix := filepath.Base(base)

	var (
		paths []string
		err   error
	)
	if opts.format == formatPNG {
		paths, err = render.WriteTimelinePNG(ctx, g, dir, prefix)
	} else {
		paths, err = render.WriteTimeline(g, dir, prefix)
	}
	if err != nil {
		return err
	}

	printSuccess("Rendered %d timeline panels", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
