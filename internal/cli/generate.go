package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalkit/tgmin/pkg/enumerate"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	vertices   int    // simple graph vertex count
	baseEdges  int    // simple graph edge count
	totalEdges int    // edge count with multiplicity
	output     string // multigraph output file
}

// newGenerateCmd creates the generate command, a thin front for nauty's
// geng and multig tools.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Enumerate candidate multigraphs with nauty",
		Long: `Generate runs geng to enumerate connected simple graphs with the given
vertex and edge counts, then multig to distribute edge multiplicities up to
the total edge count. The output feeds into "tgmin convert".

Requires nauty (geng, multig) on PATH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", 3, "number of vertices")
	cmd.Flags().IntVarP(&opts.baseEdges, "edges", "m", 2, "number of simple edges")
	cmd.Flags().IntVarP(&opts.totalEdges, "total-edges", "M", 3, "total edges with multiplicity")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "multigraphs.txt", "output file")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Debug("generating multigraphs",
		"vertices", opts.vertices, "edges", opts.baseEdges, "total", opts.totalEdges)

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Running geng | multig...")
	spinner.Start()

	n, err := enumerate.GenerateMultigraphs(ctx, opts.vertices, opts.baseEdges, opts.totalEdges, opts.output)

	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Enumerated %d multigraphs", n))
	printSuccess("Generated %d multigraphs", n)
	printFile(opts.output)
	printDetail("n=%d m=%d M=%d", opts.vertices, opts.baseEdges, opts.totalEdges)
	return nil
}
