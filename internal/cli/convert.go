package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalkit/tgmin/pkg/enumerate"
)

// newConvertCmd creates the convert command: multigraph lines in, temporal
// corpus lines out.
func newConvertCmd() *cobra.Command {
	var (
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Expand multigraphs into a temporal corpus",
		Long: `Convert reads multig output (one multigraph per line) and writes every
assignment of the labels 1..M to its edge slots as a temporal corpus line,
where M is the total edge count with multiplicity. A multigraph with M edge
slots expands to M! corpus lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], output, workers)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "corpus.txt", "output corpus file")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent expansions (default GOMAXPROCS)")

	return cmd
}

func runConvert(cmd *cobra.Command, input, output string, workers int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinner(ctx, "Expanding multigraphs...")
	spinner.Start()

	n, err := enumerate.ExpandMultigraphsFile(ctx, input, output, workers)

	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("expand %s: %w", input, err)
	}

	prog.done(fmt.Sprintf("Generated %d temporal graphs", n))
	printSuccess("Expanded %s", input)
	printFile(output)
	printDetail("%d corpus lines", n)
	return nil
}
