package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temporalkit/tgmin/pkg/cache"
	"github.com/temporalkit/tgmin/pkg/enumerate"
	"github.com/temporalkit/tgmin/pkg/graphio"
	"github.com/temporalkit/tgmin/pkg/minimize"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

// minimizeOpts holds the command-line flags for the minimize command.
type minimizeOpts struct {
	maxIterations int    // iteration cap per graph
	unbounded     bool   // disable the cap
	stats         bool   // include per-run statistics
	workers       int    // batch concurrency
	jsonOut       bool   // machine-readable output
	connectedOnly bool   // skip disconnected graphs
	noCache       bool   // bypass the verdict cache
	interactive   bool   // browse the corpus in a TUI
	output        string // write JSON results to a file
}

// newMinimizeCmd creates the minimize command. The input file is either a
// JSON graph (pkg/graphio format, .json extension) or a line-oriented
// corpus with one graph per line.
func newMinimizeCmd() *cobra.Command {
	var opts minimizeOpts

	cmd := &cobra.Command{
		Use:   "minimize [file]",
		Short: "Decide label minimality for graphs in a corpus",
		Long: `Minimize runs the wrap/transfer rewriting system on every graph of the
input and reports one of three verdicts per graph: minimal (the rewriting
revisited a canonical state), not minimal (a useless label was found), or
inconclusive (the iteration cap was hit first).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinimize(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", 0, "iteration cap per graph (default from config)")
	cmd.Flags().BoolVar(&opts.unbounded, "unbounded", false, "disable the iteration cap")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "include per-run statistics")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent minimizations (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.connectedOnly, "connected-only", false, "skip disconnected graphs")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the verdict cache")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the corpus interactively")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON results to a file")

	return cmd
}

func runMinimize(ctx context.Context, path string, opts *minimizeOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	graphs, err := loadGraphs(path)
	if err != nil {
		return err
	}
	if opts.connectedOnly {
		connected := graphs[:0]
		skipped := 0
		for _, g := range graphs {
			if g.IsConnected() {
				connected = append(connected, g)
			} else {
				skipped++
			}
		}
		graphs = connected
		if skipped > 0 {
			logger.Debug("skipped disconnected graphs", "count", skipped)
		}
	}
	if len(graphs) == 0 {
		printWarning("No graphs to minimize")
		return nil
	}

	runCfg := minimize.DefaultConfig()
	if cfg.Minimize.MaxIterations > 0 {
		runCfg = runCfg.WithMaxIterations(cfg.Minimize.MaxIterations)
	}
	if opts.maxIterations > 0 {
		runCfg = runCfg.WithMaxIterations(opts.maxIterations)
	}
	if opts.unbounded || cfg.Minimize.Unbounded {
		runCfg = runCfg.WithUnboundedIterations()
	}
	if opts.stats || cfg.Minimize.Stats {
		runCfg = runCfg.WithStats()
	}
	runCfg = runCfg.WithLogger(logger)

	var verdictCache cache.Cache
	backend := "none"
	if !opts.noCache {
		verdictCache, backend = buildCache(ctx, cfg)
		defer verdictCache.Close()
	}

	if opts.interactive {
		return runCorpusBrowser(graphs, runCfg)
	}

	workers := opts.workers
	if workers == 0 {
		workers = cfg.Minimize.Workers
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Minimizing %d graphs...", len(graphs)))
	spinner.Start()

	items := minimize.RunBatch(ctx, graphs, minimize.BatchOptions{
		Config:       runCfg,
		Workers:      workers,
		Cache:        verdictCache,
		CacheBackend: backend,
		CacheTTL:     cfg.CacheTTL(),
		Logger:       logger,
	})

	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Minimized %d graphs", len(items)))

	if opts.jsonOut || opts.output != "" {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		if opts.output != "" {
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			printFile(opts.output)
		}
		if opts.jsonOut {
			fmt.Println(string(data))
		}
		return nil
	}

	minimal, inconclusive := 0, 0
	for _, item := range items {
		if item.Result.IsMinimal {
			minimal++
		}
		if item.Result.Outcome == minimize.OutcomeMaxIterations {
			inconclusive++
		}
		printVerdict(item.Index, string(item.Result.Outcome),
			item.Result.IsMinimal, item.Result.Outcome == minimize.OutcomeMaxIterations, item.Cached)
	}
	printCorpusStats(len(items), minimal, inconclusive)

	return nil
}

// loadGraphs reads the input as a JSON graph when it has a .json extension,
// and as a line-oriented corpus otherwise.
func loadGraphs(path string) ([]*temporal.Graph, error) {
	if strings.HasSuffix(path, ".json") {
		g, err := graphio.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return []*temporal.Graph{g}, nil
	}
	return enumerate.ReadGraphsFile(path)
}
