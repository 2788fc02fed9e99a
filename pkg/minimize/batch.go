package minimize

import (
	"context"
	"encoding/json"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/temporalkit/tgmin/pkg/cache"
	"github.com/temporalkit/tgmin/pkg/observability"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

// BatchOptions configures a batch run over a corpus of independent graphs.
type BatchOptions struct {
	// Config is applied to every graph in the batch.
	Config Config

	// Workers bounds the number of concurrent minimizations. Zero means
	// GOMAXPROCS. Each graph is still minimized single-threaded; only
	// distinct graphs run in parallel.
	Workers int

	// Cache memoizes verdicts keyed by canonical state and config.
	// Nil disables memoization.
	Cache cache.Cache

	// CacheBackend names the cache backend for observability events.
	CacheBackend string

	// CacheTTL expires cached verdicts after this duration. Zero keeps
	// them forever.
	CacheTTL time.Duration

	// Logger receives per-graph progress. Nil discards it.
	Logger *log.Logger
}

// BatchItem is the verdict for one graph of a batch.
type BatchItem struct {
	// RunID uniquely identifies this run within the batch output.
	RunID string `json:"run_id"`

	// Index is the graph's position in the input corpus.
	Index int `json:"index"`

	// Result is the minimization verdict.
	Result Result `json:"result"`

	// Cached reports whether the verdict was served from the cache.
	Cached bool `json:"cached,omitempty"`
}

// RunBatch minimizes every graph of the corpus and returns one item per
// graph, in corpus order. Graphs are mutated in place (the minimizer owns
// each exclusively while its worker runs). The context cancels graphs not
// yet started; in-flight minimizations run to their verdict. Items for
// graphs skipped by cancellation stay zero-valued (empty RunID).
func RunBatch(ctx context.Context, graphs []*temporal.Graph, opts BatchOptions) []BatchItem {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	items := make([]BatchItem, len(graphs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				items[i] = runOne(ctx, graphs[i], i, opts, logger)
			}
		}()
	}

	for i := range graphs {
		select {
		case <-ctx.Done():
		case indexes <- i:
			continue
		}
		break
	}
	close(indexes)
	wg.Wait()

	return items
}

func runOne(ctx context.Context, g *temporal.Graph, index int, opts BatchOptions, logger *log.Logger) BatchItem {
	item := BatchItem{RunID: uuid.NewString(), Index: index}

	key := ""
	if opts.Cache != nil {
		key = cache.VerdictKey(g.State().Key(), opts.Config.MaxIterations, opts.Config.Unbounded)
		if data, hit, err := opts.Cache.Get(ctx, key); err != nil {
			logger.Warn("verdict cache read failed", "index", index, "err", err)
		} else if hit {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnHit(opts.CacheBackend)
				item.Result = cached
				item.Cached = true
				logger.Debug("verdict served from cache", "index", index, "run", item.RunID)
				return item
			}
		}
		observability.Cache().OnMiss(opts.CacheBackend)
	}

	item.Result = RunWithConfig(g, opts.Config)
	logger.Debug("graph minimized",
		"index", index, "run", item.RunID,
		"outcome", item.Result.Outcome, "minimal", item.Result.IsMinimal)

	if opts.Cache != nil && item.Result.Outcome != OutcomeFault {
		if data, err := json.Marshal(item.Result); err == nil {
			if err := opts.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
				logger.Warn("verdict cache write failed", "index", index, "err", err)
			} else {
				observability.Cache().OnSet(opts.CacheBackend, len(data))
			}
		}
	}

	return item
}
