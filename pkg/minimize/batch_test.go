package minimize

import (
	"context"
	"testing"

	"github.com/temporalkit/tgmin/pkg/cache"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

func TestRunBatchPreservesOrder(t *testing.T) {
	graphs := []*temporal.Graph{cycleGraph(), stallGraph(), cycleGraph(), stallGraph()}
	items := RunBatch(context.Background(), graphs, BatchOptions{Config: DefaultConfig(), Workers: 3})

	if len(items) != len(graphs) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(graphs))
	}
	wantOutcomes := []Outcome{OutcomeCycleDetected, OutcomeUselessLabel, OutcomeCycleDetected, OutcomeUselessLabel}
	for i, item := range items {
		if item.Index != i {
			t.Errorf("items[%d].Index = %d, want %d", i, item.Index, i)
		}
		if item.Result.Outcome != wantOutcomes[i] {
			t.Errorf("items[%d].Outcome = %q, want %q", i, item.Result.Outcome, wantOutcomes[i])
		}
		if item.RunID == "" {
			t.Errorf("items[%d].RunID is empty", i)
		}
	}
}

func TestRunBatchUniqueRunIDs(t *testing.T) {
	graphs := []*temporal.Graph{stallGraph(), stallGraph(), stallGraph()}
	items := RunBatch(context.Background(), graphs, BatchOptions{Config: DefaultConfig()})

	ids := make(map[string]struct{})
	for _, item := range items {
		if _, dup := ids[item.RunID]; dup {
			t.Fatalf("duplicate RunID %q", item.RunID)
		}
		ids[item.RunID] = struct{}{}
	}
}

func TestRunBatchCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	opts := BatchOptions{Config: DefaultConfig(), Cache: c, CacheBackend: "file"}

	first := RunBatch(context.Background(), []*temporal.Graph{cycleGraph()}, opts)
	if first[0].Cached {
		t.Fatal("first run should not be served from the cache")
	}

	second := RunBatch(context.Background(), []*temporal.Graph{cycleGraph()}, opts)
	if !second[0].Cached {
		t.Fatal("second run of an identical graph should hit the cache")
	}
	if second[0].Result.Outcome != first[0].Result.Outcome {
		t.Errorf("cached Outcome = %q, want %q", second[0].Result.Outcome, first[0].Result.Outcome)
	}
	if second[0].Result.IsMinimal != first[0].Result.IsMinimal {
		t.Error("cached IsMinimal disagrees with computed verdict")
	}
}

func TestRunBatchCacheKeyedByConfig(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	opts := BatchOptions{Config: DefaultConfig(), Cache: c}
	RunBatch(context.Background(), []*temporal.Graph{cycleGraph()}, opts)

	// Same graph under a different cap must not reuse the verdict.
	capped := BatchOptions{Config: DefaultConfig().WithMaxIterations(2), Cache: c}
	items := RunBatch(context.Background(), []*temporal.Graph{cycleGraph()}, capped)
	if items[0].Cached {
		t.Error("verdict cached under a different iteration cap was reused")
	}
	if items[0].Result.Outcome != OutcomeMaxIterations {
		t.Errorf("Outcome = %q, want %q", items[0].Result.Outcome, OutcomeMaxIterations)
	}
}

func TestRunBatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	graphs := []*temporal.Graph{stallGraph(), stallGraph()}
	items := RunBatch(ctx, graphs, BatchOptions{Config: DefaultConfig(), Workers: 1})

	if len(items) != len(graphs) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(graphs))
	}
	for i, item := range items {
		if item.RunID != "" {
			t.Errorf("items[%d] ran despite canceled context", i)
		}
	}
}
