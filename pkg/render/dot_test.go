package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temporalkit/tgmin/pkg/temporal"
)

func sample() *temporal.Graph {
	g := temporal.New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 5)
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample())

	if !strings.HasPrefix(dot, "strict graph temporal_graph {") {
		t.Errorf("ToDOT should emit an undirected strict graph, got %q", dot[:40])
	}
	if !strings.Contains(dot, `0 -- 1 [label="0, 10"]`) {
		t.Errorf("missing labeled edge 0--1:\n%s", dot)
	}
	if !strings.Contains(dot, `1 -- 2 [label="5"]`) {
		t.Errorf("missing labeled edge 1--2:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected DOT must not contain directed edges")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	want := ToDOT(sample())
	for range 20 {
		if got := ToDOT(sample()); got != want {
			t.Fatal("ToDOT output should be deterministic")
		}
	}
}

func TestToDOTCollapsesLongLabelSets(t *testing.T) {
	g := temporal.New()
	for i := range 8 {
		g.AddEdge(0, 1, temporal.TimeStep(i))
	}

	dot := ToDOT(g)
	if !strings.Contains(dot, `[label="0..7 (8 times)"]`) {
		t.Errorf("long label set should collapse to a range summary:\n%s", dot)
	}
}

func TestToDOTAt(t *testing.T) {
	dot := ToDOTAt(sample(), 5)

	if !strings.Contains(dot, "1 -- 2;") {
		t.Errorf("snapshot at 5 missing active edge:\n%s", dot)
	}
	if strings.Contains(dot, "0 -- 1") {
		t.Errorf("snapshot at 5 should not contain inactive edge:\n%s", dot)
	}
	// All vertices appear even when inactive.
	if !strings.Contains(dot, "  0;") {
		t.Errorf("snapshot should list every vertex:\n%s", dot)
	}
}

func TestTimeline(t *testing.T) {
	times := Timeline(sample())
	want := []temporal.TimeStep{0, 5, 10}
	if len(times) != len(want) {
		t.Fatalf("Timeline() = %v, want %v", times, want)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("Timeline() = %v, want %v", times, want)
		}
	}

	if got := Timeline(temporal.New()); len(got) != 0 {
		t.Errorf("Timeline of empty graph = %v, want empty", got)
	}
}

func TestWriteTimeline(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteTimeline(sample(), dir, "panel")
	if err != nil {
		t.Fatalf("WriteTimeline: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("wrote %d panels, want 3", len(paths))
	}

	want := filepath.Join(dir, "panel_5.dot")
	if paths[1] != want {
		t.Errorf("paths[1] = %q, want %q", paths[1], want)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read panel: %v", err)
	}
	if !strings.Contains(string(data), "1 -- 2;") {
		t.Errorf("panel_5.dot missing active edge:\n%s", data)
	}
}
