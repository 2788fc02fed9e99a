package temporal

import (
	"slices"
	"testing"
)

func TestAddVertex(t *testing.T) {
	g := New()

	if !g.AddVertex(0) {
		t.Error("AddVertex(0) = false, want true for new vertex")
	}
	if !g.AddVertex(1) {
		t.Error("AddVertex(1) = false, want true for new vertex")
	}
	if g.AddVertex(0) {
		t.Error("AddVertex(0) = true, want false for existing vertex")
	}
	if g.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", g.VertexCount())
	}
}

func TestAddEdgeCreatesVertices(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)

	if !g.HasVertex(0) || !g.HasVertex(1) {
		t.Error("AddEdge should create both endpoints")
	}
	if g.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", g.VertexCount())
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 1, 5)

	times, ok := g.EdgeTimes(0, 1)
	if !ok {
		t.Fatal("EdgeTimes(0, 1) not found")
	}
	if len(times) != 1 {
		t.Errorf("label set size = %d, want 1 after duplicate insert", len(times))
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestEdgeUndirected(t *testing.T) {
	g := New()
	g.AddEdge(1, 0, 5)
	g.AddEdge(0, 1, 10)

	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1 (normalized key)", g.EdgeCount())
	}

	fwd, _ := g.EdgeTimes(0, 1)
	rev, _ := g.EdgeTimes(1, 0)
	if !slices.Equal(fwd, rev) {
		t.Errorf("EdgeTimes(0,1) = %v, EdgeTimes(1,0) = %v, want equal", fwd, rev)
	}
	if !slices.Equal(fwd, []TimeStep{5, 10}) {
		t.Errorf("EdgeTimes(0,1) = %v, want [5 10]", fwd)
	}

	if !g.HasEdgeAt(1, 0, 10) {
		t.Error("HasEdgeAt(1, 0, 10) = false, want true")
	}
}

func TestEdgeTimeRange(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 1, 3)
	g.AddEdge(0, 1, 12)

	tmin, tmax, ok := g.EdgeTimeRange(1, 0)
	if !ok {
		t.Fatal("EdgeTimeRange(1, 0) not found")
	}
	if tmin != 3 || tmax != 12 {
		t.Errorf("EdgeTimeRange = (%d, %d), want (3, 12)", tmin, tmax)
	}

	if _, _, ok := g.EdgeTimeRange(0, 2); ok {
		t.Error("EdgeTimeRange on absent edge should report not found")
	}
}

func TestRemoveEdgeTimeAutoCleanup(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)

	if !g.RemoveEdgeTime(0, 1, 5) {
		t.Fatal("RemoveEdgeTime(0, 1, 5) = false, want true")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0 after removing last label", g.EdgeCount())
	}
	if _, ok := g.EdgeTimes(0, 1); ok {
		t.Error("EdgeTimes should report not found after auto-cleanup")
	}
}

func TestRemoveEdgeTimeKeepsRemaining(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 1, 10)

	if !g.RemoveEdgeTime(1, 0, 5) {
		t.Fatal("RemoveEdgeTime(1, 0, 5) = false, want true")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.HasEdgeAt(0, 1, 5) {
		t.Error("label 5 should be gone")
	}
	if !g.HasEdgeAt(0, 1, 10) {
		t.Error("label 10 should remain")
	}
}

func TestRemoveEdgeTimeAbsent(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)

	if g.RemoveEdgeTime(0, 1, 7) {
		t.Error("RemoveEdgeTime with absent label should return false")
	}
	if g.RemoveEdgeTime(0, 2, 5) {
		t.Error("RemoveEdgeTime on absent edge should return false")
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 1, 10)

	if !g.RemoveEdge(1, 0) {
		t.Error("RemoveEdge(1, 0) = false, want true")
	}
	if g.RemoveEdge(0, 1) {
		t.Error("RemoveEdge on absent edge should return false")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestNeighborsAt(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 2, 5)
	g.AddEdge(0, 3, 10)

	if got := g.NeighborsAt(0, 5); !slices.Equal(got, []VertexID{1, 2}) {
		t.Errorf("NeighborsAt(0, 5) = %v, want [1 2]", got)
	}
	if got := g.NeighborsAt(0, 10); !slices.Equal(got, []VertexID{3}) {
		t.Errorf("NeighborsAt(0, 10) = %v, want [3]", got)
	}
	if got := g.NeighborsAt(0, 99); len(got) != 0 {
		t.Errorf("NeighborsAt(0, 99) = %v, want empty", got)
	}
}

func TestAllNeighbors(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 3, 10)
	g.AddEdge(2, 0, 7)
	g.AddVertex(9)

	if got := g.AllNeighbors(0); !slices.Equal(got, []VertexID{1, 2, 3}) {
		t.Errorf("AllNeighbors(0) = %v, want [1 2 3]", got)
	}
	if got := g.AllNeighbors(9); len(got) != 0 {
		t.Errorf("AllNeighbors(9) = %v, want empty", got)
	}
}

func TestEdgesAt(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 3, 10)

	if got := g.EdgesAt(5); len(got) != 2 {
		t.Errorf("EdgesAt(5) = %v, want 2 edges", got)
	}
	if got := g.EdgesAt(100); len(got) != 0 {
		t.Errorf("EdgesAt(100) = %v, want empty", got)
	}
}

func TestVerticesSorted(t *testing.T) {
	g := New()
	g.AddVertex(4)
	g.AddVertex(1)
	g.AddEdge(3, 0, 1)

	if got := g.Vertices(); !slices.Equal(got, []VertexID{0, 1, 3, 4}) {
		t.Errorf("Vertices() = %v, want [0 1 3 4]", got)
	}
}

func TestClone(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 7)

	c := g.Clone()
	c.AddEdge(0, 1, 99)
	c.RemoveEdge(1, 2)

	if g.HasEdgeAt(0, 1, 99) {
		t.Error("mutating the clone should not affect the original")
	}
	if _, ok := g.EdgeTimes(1, 2); !ok {
		t.Error("original edge (1,2) should survive clone mutation")
	}
}
