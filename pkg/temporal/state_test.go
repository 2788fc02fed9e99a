package temporal

import "testing"

func TestStateInsertionOrderInvariance(t *testing.T) {
	insertions := [][3]int64{{0, 1, 5}, {0, 1, 10}, {1, 2, 3}, {2, 3, 8}}

	a := New()
	for _, in := range insertions {
		a.AddEdge(int(in[0]), int(in[1]), in[2])
	}

	// Same multiset, reversed order, swapped endpoints.
	b := New()
	for i := len(insertions) - 1; i >= 0; i-- {
		in := insertions[i]
		b.AddEdge(int(in[1]), int(in[0]), in[2])
	}

	if !a.State().Equal(b.State()) {
		t.Errorf("states differ:\n a = %s\n b = %s", a.State(), b.State())
	}
	if a.State().Key() != b.State().Key() {
		t.Error("state keys differ for permuted insertions")
	}
}

func TestStateDistinguishesContent(t *testing.T) {
	a := New()
	a.AddEdge(0, 1, 5)

	b := New()
	b.AddEdge(0, 1, 6)

	if a.State().Equal(b.State()) {
		t.Error("states with different labels should not be equal")
	}
	if a.State().Key() == b.State().Key() {
		t.Error("state keys should differ for different labels")
	}

	c := New()
	c.AddEdge(0, 2, 5)
	if a.State().Key() == c.State().Key() {
		t.Error("state keys should differ for different edges")
	}
}

func TestStateIgnoresIsolatedVertices(t *testing.T) {
	a := New()
	a.AddEdge(0, 1, 5)

	b := New()
	b.AddEdge(0, 1, 5)
	b.AddVertex(7)

	// State captures edge/label content only; the vertex set is not part of
	// the memoization key.
	if !a.State().Equal(b.State()) {
		t.Error("isolated vertices should not affect the canonical state")
	}
}

func TestStateEdgesSorted(t *testing.T) {
	g := New()
	g.AddEdge(2, 3, 9)
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 1, 2)

	edges := g.State().Edges()
	if len(edges) != 2 {
		t.Fatalf("len(Edges()) = %d, want 2", len(edges))
	}
	if edges[0].Key != NewEdgeKey(0, 1) || edges[1].Key != NewEdgeKey(2, 3) {
		t.Errorf("edges not sorted by key: %v", edges)
	}
	if edges[0].Times[0] != 2 || edges[0].Times[1] != 10 {
		t.Errorf("times not sorted: %v", edges[0].Times)
	}
}

func TestStateKeyUnambiguous(t *testing.T) {
	// {1,2}:[3] vs {1,23}:[] style collisions must not happen; separators
	// keep vertex and label boundaries distinct.
	a := New()
	a.AddEdge(1, 2, 34)

	b := New()
	b.AddEdge(1, 23, 4)

	if a.State().Key() == b.State().Key() {
		t.Errorf("keys collide: %q", a.State().Key())
	}
}
