package temporal

import (
	"slices"
	"testing"
)

func TestFindWrappableEdgeBasic(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 5)

	key, ok := g.FindWrappableEdge()
	if !ok {
		t.Fatal("FindWrappableEdge() found nothing, want {0,1}")
	}
	if key != NewEdgeKey(0, 1) {
		t.Errorf("FindWrappableEdge() = %v, want {0,1}", key)
	}
}

func TestFindWrappableEdgeBoundaryLabelsExcluded(t *testing.T) {
	// Incident labels sit exactly on tmin and tmax; strict bounds exclude both.
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 0)
	g.AddEdge(0, 3, 10)

	if key, ok := g.FindWrappableEdge(); ok {
		t.Errorf("FindWrappableEdge() = %v, want none (boundary labels only)", key)
	}
}

func TestFindWrappableEdgeSingleLabelSkipped(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 4)

	if key, ok := g.FindWrappableEdge(); ok {
		t.Errorf("FindWrappableEdge() = %v, want none (no edge has 2 labels)", key)
	}
}

func TestFindWrappableEdgeNonIncidentIgnored(t *testing.T) {
	// Label 5 is in range but the carrying edge shares no endpoint with {0,1}.
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(2, 3, 5)

	if key, ok := g.FindWrappableEdge(); ok {
		t.Errorf("FindWrappableEdge() = %v, want none (no incident edge)", key)
	}
}

func TestFindWrappableEdgeDeterministicOrder(t *testing.T) {
	// Both {0,1} and {2,3} are wrappable; the ascending key scan must pick {0,1}.
	g := New()
	g.AddEdge(2, 3, 0)
	g.AddEdge(2, 3, 10)
	g.AddEdge(3, 4, 5)
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 5)

	for range 50 {
		key, ok := g.FindWrappableEdge()
		if !ok || key != NewEdgeKey(0, 1) {
			t.Fatalf("FindWrappableEdge() = %v ok=%v, want {0,1} on every run", key, ok)
		}
	}
}

func TestFindMinIncidentInRange(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 5)

	got, ok := g.FindMinIncidentInRange(0, 1)
	if !ok {
		t.Fatal("FindMinIncidentInRange(0, 1) found nothing")
	}
	want := IncidentLabel{Neighbor: 2, Common: 1, T: 5}
	if got != want {
		t.Errorf("FindMinIncidentInRange(0, 1) = %+v, want %+v", got, want)
	}
}

func TestFindMinIncidentInRangePicksMinimum(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 7)
	g.AddEdge(0, 3, 4)
	g.AddEdge(1, 4, 9)

	got, ok := g.FindMinIncidentInRange(0, 1)
	if !ok {
		t.Fatal("FindMinIncidentInRange(0, 1) found nothing")
	}
	want := IncidentLabel{Neighbor: 3, Common: 0, T: 4}
	if got != want {
		t.Errorf("FindMinIncidentInRange(0, 1) = %+v, want %+v", got, want)
	}
}

func TestFindMinIncidentInRangeTieBreak(t *testing.T) {
	// Two candidates with t=5: ({0,2}, common 0) and ({1,3}, common 1).
	// Ascending (common, neighbor) order picks common vertex 0.
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 3, 5)

	got, ok := g.FindMinIncidentInRange(0, 1)
	if !ok {
		t.Fatal("FindMinIncidentInRange(0, 1) found nothing")
	}
	want := IncidentLabel{Neighbor: 2, Common: 0, T: 5}
	if got != want {
		t.Errorf("FindMinIncidentInRange(0, 1) = %+v, want %+v", got, want)
	}
}

func TestFindMinIncidentInRangeStrictBounds(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 0)
	g.AddEdge(1, 3, 10)

	if got, ok := g.FindMinIncidentInRange(0, 1); ok {
		t.Errorf("FindMinIncidentInRange(0, 1) = %+v, want none (boundary labels)", got)
	}
}

func TestFindMinIncidentInRangeAbsentEdge(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 5)

	if _, ok := g.FindMinIncidentInRange(0, 2); ok {
		t.Error("FindMinIncidentInRange on absent edge should find nothing")
	}
	if _, ok := g.FindMinIncidentInRange(0, 1); ok {
		t.Error("FindMinIncidentInRange on single-label edge should find nothing")
	}
}

func TestTransferLabelsThroughEdge(t *testing.T) {
	// Star around pivot 0 with anchor 1: labels 5, 10, 15 all sit strictly
	// inside (0, 20) and move onto edges at the anchor.
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 20)
	g.AddEdge(0, 2, 5)
	g.AddEdge(0, 3, 10)
	g.AddEdge(0, 4, 15)

	moved := g.TransferLabelsThroughEdge(1, 0)
	if moved != 3 {
		t.Fatalf("TransferLabelsThroughEdge(1, 0) = %d, want 3", moved)
	}

	for _, tc := range []struct {
		u, v VertexID
		t    TimeStep
	}{{2, 1, 5}, {3, 1, 10}, {4, 1, 15}} {
		if !g.HasEdgeAt(tc.u, tc.v, tc.t) {
			t.Errorf("edge {%d,%d} should carry label %d after transfer", tc.u, tc.v, tc.t)
		}
	}
	for _, v := range []VertexID{2, 3, 4} {
		if _, ok := g.EdgeTimes(0, v); ok {
			t.Errorf("edge {0,%d} should be cleaned up after transfer", v)
		}
	}
}

func TestTransferNeverTouchesAnchorEdge(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 20)
	g.AddEdge(0, 2, 5)

	g.TransferLabelsThroughEdge(1, 0)

	times, ok := g.EdgeTimes(0, 1)
	if !ok {
		t.Fatal("anchor edge {0,1} disappeared")
	}
	if !slices.Equal(times, []TimeStep{0, 20}) {
		t.Errorf("anchor edge labels = %v, want [0 20]", times)
	}
}

func TestTransferMergesIntoExistingEdge(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 20)
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 2, 7) // destination already exists

	moved := g.TransferLabelsThroughEdge(1, 0)
	if moved < 1 {
		t.Fatalf("TransferLabelsThroughEdge(1, 0) = %d, want at least 1", moved)
	}

	times, ok := g.EdgeTimes(1, 2)
	if !ok {
		t.Fatal("destination edge {1,2} missing")
	}
	if !slices.Contains(times, TimeStep(5)) || !slices.Contains(times, TimeStep(7)) {
		t.Errorf("destination labels = %v, want union containing 5 and 7", times)
	}
}

func TestTransferStrictRangeExclusion(t *testing.T) {
	g := New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 20)
	g.AddEdge(0, 2, 0)  // equals tmin
	g.AddEdge(0, 3, 20) // equals tmax

	if moved := g.TransferLabelsThroughEdge(1, 0); moved != 0 {
		t.Errorf("TransferLabelsThroughEdge(1, 0) = %d, want 0 (boundary labels)", moved)
	}
	if !g.HasEdgeAt(0, 2, 0) || !g.HasEdgeAt(0, 3, 20) {
		t.Error("boundary labels must stay on their edges")
	}
}

func TestTransferAbsentAnchorEdge(t *testing.T) {
	g := New()
	g.AddEdge(0, 2, 5)

	if moved := g.TransferLabelsThroughEdge(1, 0); moved != 0 {
		t.Errorf("TransferLabelsThroughEdge on absent edge = %d, want 0", moved)
	}
	if !g.HasEdgeAt(0, 2, 5) {
		t.Error("graph must be unchanged when the anchor edge is absent")
	}
}
