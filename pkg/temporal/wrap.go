package temporal

// This file implements the edge-query kernels of the label rewriting system:
// wrappable-edge detection, minimum-incident-in-range search, and label
// transfer. All range checks use strict bounds - a label equal to tmin or
// tmax of the anchor edge is never a candidate.

// IncidentLabel is a candidate produced by FindMinIncidentInRange: an edge
// {Common, Neighbor} incident to the anchor edge, carrying timestamp T
// strictly inside the anchor's label range.
type IncidentLabel struct {
	Neighbor VertexID // endpoint not shared with the anchor edge
	Common   VertexID // shared endpoint, one of the anchor's endpoints
	T        TimeStep
}

// FindWrappableEdge returns the first wrappable edge in ascending normalized
// key order, or false if none exists. An edge {u,v} is wrappable when it
// carries at least two distinct labels and some other edge sharing exactly
// one endpoint with it carries a label strictly between the edge's minimum
// and maximum label.
//
// The ascending key scan makes repeated runs over the same graph select the
// same edge, so move sequences are reproducible.
func (g *Graph) FindWrappableEdge() (EdgeKey, bool) {
	for _, key := range g.EdgeKeys() {
		times := g.edges[key]
		if len(times) < 2 {
			continue
		}
		tmin, tmax, _ := g.EdgeTimeRange(key.U(), key.V())
		if tmin >= tmax {
			continue
		}
		if g.hasIncidentLabelInRange(key, tmin, tmax) {
			return key, true
		}
	}
	return EdgeKey{}, false
}

// hasIncidentLabelInRange reports whether any edge incident to anchor (but
// not anchor itself) carries a label in the open interval (tmin, tmax).
func (g *Graph) hasIncidentLabelInRange(anchor EdgeKey, tmin, tmax TimeStep) bool {
	for key, times := range g.edges {
		if key == anchor || !key.incidentTo(anchor) {
			continue
		}
		for t := range times {
			if t > tmin && t < tmax {
				return true
			}
		}
	}
	return false
}

// FindMinIncidentInRange collects every label t of every edge incident to
// {u,v} (excluding {u,v} itself) with tmin < t < tmax, where (tmin, tmax) is
// the label range of {u,v}, and returns the candidate with the smallest t.
// Ties are broken by ascending (Common, Neighbor), so the result is
// deterministic. Returns false if {u,v} does not exist, has fewer than two
// labels, or no incident label falls inside the range.
//
// Callers are expected to invoke this only after FindWrappableEdge reported
// the same edge as wrappable; the candidate set is then non-empty.
func (g *Graph) FindMinIncidentInRange(u, v VertexID) (IncidentLabel, bool) {
	anchor := NewEdgeKey(u, v)
	times, ok := g.edges[anchor]
	if !ok || len(times) < 2 {
		return IncidentLabel{}, false
	}
	tmin, tmax, _ := g.EdgeTimeRange(u, v)
	if tmin >= tmax {
		return IncidentLabel{}, false
	}

	var best IncidentLabel
	found := false
	for key, edgeTimes := range g.edges {
		if key == anchor {
			continue
		}
		common, neighbor, ok := key.splitAgainst(anchor)
		if !ok {
			continue
		}
		for t := range edgeTimes {
			if t <= tmin || t >= tmax {
				continue
			}
			cand := IncidentLabel{Neighbor: neighbor, Common: common, T: t}
			if !found || lessIncident(cand, best) {
				best = cand
				found = true
			}
		}
	}
	return best, found
}

// TransferLabelsThroughEdge relocates in-range labels from pivot's other
// edges onto the corresponding edges at anchor. With (tmin, tmax) the label
// range of edge {anchor, pivot}, every label of an edge {pivot, w} (w other
// than anchor) strictly inside (tmin, tmax) is removed from {pivot, w} and
// added to {w, anchor}, creating or merging into that edge as needed.
// Emptied edges are cleaned up by RemoveEdgeTime.
//
// Edge {anchor, pivot} itself is never altered. Returns the number of labels
// moved; if {anchor, pivot} does not exist this is a no-op returning 0.
func (g *Graph) TransferLabelsThroughEdge(anchor, pivot VertexID) int {
	tmin, tmax, ok := g.EdgeTimeRange(anchor, pivot)
	if !ok {
		return 0
	}

	moved := 0
	for _, w := range g.AllNeighbors(pivot) {
		if w == anchor {
			continue
		}
		inRange := g.edgeTimesInRange(pivot, w, tmin, tmax)
		for _, t := range inRange {
			g.RemoveEdgeTime(pivot, w, t)
		}
		for _, t := range inRange {
			g.AddEdge(w, anchor, t)
		}
		moved += len(inRange)
	}
	return moved
}

// edgeTimesInRange returns the sorted labels of edge {u,v} strictly inside
// (tmin, tmax). Returns nil if the edge does not exist.
func (g *Graph) edgeTimesInRange(u, v VertexID, tmin, tmax TimeStep) []TimeStep {
	times, ok := g.EdgeTimes(u, v)
	if !ok {
		return nil
	}
	var in []TimeStep
	for _, t := range times {
		if t > tmin && t < tmax {
			in = append(in, t)
		}
	}
	return in
}

// incidentTo reports whether the edge shares at least one endpoint with
// other. The caller excludes the equal-key case separately.
func (k EdgeKey) incidentTo(other EdgeKey) bool {
	return k[0] == other[0] || k[0] == other[1] || k[1] == other[0] || k[1] == other[1]
}

// splitAgainst identifies which endpoint of the edge is shared with the
// anchor (common) and which is not (neighbor). Returns false when the edge
// is not incident to the anchor.
func (k EdgeKey) splitAgainst(anchor EdgeKey) (common, neighbor VertexID, ok bool) {
	if k[0] == anchor[0] || k[0] == anchor[1] {
		return k[0], k[1], true
	}
	if k[1] == anchor[0] || k[1] == anchor[1] {
		return k[1], k[0], true
	}
	return 0, 0, false
}

func lessIncident(a, b IncidentLabel) bool {
	if a.T != b.T {
		return a.T < b.T
	}
	if a.Common != b.Common {
		return a.Common < b.Common
	}
	return a.Neighbor < b.Neighbor
}
