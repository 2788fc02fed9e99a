package temporal

import (
	"strconv"
	"strings"
)

// EdgeLabels pairs a normalized edge key with that edge's sorted timestamps.
type EdgeLabels struct {
	Key   EdgeKey
	Times []TimeStep
}

// State is an order-independent canonical snapshot of a graph's edge and
// label content: edges sorted ascending by normalized key, timestamps sorted
// ascending within each edge. Two graphs built from the same multiset of
// (u, v, t) insertions produce equal states regardless of insertion order or
// endpoint order.
//
// States are immutable once computed. They exist to serve as comparison and
// memoization keys - compute one with [Graph.State], use it, discard it.
type State struct {
	edges []EdgeLabels
}

// State computes the canonical snapshot of the graph's current edge content.
func (g *Graph) State() State {
	edges := make([]EdgeLabels, 0, len(g.edges))
	for _, key := range g.EdgeKeys() {
		times, _ := g.EdgeTimes(key.U(), key.V())
		edges = append(edges, EdgeLabels{Key: key, Times: times})
	}
	return State{edges: edges}
}

// Edges returns the canonical (edge key, sorted timestamps) sequence.
// The returned slice must not be modified.
func (s State) Edges() []EdgeLabels { return s.edges }

// Key encodes the state as a string usable as a map key. Equal states encode
// to equal keys and distinct states to distinct keys: every component is
// written with an unambiguous separator, so no two edge/label layouts
// collide.
func (s State) Key() string {
	var b strings.Builder
	for _, e := range s.edges {
		b.WriteString(strconv.Itoa(e.Key.U()))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e.Key.V()))
		b.WriteByte(':')
		for i, t := range e.Times {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(t, 10))
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Equal reports whether two states describe identical edge and label content.
func (s State) Equal(other State) bool {
	if len(s.edges) != len(other.edges) {
		return false
	}
	for i, e := range s.edges {
		o := other.edges[i]
		if e.Key != o.Key || len(e.Times) != len(o.Times) {
			return false
		}
		for j, t := range e.Times {
			if t != o.Times[j] {
				return false
			}
		}
	}
	return true
}

// String renders the state in the same layout as Key, which doubles as a
// compact human-readable dump for traces.
func (s State) String() string { return s.Key() }
