package temporal

import (
	"maps"
	"slices"
)

// VertexID identifies a vertex. Vertices carry no attributes beyond identity.
type VertexID = int

// TimeStep is a discrete timestamp (label) attached to an edge.
type TimeStep = int64

// EdgeKey is the normalized identifier of an undirected edge: the smaller
// endpoint always comes first. Use NewEdgeKey instead of constructing one
// directly.
type EdgeKey [2]VertexID

// NewEdgeKey normalizes an endpoint pair so that {u,v} and {v,u} map to the
// same key.
func NewEdgeKey(u, v VertexID) EdgeKey {
	if u <= v {
		return EdgeKey{u, v}
	}
	return EdgeKey{v, u}
}

// U returns the smaller endpoint of the edge.
func (k EdgeKey) U() VertexID { return k[0] }

// V returns the larger endpoint of the edge.
func (k EdgeKey) V() VertexID { return k[1] }

// Graph is an undirected temporal graph: each edge carries a non-empty set of
// distinct timestamps. Edges are keyed by their normalized endpoint pair, so
// all queries are symmetric in (u, v).
//
// An edge with an empty timestamp set does not exist - removal operations
// delete the edge record as soon as its last timestamp is gone, and the rest
// of the package relies on that invariant.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	vertices map[VertexID]struct{}
	edges    map[EdgeKey]map[TimeStep]struct{}
}

// New creates an empty temporal graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[VertexID]struct{}),
		edges:    make(map[EdgeKey]map[TimeStep]struct{}),
	}
}

// AddVertex inserts the vertex if absent and reports whether it was newly
// inserted. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id VertexID) bool {
	if _, ok := g.vertices[id]; ok {
		return false
	}
	g.vertices[id] = struct{}{}
	return true
}

// AddEdge inserts timestamp t into the label set of edge {u,v}, creating the
// edge and both endpoints as needed. Re-adding an existing timestamp is a
// no-op.
func (g *Graph) AddEdge(u, v VertexID, t TimeStep) {
	g.AddVertex(u)
	g.AddVertex(v)

	key := NewEdgeKey(u, v)
	times, ok := g.edges[key]
	if !ok {
		times = make(map[TimeStep]struct{})
		g.edges[key] = times
	}
	times[t] = struct{}{}
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]
	return ok
}

// HasEdgeAt reports whether edge {u,v} exists and carries timestamp t.
func (g *Graph) HasEdgeAt(u, v VertexID, t TimeStep) bool {
	times, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return false
	}
	_, ok = times[t]
	return ok
}

// EdgeTimes returns the sorted timestamps of edge {u,v} and true, or nil and
// false if the edge does not exist.
func (g *Graph) EdgeTimes(u, v VertexID) ([]TimeStep, bool) {
	times, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return nil, false
	}
	sorted := slices.Sorted(maps.Keys(times))
	return sorted, true
}

// EdgeTimeRange returns the minimum and maximum timestamp of edge {u,v} and
// true, or zeros and false if the edge does not exist.
func (g *Graph) EdgeTimeRange(u, v VertexID) (tmin, tmax TimeStep, ok bool) {
	times, exists := g.edges[NewEdgeKey(u, v)]
	if !exists {
		return 0, 0, false
	}
	first := true
	for t := range times {
		if first || t < tmin {
			tmin = t
		}
		if first || t > tmax {
			tmax = t
		}
		first = false
	}
	return tmin, tmax, true
}

// RemoveEdgeTime removes timestamp t from edge {u,v} if present and reports
// whether a removal occurred. When the last timestamp is removed, the edge
// record is deleted entirely.
func (g *Graph) RemoveEdgeTime(u, v VertexID, t TimeStep) bool {
	key := NewEdgeKey(u, v)
	times, ok := g.edges[key]
	if !ok {
		return false
	}
	if _, ok := times[t]; !ok {
		return false
	}
	delete(times, t)
	if len(times) == 0 {
		delete(g.edges, key)
	}
	return true
}

// RemoveEdge deletes edge {u,v} with all its timestamps and reports whether
// the edge existed.
func (g *Graph) RemoveEdge(u, v VertexID) bool {
	key := NewEdgeKey(u, v)
	if _, ok := g.edges[key]; !ok {
		return false
	}
	delete(g.edges, key)
	return true
}

// NeighborsAt returns the vertices connected to vertex by an edge carrying
// timestamp t, in ascending order.
func (g *Graph) NeighborsAt(vertex VertexID, t TimeStep) []VertexID {
	var neighbors []VertexID
	for key, times := range g.edges {
		if _, ok := times[t]; !ok {
			continue
		}
		if other, ok := key.otherEndpoint(vertex); ok {
			neighbors = append(neighbors, other)
		}
	}
	slices.Sort(neighbors)
	return neighbors
}

// AllNeighbors returns the vertices connected to vertex by an edge at any
// time, in ascending order.
func (g *Graph) AllNeighbors(vertex VertexID) []VertexID {
	var neighbors []VertexID
	for key := range g.edges {
		if other, ok := key.otherEndpoint(vertex); ok {
			neighbors = append(neighbors, other)
		}
	}
	slices.Sort(neighbors)
	return neighbors
}

// EdgesAt returns the keys of all edges carrying timestamp t, in ascending
// key order.
func (g *Graph) EdgesAt(t TimeStep) []EdgeKey {
	var keys []EdgeKey
	for key, times := range g.edges {
		if _, ok := times[t]; ok {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, compareEdgeKeys)
	return keys
}

// EdgeKeys returns all edge keys in ascending order. The ordering is the
// deterministic scan order used by FindWrappableEdge.
func (g *Graph) EdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(g.edges))
	for key := range g.edges {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareEdgeKeys)
	return keys
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []VertexID {
	return slices.Sorted(maps.Keys(g.vertices))
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. Every counted edge has at least one
// timestamp.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := New()
	maps.Copy(c.vertices, g.vertices)
	for key, times := range g.edges {
		c.edges[key] = maps.Clone(times)
	}
	return c
}

// otherEndpoint returns the endpoint of the edge that is not vertex, and
// whether the edge is incident to vertex at all.
func (k EdgeKey) otherEndpoint(vertex VertexID) (VertexID, bool) {
	switch vertex {
	case k[0]:
		return k[1], true
	case k[1]:
		return k[0], true
	default:
		return 0, false
	}
}

func compareEdgeKeys(a, b EdgeKey) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}
	return a[1] - b[1]
}
