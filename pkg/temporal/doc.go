// Package temporal implements the temporal graph data model used throughout
// tgmin: undirected graphs whose edges carry finite sets of discrete
// timestamps (labels).
//
// The package provides three layers:
//
//   - Graph: the mutable vertex/edge store with symmetric edge lookups,
//     set-semantics labels, and automatic cleanup of edges whose last label
//     is removed.
//   - State: an order-independent canonical snapshot of a graph's edge and
//     label content, used as a memoization key for cycle detection.
//   - Edge-query kernels: wrappable-edge detection, minimum-incident-in-range
//     search, and label transfer - the two move types ("wrap" and "transfer")
//     of the label rewriting system driven by package minimize.
//
// All scan orders are deterministic (ascending normalized edge keys), so
// repeated runs over the same graph produce the same move sequence.
//
// # Example
//
//	g := temporal.New()
//	g.AddEdge(0, 1, 0)
//	g.AddEdge(0, 1, 10)
//	g.AddEdge(1, 2, 5)
//
//	key, ok := g.FindWrappableEdge() // {0,1}: label 5 on {1,2} sits in (0,10)
package temporal
