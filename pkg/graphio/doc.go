// Package graphio provides the JSON wire format for temporal graphs.
//
// The format is a flat vertex/edge listing, human-readable and designed for
// round-trip fidelity: import, minimize, export, re-import produces
// identical structures.
//
//	{
//	  "vertices": [0, 1, 2],
//	  "edges": [
//	    {"u": 0, "v": 1, "times": [0, 10]},
//	    {"u": 1, "v": 2, "times": [5]}
//	  ]
//	}
//
// Common operations:
//
//	g, _ := graphio.ReadFile("graph.json")   // File → temporal.Graph
//	graphio.WriteFile(g, "out.json")         // temporal.Graph → File
//	data, _ := graphio.Marshal(g)            // temporal.Graph → []byte
//
// For the line-oriented corpus format used by enumeration, see
// pkg/enumerate.
package graphio
