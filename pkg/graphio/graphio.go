package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/temporalkit/tgmin/pkg/temporal"
)

// =============================================================================
// Wire Types
// =============================================================================

// Graph is the canonical JSON format for temporal graphs. Vertices and edges
// are sorted for deterministic output.
type Graph struct {
	Vertices []int  `json:"vertices"`
	Edges    []Edge `json:"edges"`
}

// Edge is one undirected edge with its sorted label set.
type Edge struct {
	U     int     `json:"u"`
	V     int     `json:"v"`
	Times []int64 `json:"times"`
}

// =============================================================================
// Conversion
// =============================================================================

// FromGraph converts a temporal graph to its wire representation.
func FromGraph(g *temporal.Graph) Graph {
	out := Graph{Vertices: g.Vertices()}
	for _, key := range g.EdgeKeys() {
		times, _ := g.EdgeTimes(key.U(), key.V())
		wire := make([]int64, len(times))
		for i, t := range times {
			wire[i] = int64(t)
		}
		out.Edges = append(out.Edges, Edge{U: key.U(), V: key.V(), Times: wire})
	}
	return out
}

// ToGraph converts a wire representation back to a temporal graph. It
// rejects self-loops and edges without labels, which the in-memory
// representation cannot hold.
func ToGraph(data Graph) (*temporal.Graph, error) {
	g := temporal.New()
	for _, v := range data.Vertices {
		g.AddVertex(v)
	}
	for _, e := range data.Edges {
		if e.U == e.V {
			return nil, fmt.Errorf("self-loop on vertex %d", e.U)
		}
		if len(e.Times) == 0 {
			return nil, fmt.Errorf("edge (%d,%d) has no labels", e.U, e.V)
		}
		for _, t := range e.Times {
			g.AddEdge(e.U, e.V, temporal.TimeStep(t))
		}
	}
	return g, nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a temporal graph to indented JSON bytes.
func Marshal(g *temporal.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a temporal graph.
func Unmarshal(data []byte) (*temporal.Graph, error) {
	return readFrom(bytes.NewReader(data))
}

// Write writes a temporal graph as JSON to an io.Writer.
func Write(g *temporal.Graph, w io.Writer) error {
	return writeTo(g, w)
}

// Read decodes a JSON graph from an io.Reader.
func Read(r io.Reader) (*temporal.Graph, error) {
	return readFrom(r)
}

// WriteFile writes a temporal graph to a JSON file.
func WriteFile(g *temporal.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, f)
}

// ReadFile reads a JSON file and returns the decoded temporal graph.
func ReadFile(path string) (*temporal.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(g *temporal.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*temporal.Graph, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(data)
}
