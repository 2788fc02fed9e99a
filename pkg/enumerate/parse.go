// Package enumerate reads and generates temporal graph corpora.
//
// Corpora are plain text, one graph per line:
//
//	<vertices> <edges> [<u> <v> <k> <t1> ... <tk>]...
//
// where each edge block lists its endpoints, its label count k, and k
// integer labels. Multigraph lines use the same header but fixed-width
// edge blocks `<u> <v> <multiplicity>`; ExpandMultigraphs turns those into
// temporal corpora by assigning every permutation of distinct labels to the
// edge slots. GenerateMultigraphs produces multigraph input with nauty's
// geng and multig tools.
package enumerate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/temporalkit/tgmin/pkg/temporal"
)

// ErrLineTooShort is returned for lines missing the vertex and edge counts.
var ErrLineTooShort = errors.New("line too short")

// ParseGraphLine parses one corpus line into a temporal graph. All vertices
// 0..n-1 are added even when isolated, so connectivity checks see them.
func ParseGraphLine(line string) (*temporal.Graph, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, ErrLineTooShort
	}

	numVertices, err := strconv.Atoi(fields[0])
	if err != nil || numVertices < 0 {
		return nil, fmt.Errorf("invalid vertex count %q", fields[0])
	}
	if _, err := strconv.Atoi(fields[1]); err != nil {
		return nil, fmt.Errorf("invalid edge count %q", fields[1])
	}

	g := temporal.New()
	for v := range numVertices {
		g.AddVertex(v)
	}

	idx := 2
	for idx < len(fields) {
		if idx+2 >= len(fields) {
			return nil, fmt.Errorf("incomplete edge block at field %d", idx)
		}
		u, err := strconv.Atoi(fields[idx])
		if err != nil {
			return nil, fmt.Errorf("invalid vertex %q at field %d", fields[idx], idx)
		}
		v, err := strconv.Atoi(fields[idx+1])
		if err != nil {
			return nil, fmt.Errorf("invalid vertex %q at field %d", fields[idx+1], idx+1)
		}
		k, err := strconv.Atoi(fields[idx+2])
		if err != nil || k < 0 {
			return nil, fmt.Errorf("invalid label count %q at field %d", fields[idx+2], idx+2)
		}
		if idx+2+k >= len(fields) {
			return nil, fmt.Errorf("edge (%d,%d) declares %d labels but the line ends early", u, v, k)
		}
		for i := range k {
			t, err := strconv.ParseInt(fields[idx+3+i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid label %q at field %d", fields[idx+3+i], idx+3+i)
			}
			g.AddEdge(u, v, t)
		}
		idx += 3 + k
	}

	return g, nil
}

// ReadGraphs parses a corpus stream, one graph per non-blank line.
func ReadGraphs(r io.Reader) ([]*temporal.Graph, error) {
	var graphs []*temporal.Graph

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := ParseGraphLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		graphs = append(graphs, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return graphs, nil
}

// ReadGraphsFile parses the corpus file at path.
func ReadGraphsFile(path string) ([]*temporal.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	graphs, err := ReadGraphs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return graphs, nil
}

// FormatGraphLine renders a graph as one corpus line. Edges appear in
// normalized key order with sorted labels, so output is deterministic and
// ParseGraphLine(FormatGraphLine(g)) reproduces g.
func FormatGraphLine(g *temporal.Graph) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(g.VertexCount()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.EdgeCount()))

	for _, key := range g.EdgeKeys() {
		times, _ := g.EdgeTimes(key.U(), key.V())
		fmt.Fprintf(&b, " %d %d %d", key.U(), key.V(), len(times))
		for _, t := range times {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(int64(t), 10))
		}
	}

	return b.String()
}
