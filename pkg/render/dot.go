// Package render turns temporal graphs into Graphviz DOT text and rasterized
// images, including per-label timeline panels.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/temporalkit/tgmin/pkg/temporal"
)

// maxInlineLabels is the largest label set printed in full on an edge.
// Bigger sets collapse to a "first..last (n times)" summary.
const maxInlineLabels = 5

// ToDOT converts a temporal graph to undirected Graphviz DOT. Vertices and
// edges appear in sorted order, so output is deterministic. Each edge is
// labeled with its sorted label set.
func ToDOT(g *temporal.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("strict graph temporal_graph {\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=lightblue];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for _, key := range g.EdgeKeys() {
		times, _ := g.EdgeTimes(key.U(), key.V())
		fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", key.U(), key.V(), fmtTimes(times))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ToDOTAt converts the snapshot of g at time t to undirected DOT: all
// vertices, but only the edges active at t, without labels.
func ToDOTAt(g *temporal.Graph, t temporal.TimeStep) string {
	var buf bytes.Buffer
	buf.WriteString("strict graph temporal_graph {\n")
	buf.WriteString("  node [shape=circle];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for _, key := range g.EdgesAt(t) {
		fmt.Fprintf(&buf, "  %d -- %d;\n", key.U(), key.V())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtTimes(times []temporal.TimeStep) string {
	if len(times) > maxInlineLabels {
		return fmt.Sprintf("%d..%d (%d times)", times[0], times[len(times)-1], len(times))
	}
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = strconv.FormatInt(int64(t), 10)
	}
	return strings.Join(parts, ", ")
}
