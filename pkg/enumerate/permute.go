package enumerate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/temporalkit/tgmin/pkg/temporal"
)

// ErrNoMultigraphs is returned when an expansion input holds no parseable
// multigraph lines.
var ErrNoMultigraphs = errors.New("no multigraphs in input")

// MultiEdge is one edge slot of a multigraph with its label multiplicity.
type MultiEdge struct {
	U, V         int
	Multiplicity int
}

// Multigraph is one parsed multigraph line: a simple graph whose edges carry
// multiplicities instead of labels.
type Multigraph struct {
	Vertices int
	Edges    []MultiEdge
}

// ParseMultigraphLine parses a multig output line:
//
//	<vertices> <edges> [<u> <v> <multiplicity>]...
func ParseMultigraphLine(line string) (Multigraph, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Multigraph{}, ErrLineTooShort
	}

	numVertices, err := strconv.Atoi(fields[0])
	if err != nil || numVertices < 0 {
		return Multigraph{}, fmt.Errorf("invalid vertex count %q", fields[0])
	}

	mg := Multigraph{Vertices: numVertices}
	for idx := 2; idx+2 < len(fields); idx += 3 {
		u, err := strconv.Atoi(fields[idx])
		if err != nil {
			return Multigraph{}, fmt.Errorf("invalid vertex %q at field %d", fields[idx], idx)
		}
		v, err := strconv.Atoi(fields[idx+1])
		if err != nil {
			return Multigraph{}, fmt.Errorf("invalid vertex %q at field %d", fields[idx+1], idx+1)
		}
		mult, err := strconv.Atoi(fields[idx+2])
		if err != nil || mult < 0 {
			return Multigraph{}, fmt.Errorf("invalid multiplicity %q at field %d", fields[idx+2], idx+2)
		}
		mg.Edges = append(mg.Edges, MultiEdge{U: u, V: v, Multiplicity: mult})
	}

	return mg, nil
}

// TotalEdges is the number of label slots, summed over edge multiplicities.
func (m Multigraph) TotalEdges() int {
	total := 0
	for _, e := range m.Edges {
		total += e.Multiplicity
	}
	return total
}

// TemporalLine renders the multigraph as a temporal corpus line, consuming
// labels from times in order: each edge takes as many labels as its
// multiplicity. len(times) must equal TotalEdges.
func (m Multigraph) TemporalLine(times []temporal.TimeStep) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(m.Vertices))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(m.TotalEdges()))

	idx := 0
	for _, e := range m.Edges {
		fmt.Fprintf(&b, " %d %d %d", e.U, e.V, e.Multiplicity)
		for _, t := range times[idx : idx+e.Multiplicity] {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(int64(t), 10))
		}
		idx += e.Multiplicity
	}

	return b.String()
}

// ExpandMultigraphs reads multigraph lines from r and writes, for every line
// and every permutation of the labels 1..M (M = total edges, taken from the
// first non-blank line), one temporal corpus line to w. Lines are expanded
// across a worker pool but written in input order. It returns the number of
// corpus lines written.
func ExpandMultigraphs(ctx context.Context, r io.Reader, w io.Writer, workers int) (int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read multigraphs: %w", err)
	}
	if len(lines) == 0 {
		return 0, ErrNoMultigraphs
	}

	// Every multig line of one batch has the same edge total, so the label
	// set is fixed by the first line.
	first, err := ParseMultigraphLine(lines[0])
	if err != nil {
		return 0, fmt.Errorf("line 1: %w", err)
	}
	total := first.TotalEdges()
	if total == 0 {
		return 0, errors.New("multigraphs have no edges")
	}

	expanded := make([][]string, len(lines))
	errs := make([]error, len(lines))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				expanded[i], errs[i] = expandLine(lines[i], total)
			}
		}()
	}

	for i := range lines {
		select {
		case <-ctx.Done():
		case indexes <- i:
			continue
		}
		break
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	for i, err := range errs {
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	bw := bufio.NewWriter(w)
	written := 0
	for _, group := range expanded {
		for _, line := range group {
			if _, err := bw.WriteString(line); err != nil {
				return written, fmt.Errorf("write corpus: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return written, fmt.Errorf("write corpus: %w", err)
			}
			written++
		}
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("write corpus: %w", err)
	}

	return written, nil
}

// ExpandMultigraphsFile expands the multigraph file at inPath into a
// temporal corpus file at outPath.
func ExpandMultigraphsFile(ctx context.Context, inPath, outPath string, workers int) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("open multigraphs: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create corpus: %w", err)
	}

	n, err := ExpandMultigraphs(ctx, in, out, workers)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close corpus: %w", cerr)
	}
	return n, err
}

func expandLine(line string, total int) ([]string, error) {
	mg, err := ParseMultigraphLine(line)
	if err != nil {
		return nil, err
	}
	if mg.TotalEdges() != total {
		return nil, fmt.Errorf("edge total %d differs from batch total %d", mg.TotalEdges(), total)
	}

	times := make([]temporal.TimeStep, total)
	for i := range times {
		times[i] = temporal.TimeStep(i + 1)
	}

	var out []string
	forEachPermutation(times, func(perm []temporal.TimeStep) {
		out = append(out, mg.TemporalLine(perm))
	})
	return out, nil
}

// forEachPermutation visits every permutation of times in lexicographic
// order. The slice passed to fn is reused between calls.
func forEachPermutation(times []temporal.TimeStep, fn func([]temporal.TimeStep)) {
	perm := make([]temporal.TimeStep, len(times))
	copy(perm, times)
	for {
		fn(perm)

		// Find the rightmost ascent.
		i := len(perm) - 2
		for i >= 0 && perm[i] >= perm[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		j := len(perm) - 1
		for perm[j] <= perm[i] {
			j--
		}
		perm[i], perm[j] = perm[j], perm[i]
		for l, r := i+1, len(perm)-1; l < r; l, r = l+1, r-1 {
			perm[l], perm[r] = perm[r], perm[l]
		}
	}
}
