package enumerate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// GenerateMultigraphs runs nauty's geng and multig to enumerate the
// connected multigraphs with n vertices, m base edges, and totalEdges edges
// counted with multiplicity, writing multig's -T output to outPath. It
// returns the number of multigraphs written.
//
// Requires geng and multig on PATH.
func GenerateMultigraphs(ctx context.Context, n, m, totalEdges int, outPath string) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("vertex count must be positive, got %d", n)
	}
	if totalEdges < m {
		return 0, fmt.Errorf("total edges %d must be >= base edges %d", totalEdges, m)
	}
	if maxEdges := n * (n - 1) / 2; m > maxEdges {
		return 0, fmt.Errorf("base edges %d exceeds maximum %d for %d vertices", m, maxEdges, n)
	}

	geng := exec.CommandContext(ctx, "geng", "-c", strconv.Itoa(n), strconv.Itoa(m), "-q")
	var gengOut, gengErr bytes.Buffer
	geng.Stdout = &gengOut
	geng.Stderr = &gengErr
	if err := geng.Run(); err != nil {
		return 0, fmt.Errorf("geng (is nauty installed?): %w: %s", err, gengErr.String())
	}

	multig := exec.CommandContext(ctx, "multig", "-T", "-e"+strconv.Itoa(totalEdges), "-q")
	multig.Stdin = &gengOut
	var multigOut, multigErr bytes.Buffer
	multig.Stdout = &multigOut
	multig.Stderr = &multigErr
	if err := multig.Run(); err != nil {
		return 0, fmt.Errorf("multig: %w: %s", err, multigErr.String())
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(multigOut.Bytes()))
	w := bufio.NewWriter(out)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return count, fmt.Errorf("write output: %w", err)
		}
		count++
	}
	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("write output: %w", err)
	}

	return count, nil
}
