package render

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/temporalkit/tgmin/pkg/temporal"
)

// Timeline returns the distinct labels of g in ascending order: one panel
// per label covers every moment the graph changes.
func Timeline(g *temporal.Graph) []temporal.TimeStep {
	seen := make(map[temporal.TimeStep]struct{})
	for _, key := range g.EdgeKeys() {
		times, _ := g.EdgeTimes(key.U(), key.V())
		for _, t := range times {
			seen[t] = struct{}{}
		}
	}

	out := slices.Collect(maps.Keys(seen))
	slices.Sort(out)
	return out
}

// WriteTimeline writes one snapshot DOT file per distinct label into dir,
// named <prefix>_<t>.dot. It returns the paths written, in label order.
func WriteTimeline(g *temporal.Graph, dir, prefix string) ([]string, error) {
	var paths []string
	for _, t := range Timeline(g) {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.dot", prefix, t))
		if err := os.WriteFile(path, []byte(ToDOTAt(g, t)), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteTimelinePNG renders one snapshot PNG per distinct label into dir,
// named <prefix>_<t>.png. It returns the paths written, in label order.
func WriteTimelinePNG(ctx context.Context, g *temporal.Graph, dir, prefix string) ([]string, error) {
	var paths []string
	for _, t := range Timeline(g) {
		png, err := RenderPNG(ctx, ToDOTAt(g, t))
		if err != nil {
			return paths, fmt.Errorf("render panel %d: %w", t, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", prefix, t))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
