// Package pkg provides the core libraries for tgmin temporal graph
// minimization.
//
// # Overview
//
// tgmin decides whether a temporal graph's time labeling is minimal by
// rewriting it with wrap and transfer moves until the system either cycles
// or stalls. The pkg directory is organized into:
//
//   - [temporal] - the temporal graph model and edge-rewriting kernels
//   - [minimize] - the minimization engine, verdicts, and batch runner
//   - [enumerate] - corpus parsing, multigraph expansion, nauty generation
//   - [graphio] - JSON wire format for single graphs
//   - [render] - DOT, SVG, and PNG visualization
//   - [cache] - verdict memoization backends (file, redis, null)
//   - [config] - TOML configuration
//   - [observability] - instrumentation hooks
//   - [buildinfo] - build-time version information
//
// # Quick Start
//
//	g := temporal.New()
//	g.AddEdge(0, 1, 0)
//	g.AddEdge(0, 1, 10)
//	g.AddEdge(1, 2, 5)
//
//	res := minimize.Run(g)
//	fmt.Println(res.IsMinimal, res.Outcome)
package pkg
