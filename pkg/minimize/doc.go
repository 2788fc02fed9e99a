// Package minimize implements the label minimization engine: an iterative
// rewriting system that decides whether a temporal graph's labeling is
// minimal.
//
// Each iteration picks a wrappable edge, transfers in-range labels from the
// shared endpoint to the far endpoint, wraps the edge's minimum label onto
// the incident neighbor, and drops that label from the edge. The loop
// memoizes canonical graph states; revisiting one proves the labeling is
// minimal (OutcomeCycleDetected), while running out of legal moves proves it
// is not (OutcomeUselessLabel). An iteration cap bounds runaway runs with an
// explicitly inconclusive OutcomeMaxIterations.
//
//	g := temporal.New()
//	g.AddEdge(0, 1, 0)
//	g.AddEdge(0, 1, 10)
//	g.AddEdge(1, 2, 5)
//
//	res := minimize.Run(g)
//	fmt.Println(res.IsMinimal, res.Outcome)
//
// RunBatch minimizes whole corpora across a worker pool with optional
// verdict memoization through pkg/cache.
package minimize
