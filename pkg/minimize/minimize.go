package minimize

import (
	"github.com/temporalkit/tgmin/pkg/observability"
	"github.com/temporalkit/tgmin/pkg/temporal"
)

// Outcome classifies why a minimization run terminated.
type Outcome string

const (
	// OutcomeCycleDetected means the rewriting system returned to a
	// previously seen canonical state: the labeling is minimal.
	OutcomeCycleDetected Outcome = "cycle_detected"

	// OutcomeUselessLabel means no legal wrap move remained: the labeling is
	// not minimal, some label is useless.
	OutcomeUselessLabel Outcome = "useless_label"

	// OutcomeMaxIterations means the iteration cap was hit before either a
	// cycle or a stall. The verdict is inconclusive - callers must not read
	// it as proof in either direction.
	OutcomeMaxIterations Outcome = "max_iterations"

	// OutcomeFault means the run aborted on an internal consistency failure
	// (a mutation that the loop invariants guarantee should succeed did
	// not). It is reported separately from OutcomeUselessLabel so a genuine
	// stall is never conflated with a bug.
	OutcomeFault Outcome = "internal_fault"
)

// Result is the verdict of a minimization run.
type Result struct {
	// IsMinimal is true only for OutcomeCycleDetected.
	IsMinimal bool `json:"is_minimal"`

	// Outcome is the classified termination reason.
	Outcome Outcome `json:"outcome"`

	// Stats is non-nil only when Config.TrackStats was set.
	Stats *Stats `json:"stats,omitempty"`
}

// Minimizer drives the iterative wrap/transfer rewriting over one graph.
// It exclusively owns the graph for the duration of Run: nothing else may
// mutate the graph until Run returns. A Minimizer is single-use - create one
// per run and discard it with its seen-state set.
type Minimizer struct {
	graph  *temporal.Graph
	config Config
	stats  Stats
	seen   map[string]struct{}
}

// New creates a minimizer over g with the default configuration.
func New(g *temporal.Graph) *Minimizer {
	return NewWithConfig(g, DefaultConfig())
}

// NewWithConfig creates a minimizer over g with an explicit configuration.
func NewWithConfig(g *temporal.Graph, cfg Config) *Minimizer {
	return &Minimizer{
		graph:  g,
		config: cfg,
		seen:   make(map[string]struct{}),
	}
}

// Run executes the rewriting loop until a cycle is detected, no legal move
// remains, or the iteration cap is hit. The graph is mutated in place; the
// final state is whatever configuration the loop stopped in.
//
// Each iteration performs one rewriting step:
//
//  1. Pick the wrappable edge {u,v} with the smallest normalized key.
//  2. Pick the minimum in-range incident candidate (w, x, t), x ∈ {u,v}.
//  3. Transfer x's in-range neighbor labels through (x, other) onto edges
//     at the far endpoint.
//  4. Wrap: add tmin of {u,v} onto edge (other, w), then remove it from
//     {u,v}.
//  5. Canonicalize and check the seen-state set.
func (m *Minimizer) Run() Result {
	logger := m.config.logger()

	m.recordState(m.graph.State())
	logger.Debug("minimization started",
		"vertices", m.graph.VertexCount(), "edges", m.graph.EdgeCount())
	observability.Minimize().OnRunStart(m.graph.VertexCount(), m.graph.EdgeCount())

	for {
		if !m.config.Unbounded && m.stats.Iterations >= m.config.MaxIterations {
			logger.Debug("iteration cap reached", "iterations", m.stats.Iterations)
			return m.finish(Result{IsMinimal: false, Outcome: OutcomeMaxIterations})
		}
		m.stats.Iterations++

		anchor, ok := m.graph.FindWrappableEdge()
		if !ok {
			logger.Debug("no wrappable edge remains")
			m.stats.UselessLabelsFound++
			return m.finish(Result{IsMinimal: false, Outcome: OutcomeUselessLabel})
		}
		u, v := anchor.U(), anchor.V()
		logger.Debug("wrappable edge", "iteration", m.stats.Iterations, "u", u, "v", v)

		incident, ok := m.graph.FindMinIncidentInRange(u, v)
		if !ok {
			// FindWrappableEdge just certified an in-range incident label on
			// this exact edge, so an empty candidate set is a bug, not a stall.
			logger.Error("wrappable edge has no incident candidate", "u", u, "v", v)
			return m.finish(Result{IsMinimal: false, Outcome: OutcomeFault})
		}
		logger.Debug("incident candidate",
			"neighbor", incident.Neighbor, "common", incident.Common, "t", incident.T)

		other := u
		if incident.Common == u {
			other = v
		}

		moved := m.graph.TransferLabelsThroughEdge(incident.Common, other)
		if m.config.TrackStats {
			m.stats.TransfersAttempted++
			if moved > 0 {
				m.stats.TransfersSuccessful++
			}
		}
		logger.Debug("transfer move", "through", [2]int{incident.Common, other}, "moved", moved)

		// The transfer never touches {u,v}, so the range re-read sees the
		// same tmin unless something is broken upstream.
		tmin, _, ok := m.graph.EdgeTimeRange(u, v)
		if !ok {
			logger.Error("anchor edge vanished mid-iteration", "u", u, "v", v)
			return m.finish(Result{IsMinimal: false, Outcome: OutcomeFault})
		}

		m.graph.AddEdge(incident.Neighbor, other, tmin)
		if !m.graph.RemoveEdgeTime(u, v, tmin) {
			logger.Error("failed to remove anchor tmin", "u", u, "v", v, "tmin", tmin)
			return m.finish(Result{IsMinimal: false, Outcome: OutcomeFault})
		}
		logger.Debug("wrap move", "tmin", tmin, "onto", [2]int{other, incident.Neighbor})

		state := m.graph.State()
		if m.hasSeen(state) {
			logger.Debug("cycle detected", "states", m.stats.StatesVisited)
			return m.finish(Result{IsMinimal: true, Outcome: OutcomeCycleDetected})
		}
		m.recordState(state)
	}
}

func (m *Minimizer) finish(r Result) Result {
	if m.config.TrackStats {
		stats := m.stats
		r.Stats = &stats
	}
	observability.Minimize().OnRunComplete(string(r.Outcome), r.IsMinimal, m.stats.Iterations)
	return r
}

func (m *Minimizer) hasSeen(s temporal.State) bool {
	_, ok := m.seen[s.Key()]
	return ok
}

func (m *Minimizer) recordState(s temporal.State) {
	m.seen[s.Key()] = struct{}{}
	m.stats.StatesVisited++
}

// Run minimizes g with the default configuration and reports the verdict.
func Run(g *temporal.Graph) Result {
	return New(g).Run()
}

// RunWithConfig minimizes g with an explicit configuration.
func RunWithConfig(g *temporal.Graph, cfg Config) Result {
	return NewWithConfig(g, cfg).Run()
}
