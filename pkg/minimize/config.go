package minimize

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxIterations is the iteration cap applied by DefaultConfig.
// 10000 iterations is far beyond what the small research graphs this tool
// targets ever need to cycle.
const DefaultMaxIterations = 10000

// Config controls a single minimization run.
type Config struct {
	// MaxIterations caps the number of rewriting iterations. A run that hits
	// the cap terminates with OutcomeMaxIterations, which is explicitly
	// inconclusive. Ignored when Unbounded is true. A cap of zero terminates
	// before the first move.
	MaxIterations int

	// Unbounded disables the iteration cap. Cycle detection still terminates
	// every run on a finite label multiset, but a cap is the only safety net
	// against surprises, so bounded runs are the default.
	Unbounded bool

	// TrackStats enables statistics accumulation. When false, Result.Stats
	// is nil.
	TrackStats bool

	// Logger receives per-iteration debug traces. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used by Run: a 10000-iteration
// cap, no statistics, no tracing.
func DefaultConfig() Config {
	return Config{MaxIterations: DefaultMaxIterations}
}

// WithMaxIterations returns a copy of the config with a bounded cap.
func (c Config) WithMaxIterations(n int) Config {
	c.MaxIterations = n
	c.Unbounded = false
	return c
}

// WithUnboundedIterations returns a copy of the config with the cap disabled.
func (c Config) WithUnboundedIterations() Config {
	c.Unbounded = true
	return c
}

// WithStats returns a copy of the config with statistics tracking enabled.
func (c Config) WithStats() Config {
	c.TrackStats = true
	return c
}

// WithLogger returns a copy of the config tracing to the given logger.
func (c Config) WithLogger(l *log.Logger) Config {
	c.Logger = l
	return c
}

// logger returns the configured logger or a discarding one.
func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Stats accumulates counters during a run when Config.TrackStats is set.
type Stats struct {
	// Iterations is the number of completed rewriting iterations.
	Iterations int `json:"iterations"`

	// TransfersAttempted counts transfer moves issued.
	TransfersAttempted int `json:"transfers_attempted"`

	// TransfersSuccessful counts transfer moves that relocated at least one
	// label.
	TransfersSuccessful int `json:"transfers_successful"`

	// UselessLabelsFound counts runs that stalled because no wrappable edge
	// remained (0 or 1 per run).
	UselessLabelsFound int `json:"useless_labels_found"`

	// StatesVisited is the number of distinct canonical states recorded,
	// including the initial one.
	StatesVisited int `json:"states_visited"`
}
