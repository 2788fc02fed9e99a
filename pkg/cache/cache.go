// Package cache provides the verdict cache used to memoize minimization
// results across runs over large graph corpora.
//
// Minimizing a corpus of temporal graphs revisits the same canonical
// configurations constantly (permuted labelings collapse to few states), so
// verdicts are cached keyed by canonical state and configuration. Three
// backends are provided:
//
//   - FileCache: sha256-sharded JSON entries under a directory, for CLI use
//   - RedisCache: shared cache for long-running batch jobs
//   - NullCache: disables caching
//
// The cache stores serialized verdicts only - it is a memoization layer,
// never a source of truth.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Get reports a miss with (nil, false, nil); errors are reserved for backend
// failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
