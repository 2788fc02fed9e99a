// Package observability provides hooks for instrumenting minimization runs
// and cache operations without coupling the libraries to any particular
// metrics backend.
//
// Hooks are registered once at startup (by main or a test) and invoked by
// the library packages. The defaults are no-ops, so uninstrumented use has
// no overhead beyond an interface call.
//
//	func main() {
//	    observability.SetMinimizeHooks(&promHooks{})
//	    // ... run application
//	}
package observability

import "sync"

// MinimizeHooks receives events from minimization runs.
type MinimizeHooks interface {
	// OnRunStart fires when a run begins, with the graph dimensions.
	OnRunStart(vertices, edges int)

	// OnRunComplete fires when a run terminates with its classified outcome.
	OnRunComplete(outcome string, isMinimal bool, iterations int)
}

// CacheHooks receives events from verdict cache operations.
type CacheHooks interface {
	OnHit(backend string)
	OnMiss(backend string)
	OnSet(backend string, size int)
}

type noopMinimize struct{}

func (noopMinimize) OnRunStart(int, int)             {}
func (noopMinimize) OnRunComplete(string, bool, int) {}

type noopCache struct{}

func (noopCache) OnHit(string)      {}
func (noopCache) OnMiss(string)     {}
func (noopCache) OnSet(string, int) {}

var (
	mu            sync.RWMutex
	minimizeHooks MinimizeHooks = noopMinimize{}
	cacheHooks    CacheHooks    = noopCache{}
)

// SetMinimizeHooks registers hooks for minimization events.
// Passing nil restores the no-op default.
func SetMinimizeHooks(h MinimizeHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopMinimize{}
	}
	minimizeHooks = h
}

// SetCacheHooks registers hooks for cache events.
// Passing nil restores the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopCache{}
	}
	cacheHooks = h
}

// Minimize returns the registered minimization hooks.
func Minimize() MinimizeHooks {
	mu.RLock()
	defer mu.RUnlock()
	return minimizeHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
