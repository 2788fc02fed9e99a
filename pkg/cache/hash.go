package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerdictKey builds the cache key for a minimization verdict. The key binds
// the graph's canonical state to the configuration knobs that can change the
// verdict, so a bounded run never serves a cached unbounded result.
func VerdictKey(stateKey string, maxIterations int, unbounded bool) string {
	payload := fmt.Sprintf("%s|max=%d|unbounded=%t", stateKey, maxIterations, unbounded)
	return "verdict:" + Hash([]byte(payload))
}
