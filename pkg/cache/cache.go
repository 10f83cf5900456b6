// Package cache stores rendered export artifacts (SVG, PNG) on disk so
// re-exporting an unchanged TGF document skips the Graphviz pass.
//
// Keys are derived from the input document's content hash plus the output
// format, so any edit to the source file naturally invalidates its cached
// artifacts.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiration.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ExportKey derives the cache key for a rendered artifact from the raw TGF
// input and the output format. SHA-256 keeps content keys collision-free.
func ExportKey(content []byte, format string) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(format))
	return fmt.Sprintf("export:%s", hex.EncodeToString(h.Sum(nil)))
}
