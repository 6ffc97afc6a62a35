package cache

import "time"

// Cache is the interface for caching exchange metadata between the one-shot
// ranking calls. The working set is tiny (a handful of keys), so the
// interface stays minimal.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns (value, true) if found, (nil, false) if not found.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with a TTL. The value is visible to
	// subsequent Get calls once Set returns.
	Set(key string, value interface{}, ttl time.Duration) bool

	// Delete removes a value from the cache.
	Delete(key string)

	// Close closes the cache and releases resources.
	Close()
}
