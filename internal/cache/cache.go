// Package cache stores serialized entity documents so repeated lookups
// against the same dump do not re-scan it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching serialized entity documents.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// EntityKey generates a cache key for an entity document from a dump.
// The dump date stamp is part of the key so documents of different
// dump generations never collide.
func EntityKey(dateStamp, entityID string) string {
	hash := sha256.Sum256([]byte(dateStamp + ":" + entityID))
	return "wikibase:v1:" + hex.EncodeToString(hash[:])
}
