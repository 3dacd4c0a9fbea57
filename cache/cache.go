// Package cache defines the content-cache capability consumed by the
// extraction engine, plus an in-memory implementation with time-based
// expiry. Extraction degrades to no caching when no Cache is injected.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Cache is the capability interface injected into the extraction engine.
// Entries expire after their TTL; expiry is time-based, not LRU.
type Cache interface {
	Get(key string) (any, bool)
	Put(key string, value any, ttl time.Duration)
	Clear()
}

// DefaultTTL is used when Put receives a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// Key builds a cache key from a content hash and a slide index.
func Key(contentHash string, slide int) string {
	return fmt.Sprintf("%s:%d", contentHash, slide)
}

// HashContent returns the hex SHA-256 of the given bytes, for use as the
// content portion of a cache key.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type entry struct {
	value   any
	expires time.Time
}

// Memory is a thread-safe in-memory Cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the value for key if present and not expired. Expired
// entries are removed on access.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().After(e.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Put stores a value with the given TTL. A non-positive TTL falls back
// to DefaultTTL.
func (m *Memory) Put(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m.mu.Lock()
	m.entries[key] = entry{value: value, expires: m.now().Add(ttl)}
	m.mu.Unlock()
}

// Clear removes every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
}

// CleanupExpired removes expired entries and returns how many were
// removed.
func (m *Memory) CleanupExpired() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries, including any not yet cleaned up.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
