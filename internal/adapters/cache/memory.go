package cache

import (
	"strings"
	"sync"
	"time"

	"x-to-markdown/internal/domain"
)

// MemoryCache is an in-memory payload cache with TTL support.
type MemoryCache struct {
	payloads sync.Map
	ttl      time.Duration
	stop     chan struct{}
	once     sync.Once
}

// cacheEntry holds a cached payload with expiration metadata.
type cacheEntry struct {
	payload   *domain.Payload
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache with the specified TTL and
// starts its cleanup loop. Call Close to stop the loop.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := &MemoryCache{ttl: ttl, stop: make(chan struct{})}
	go c.cleanup(time.Minute)
	return c
}

// NormalizedKey returns the cache key for a post: /{username}/status/{id}.
// Usernames are case-insensitive on the platform, so they are lowercased.
func NormalizedKey(username, tweetID string) string {
	return "/" + strings.ToLower(username) + "/status/" + tweetID
}

// Get retrieves a payload from the cache.
// Returns the payload and true if found and not expired, otherwise nil and false.
func (c *MemoryCache) Get(username, tweetID string) (*domain.Payload, bool) {
	key := NormalizedKey(username, tweetID)
	value, ok := c.payloads.Load(key)
	if !ok {
		return nil, false
	}

	entry := value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.payloads.Delete(key)
		return nil, false
	}

	return entry.payload, true
}

// Set stores a payload in the cache with the configured TTL.
func (c *MemoryCache) Set(username, tweetID string, payload *domain.Payload) {
	c.payloads.Store(NormalizedKey(username, tweetID), &cacheEntry{
		payload:   payload,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	n := 0
	c.payloads.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close stops the cleanup loop. Safe to call multiple times.
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

// cleanup periodically removes expired entries from the cache.
func (c *MemoryCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.evictExpired(time.Now())
		case <-c.stop:
			return
		}
	}
}

func (c *MemoryCache) evictExpired(now time.Time) {
	c.payloads.Range(func(key, value any) bool {
		if now.After(value.(*cacheEntry).expiresAt) {
			c.payloads.Delete(key)
		}
		return true
	})
}
