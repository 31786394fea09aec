package middleware

import (
	"sync"
	"time"
)

// IdempotencyCache stores responses replayed by the idempotency middleware.
type IdempotencyCache struct {
	mu     sync.RWMutex
	items  map[string]*cachedResponse
	ttl    time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewIdempotencyCache creates a cache whose entries expire after ttl.
// Call Stop to release its cleanup goroutine.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	c := &IdempotencyCache{
		items:  make(map[string]*cachedResponse),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response that has not expired.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response, stamping it with the current time.
func (c *IdempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = c.now()
	c.items[key] = resp
}

// Len returns the number of stored entries, expired or not.
func (c *IdempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *IdempotencyCache) Stop() {
	c.once.Do(func() {
		close(c.stopCh)
	})
}

func (c *IdempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
