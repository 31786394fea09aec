package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewIdempotencyCache(time.Minute)
	defer cache.Stop()
	cache.now = func() time.Time { return now }

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("k", &cachedResponse{StatusCode: 201, Body: []byte(`{}`)})
	resp, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, now, resp.Timestamp)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get("k")
	assert.False(t, ok, "expired entries are not served")
	assert.Equal(t, 1, cache.Len())

	cache.cleanup()
	assert.Equal(t, 0, cache.Len())
}

func TestIdempotencyCache_StopIsIdempotent(t *testing.T) {
	cache := NewIdempotencyCache(time.Minute)

	assert.NotPanics(t, func() {
		cache.Stop()
		cache.Stop()
	})
}
