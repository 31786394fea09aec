package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	defer rl.Stop()

	assert.Len(t, rl.shards, defaultNumShards)
	assert.Equal(t, 10, rl.rate)

	custom := newRateLimiter(10, time.Minute, -1)
	defer custom.Stop()
	assert.Len(t, custom.shards, defaultNumShards)
}

func TestRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name        string
		rate        int
		requests    int
		wantAllowed int
	}{
		{name: "under the limit", rate: 5, requests: 3, wantAllowed: 3},
		{name: "at the limit", rate: 5, requests: 5, wantAllowed: 5},
		{name: "over the limit", rate: 5, requests: 8, wantAllowed: 5},
		{name: "single request budget", rate: 1, requests: 3, wantAllowed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.rate, time.Minute)
			defer rl.Stop()

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				if ok, _ := rl.allow("ip:10.0.0.1"); ok {
					allowed++
				}
			}
			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	ok, _ := rl.allow("a")
	assert.True(t, ok)
	ok, _ = rl.allow("a")
	assert.False(t, ok)

	now = now.Add(61 * time.Second)
	ok, remaining := rl.allow("a")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestRateLimiter_EvictExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	rl.allow("a")
	rl.allow("b")
	assert.Equal(t, 2, rl.Len())

	now = now.Add(3 * time.Minute)
	rl.allow("c")
	rl.evictExpired()
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/api/products", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		codes = append(codes, w.Code)
		last = w
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_LimitsPerActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		setActor(c, c.GetHeader("X-Test-Actor"))
		c.Next()
	}, rl.RateLimit())
	router.GET("/api/products", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, actor := range []string{"token:a", "token:b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("X-Test-Actor", actor)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, actor)
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
