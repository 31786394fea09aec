package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/domain/dto"
	"github.com/guttosm/production-gateway/internal/i18n"
)

// defaultNumShards is the default number of shards for the rate limiter.
const defaultNumShards = 16

// callerWindow tracks the fixed-window budget of one caller.
type callerWindow struct {
	remaining int
	start     time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	callers map[string]*callerWindow
}

// RateLimiter is a fixed-window limiter sharded by caller to reduce lock contention.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per caller per window.
// Call Stop to release its cleanup goroutine.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return newRateLimiter(rate, window, defaultNumShards)
}

func newRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &RateLimiter{
		shards: make([]*rateLimiterShard, numShards),
		rate:   rate,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{callers: make(map[string]*callerWindow)}
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow spends one request from identifier's budget.
func (rl *RateLimiter) allow(identifier string) (bool, int) {
	s := rl.shard(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	w, ok := s.callers[identifier]
	if !ok || now.Sub(w.start) > rl.window {
		s.callers[identifier] = &callerWindow{remaining: rl.rate - 1, start: now}
		return true, rl.rate - 1
	}

	if w.remaining <= 0 {
		return false, 0
	}
	w.remaining--
	return true, w.remaining
}

// RateLimit returns a middleware that limits requests per authenticated caller,
// falling back to the client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := "ip:" + c.ClientIP()
		if actor := GetActor(c); actor != "" {
			identifier = "actor:" + actor
		}

		allowed, remaining := rl.allow(identifier)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// evictExpired drops callers idle for more than two windows.
func (rl *RateLimiter) evictExpired() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, w := range s.callers {
			if now.Sub(w.start) > 2*rl.window {
				delete(s.callers, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() {
		close(rl.stopCh)
	})
}

// Len returns the number of tracked callers.
func (rl *RateLimiter) Len() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.callers)
		s.mu.Unlock()
	}
	return total
}
