package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long a response is replayed when no TTL is configured.
	DefaultIdempotencyTTL = 24 * time.Hour
)

// replayedHeaders are copied from the original response onto a replay.
var replayedHeaders = []string{"Content-Type", "Location"}

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *IdempotencyCache
	Enabled bool
}

// NewIdempotencyConfig returns an enabled configuration replaying responses for ttl.
func NewIdempotencyConfig(ttl time.Duration) IdempotencyConfig {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return IdempotencyConfig{
		Cache:   NewIdempotencyCache(ttl),
		Enabled: true,
	}
}

// Idempotency returns a middleware that replays the response of a mutation sent again
// with the same Idempotency-Key, method, path, caller and body. Only 2xx responses are kept,
// so a retried call that failed upstream reaches the manufacturing service again.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := generateCacheKey(key, GetActor(c), c.Request)

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			for k, v := range cached.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.Headers["Content-Type"], cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		headers := make(map[string]string, len(replayedHeaders))
		for _, h := range replayedHeaders {
			if v := writer.Header().Get(h); v != "" {
				headers[h] = v
			}
		}
		cfg.Cache.Set(cacheKey, &cachedResponse{
			StatusCode: status,
			Headers:    headers,
			Body:       writer.body.Bytes(),
		})
	}
}

// generateCacheKey hashes the idempotency key with the request identity and body.
// The body is restored for the handler.
func generateCacheKey(idempotencyKey, actor string, req *http.Request) string {
	hasher := sha256.New()
	for _, part := range []string{idempotencyKey, actor, req.Method, req.URL.Path} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter tees the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
