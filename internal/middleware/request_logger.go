package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/logger"
)

// RequestLogger returns a middleware that writes one structured line per request:
// request id, caller, method, path, status code, latency, IP and user agent.
// The level follows the status class.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()
		if actor := GetActor(c); actor != "" {
			log = log.With().Str("actor", actor).Logger()
		}

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}
	}
}
