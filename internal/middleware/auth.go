package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/domain/dto"
	"github.com/guttosm/production-gateway/internal/i18n"
	"github.com/guttosm/production-gateway/internal/logger"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// AuthorizationHeader carries bearer tokens.
	AuthorizationHeader = "Authorization"
)

// AuthConfig selects the accepted credentials. Authentication is disabled when
// neither API keys nor a token validator is configured.
type AuthConfig struct {
	APIKeys map[string]bool
	Tokens  *TokenValidator
}

// Enabled reports whether any credential is accepted.
func (a AuthConfig) Enabled() bool {
	return len(a.APIKeys) > 0 || a.Tokens != nil
}

// Authenticate returns a middleware that requires a bearer token or an API key.
// A bearer token is checked first; the API key is read from the X-API-Key header,
// then the api_key query parameter. The caller is recorded for logs and audit.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled() {
			c.Next()
			return
		}

		if header := c.GetHeader(AuthorizationHeader); header != "" && cfg.Tokens != nil {
			token, ok := bearerToken(header)
			if !ok {
				unauthorized(c, i18n.ErrKeyInvalidToken)
				return
			}
			subject, err := cfg.Tokens.Validate(token)
			if err != nil {
				logger.FromContext(c.Request.Context()).Debug().Err(err).Msg("Rejected bearer token")
				unauthorized(c, i18n.ErrKeyInvalidToken)
				return
			}
			setActor(c, "token:"+subject)
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "" && len(cfg.APIKeys) == 0:
			unauthorized(c, i18n.ErrKeyUnauthorized)
		case key == "":
			unauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !cfg.APIKeys[key]:
			unauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			setActor(c, "api_key:"+maskKey(key))
			c.Next()
		}
	}
}

func unauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}

// maskKey keeps the first four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
