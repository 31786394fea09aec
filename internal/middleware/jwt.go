package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSubject is returned for a valid token that names no caller.
var ErrMissingSubject = errors.New("token has no subject")

// TokenValidator verifies HS256 bearer tokens issued for gateway callers.
type TokenValidator struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenValidator returns a validator for tokens signed with secret, or nil when
// secret is empty so that bearer authentication stays disabled.
func NewTokenValidator(secret string) *TokenValidator {
	if strings.TrimSpace(secret) == "" {
		return nil
	}
	return &TokenValidator{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Validate checks the token's signature and expiry and returns its subject.
func (v *TokenValidator) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
