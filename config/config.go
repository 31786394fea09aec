// Package config provides configuration management for the production gateway.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultUpstreamBaseURL is used when MANUFACTURING_API_BASE_URL is not set.
const DefaultUpstreamBaseURL = "http://localhost:8080/api"

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	IdempotencyTTL time.Duration
	// WriteTimeout bounds writing a response. Zero leaves it unbounded.
	WriteTimeout time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// UpstreamConfig configures the manufacturing service client.
type UpstreamConfig struct {
	// BaseURL is the manufacturing service API root, e.g. http://host:8080/api.
	BaseURL string
	// Timeout bounds a single upstream call. Zero keeps the transport default.
	Timeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled      bool
	APIKeys      map[string]bool
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration for the audit trail.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	AuditTTL     time.Duration
	Enabled      bool
}

// Load reads an optional .env file and creates a Config from environment variables.
// Variables already set in the environment take precedence over the file.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv creates a Config from environment variables. Invalid values fall back to defaults.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8081"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
			WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Upstream: UpstreamConfig{
			BaseURL:                        getEnv("MANUFACTURING_API_BASE_URL", DefaultUpstreamBaseURL),
			Timeout:                        getEnvDuration("UPSTREAM_TIMEOUT", 0),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "production_gateway"),
			AuditTTL:     getEnvDuration("AUDIT_TTL", 30*24*time.Hour),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && i > 0 {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
