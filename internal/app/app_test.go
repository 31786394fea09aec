//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-gateway/config"
)

// newUpstream fakes the manufacturing service.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/production/suggestions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"productId":1,"productCode":"P-1","productName":"Stool","producibleQuantity":2,"productValue":10},
			{"productId":2,"productCode":"P-2","productName":"Table","producibleQuantity":1,"productValue":50}
		]`))
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"code":"P-1","name":"Stool","value":10}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RateLimit:      100,
			RateWindow:     time.Minute,
			IdempotencyTTL: time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
		Upstream: config.UpstreamConfig{
			BaseURL:                        baseURL,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
	}
}

func get(t *testing.T, a *App, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp(t *testing.T) {
	upstream := newUpstream(t)

	application := InitializeApp(testConfig(upstream.URL + "/api"))
	defer application.Close(context.Background())

	require.NotNil(t, application.Router)

	w := get(t, application, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, application, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"manufacturing_circuit":"closed"`)

	w = get(t, application, "/api/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"P-1"`)

	w = get(t, application, "/api/audit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApp_StartLoadsThePlanView(t *testing.T) {
	upstream := newUpstream(t)

	application := InitializeApp(testConfig(upstream.URL + "/api"))
	defer application.Close(context.Background())

	application.Start(context.Background())

	assert.Eventually(t, func() bool {
		w := get(t, application, "/api/production/plan", nil)
		var body struct {
			Data struct {
				State string `json:"state"`
			} `json:"data"`
		}
		return json.Unmarshal(w.Body.Bytes(), &body) == nil && body.Data.State == "ready"
	}, 2*time.Second, 20*time.Millisecond)

	w := get(t, application, "/api/production/plan", nil)
	assert.True(t, strings.Index(w.Body.String(), "P-2") < strings.Index(w.Body.String(), "P-1"),
		"plan should be ranked by unit value")
}

func TestInitializeApp_UnreachableUpstream(t *testing.T) {
	application := InitializeApp(testConfig("http://127.0.0.1:1/api"))
	defer application.Close(context.Background())

	w := get(t, application, "/api/products", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestInitializeApp_Authentication(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL + "/api")
	cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"gateway-key": true}}

	application := InitializeApp(cfg)
	defer application.Close(context.Background())

	assert.Equal(t, http.StatusUnauthorized, get(t, application, "/api/products", nil).Code)
	assert.Equal(t, http.StatusOK, get(t, application, "/api/products", map[string]string{"X-API-Key": "gateway-key"}).Code)
}
