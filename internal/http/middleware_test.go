package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zaiko-app/zaiko/internal/config"
	"github.com/zaiko-app/zaiko/internal/http/handlers"
	"github.com/zaiko-app/zaiko/internal/repo"
)

func gatedOK(cfg config.Config) http.Handler {
	return AccessGate(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAccessGate_DevelopmentBypass(t *testing.T) {
	h := gatedOK(config.Config{Env: "development", APIKey: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 in development mode, got %d", w.Code)
	}
}

func TestAccessGate_MissingKey(t *testing.T) {
	h := gatedOK(config.Config{Env: "production", APIKey: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if body["error"] != "Unauthorized - Invalid API Key" {
		t.Errorf("unexpected rejection message: %q", body["error"])
	}
}

func TestAccessGate_APIKey(t *testing.T) {
	h := gatedOK(config.Config{Env: "production", APIKey: "secret"})

	tests := []struct {
		name       string
		key        string
		expectCode int
	}{
		{"valid key", "secret", http.StatusOK},
		{"wrong key", "guess", http.StatusUnauthorized},
		{"empty key", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tt.key != "" {
				req.Header.Set("x-api-key", tt.key)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestAccessGate_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	h := gatedOK(config.Config{Env: "production"})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("x-api-key", "")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no key is configured, got %d", w.Code)
	}
}

func TestAccessGate_SameOrigin(t *testing.T) {
	trusted := gatedOK(config.Config{Env: "production", APIKey: "secret", TrustSameOrigin: true})
	untrusted := gatedOK(config.Config{Env: "production", APIKey: "secret", TrustSameOrigin: false})

	makeReq := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "http://inventory.local/api/products", nil)
		req.Header.Set("Origin", origin)
		return req
	}

	w := httptest.NewRecorder()
	trusted.ServeHTTP(w, makeReq("http://inventory.local"))
	if w.Code != http.StatusOK {
		t.Errorf("expected same-origin request to pass when trusted, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	trusted.ServeHTTP(w, makeReq("http://evil.example"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected cross-origin request without key to be rejected, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	untrusted.ServeHTTP(w, makeReq("http://inventory.local"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected same-origin request to be rejected when trust is off, got %d", w.Code)
	}
}

func TestRouter_HealthIsNotGated(t *testing.T) {
	handlers.SetProductRepo(repo.NewInMemoryProductRepository())
	r := NewRouter(config.Config{Env: "production", APIKey: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected /health to pass without a key, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected /api to be gated, got %d", w.Code)
	}
}
