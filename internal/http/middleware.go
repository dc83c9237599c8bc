package http

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"

	"github.com/zaiko-app/zaiko/internal/config"
	rl "github.com/zaiko-app/zaiko/internal/http/rate_limiter"
)

// AccessGate guards the API routes. A request passes when the server runs
// in development mode, when it comes from the same origin (if that trust
// is configured), or when it carries the configured API key. Everything
// else is rejected before any handler runs.
func AccessGate(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.IsDevelopment() {
				next.ServeHTTP(w, r)
				return
			}

			if cfg.TrustSameOrigin && sameOrigin(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("x-api-key")
			if cfg.APIKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized - Invalid API Key"})
		})
	}
}

func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || r.Host == "" {
		return false
	}
	return origin == "https://"+r.Host || origin == "http://"+r.Host
}

// RateLimit applies a per-client token bucket keyed by remote IP.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
