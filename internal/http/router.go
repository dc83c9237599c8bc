package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zaiko-app/zaiko/internal/config"
	"github.com/zaiko-app/zaiko/internal/http/handlers"
)

func NewRouter(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Only /api is gated; everything else passes through unexamined.
	r.Route("/api", func(api chi.Router) {
		api.Use(AccessGate(cfg))
		if cfg.RateLimitRPS > 0 {
			api.Use(RateLimit)
		}

		api.Post("/products", handlers.CreateProductHandler)
		api.Get("/products", handlers.GetProductsHandler)
		api.Get("/products/{id}", handlers.GetProductByIDHandler)
		api.Put("/products/{id}", handlers.UpdateProductHandler)
		api.Delete("/products/{id}", handlers.DeleteProductHandler)
		api.Post("/seed", handlers.SeedProductsHandler)
	})

	return r
}
