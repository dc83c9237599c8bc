package main

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/zaiko-app/zaiko/internal/config"
	"github.com/zaiko-app/zaiko/internal/db"
	api "github.com/zaiko-app/zaiko/internal/http"
	"github.com/zaiko-app/zaiko/internal/http/handlers"
	rl "github.com/zaiko-app/zaiko/internal/http/rate_limiter"
	"github.com/zaiko-app/zaiko/internal/repo"
)

// @title Zaiko Inventory API
// @version 1.0
// @description REST API for tracking household product stock levels.
// @BasePath /
func main() {
	cfg := config.Load()
	ctx := context.Background()

	gateway := db.NewGateway(cfg.MongoURI, cfg.MongoDB)
	database, err := gateway.Database(ctx)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer gateway.Close(ctx)

	products := repo.NewMongoProductRepository(database)
	if err := products.EnsureIndexes(); err != nil {
		log.Fatal("❌ Could not create indexes:", err)
	}
	handlers.SetProductRepo(products)

	if cfg.RateLimitRPS > 0 {
		rl.Configure(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		go rl.StartVisitorCleanupLoop()
	}

	r := api.NewRouter(cfg)
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
