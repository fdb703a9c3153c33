package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"policy-valuation/config"
	httpLayer "policy-valuation/http"
	"policy-valuation/repository"
	"policy-valuation/service"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tables := repository.NewEmbeddedReferenceTables()
	if _, _, err := tables.Tables(); err != nil {
		log.Fatalf("reference tables: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Printf("Warning: redis at %s unreachable, results will not be cached until it is: %v", cfg.RedisAddr, err)
		}
		cancel()
		cache = redisCache
	} else {
		cache = repository.NewMemoryCache()
	}

	valuationService := service.NewValuationService(tables, cache)
	valuationHandler := httpLayer.NewValuationHandler(valuationService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/valuation/estimate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(valuationHandler.Estimate),
		),
	)
	mux.HandleFunc("/healthz", httpLayer.Health)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.RequestLogMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("valuation API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
