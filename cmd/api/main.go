package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/courtside/internal/config"
	"github.com/jwebster45206/courtside/internal/handlers"
	"github.com/jwebster45206/courtside/internal/logger"
	"github.com/jwebster45206/courtside/internal/services"
	"github.com/jwebster45206/courtside/internal/storage"
	"github.com/jwebster45206/courtside/pkg/engine"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Courtside API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"stats_provider", cfg.StatsProvider)

	var stats services.StatsService
	switch cfg.StatsProvider {
	case "nba":
		stats = services.NewNBAService(cfg.StatsBaseURL, log)
		log.Info("Using NBA Stats API backend")
	case "mock":
		stats = services.NewMockStatsService()
		log.Info("Using mock stats backend")
	default:
		log.Error("Invalid stats provider specified", "provider", cfg.StatsProvider, "supported", []string{"nba", "mock"})
		os.Exit(1)
	}

	var store storage.SessionStore
	if cfg.RedisURL != "" {
		cache := services.NewRedisService(cfg.RedisURL, log)
		waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := cache.WaitForConnection(waitCtx); err != nil {
			waitCancel()
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		waitCancel()
		stats = services.NewCachedStatsService(stats, cache, cfg.StatsTTL, log)
		store = storage.NewRedisStore(cfg.RedisURL, cfg.SessionTTL, log)
		defer func() {
			if err := cache.Close(); err != nil {
				log.Error("Error closing cache connection", "error", err)
			}
		}()
	} else {
		store = storage.NewMockStore()
		log.Warn("REDIS_URL not set; sessions are in-memory and stats are uncached")
	}

	// The roster load is the slow startup call against the real API.
	rosterCtx, rosterCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	eng, err := engine.New(rosterCtx, stats, log)
	rosterCancel()
	if err != nil {
		log.Error("Failed to initialize engine", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, stats, log))
	mux.Handle("/v1/chat", handlers.NewChatHandler(eng, store, log))

	sessionHandler := handlers.NewSessionHandler(store, log)
	mux.Handle("/v1/session", sessionHandler)
	mux.Handle("/v1/session/", sessionHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing session store", "error", err)
	}
	if err := stats.Close(); err != nil {
		log.Error("Error closing stats backend", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
