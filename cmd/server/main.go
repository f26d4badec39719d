package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmark-server/internal/config"
	httpHandler "bookmark-server/internal/handler/http"
	"bookmark-server/internal/probe"
	"bookmark-server/internal/repository/memory"
	"bookmark-server/internal/service"
	"bookmark-server/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Configuration comes from environment variables so the same binary
	// runs in dev, staging, and production with different settings
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.App.LogLevel)
	appLogger.Info("Starting Bookmark Server",
		"environment", cfg.App.Environment,
		"port", cfg.Server.Port,
		"probe_timeout", cfg.Probe.Timeout.String(),
	)

	// Wire up dependencies by hand: repository -> prober -> service -> handler
	// No DI container - the graph stays explicit and traceable
	repo := memory.NewBookmarkRepository()
	prober := probe.NewHTTPProber(cfg.Probe.Timeout, appLogger.Logger)
	bookmarkService := service.NewBookmarkService(repo, prober)
	handler := httpHandler.NewHandler(bookmarkService, appLogger.Logger)

	mux := http.NewServeMux()

	// API routes
	mux.HandleFunc("/api/v1/bookmarks", handler.APIBookmarks)

	// Health check endpoint (for Kubernetes liveness probes)
	mux.HandleFunc("/health/live", handler.HealthCheck)

	if cfg.App.EnableMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// Form page, form submission, and short name redirects
	// Registered LAST because "/" matches everything
	mux.HandleFunc("/", handler.Root)

	// Recovery is outermost so it catches panics from the other middleware too;
	// the request ID must be assigned before logging runs so log lines carry it
	finalHandler := httpHandler.Chain(
		httpHandler.RecoveryMiddleware(appLogger.Logger),
		httpHandler.RequestIDMiddleware,
		httpHandler.LoggingMiddleware(appLogger),
		httpHandler.MetricsMiddleware,
	)(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", "error", err)
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests
	// In-flight probes are simply abandoned: the store is in-memory and a put
	// is atomic, so shutdown cannot corrupt anything
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server exited gracefully")
}
