package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tbrown320/compliance-cicd-pipeline/internal/api"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/api/middleware"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/compliance/inmemory"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/config"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/logger"
)

func main() {
	cfg := config.Load()

	// Parse command-line flags; -port overrides the PORT env var
	var (
		port = flag.String("port", cfg.Port, "HTTP server port")
	)
	flag.Parse()

	// Initialize loggers
	log := logger.New()

	auditLog, auditCloser, err := logger.NewAudit(cfg.AuditLogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open audit log")
	}
	defer auditCloser.Close()

	// Initialize the transaction store. In-memory only: records do not
	// survive a restart.
	store := inmemory.NewStore()

	// Create router
	router := api.NewRouter(store, auditLog, cfg.Version)

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(router),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("port", *port).
			Str("version", cfg.Version).
			Str("audit_log", cfg.AuditLogPath).
			Msg("Starting compliance API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
