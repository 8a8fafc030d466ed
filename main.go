package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"soa/post-service/config"
	"soa/post-service/database"
	"soa/post-service/handlers"
	"soa/post-service/logger"
	"soa/post-service/services"
)

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.Open(cfg.Database, zl)
	if err != nil {
		zl.Fatal("Unable to connect to the database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zl.Error("Error closing database connection", zap.Error(err))
		}
	}()

	router := handlers.NewRouter(services.NewPostService(db, zl), zl, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("Server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Graceful shutdown failed", zap.Error(err))
	}
	zl.Info("Server stopped")
}
