package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pinboard/internal/config"
	"pinboard/internal/dbmongo"
	"pinboard/internal/di"
	"pinboard/internal/media"
)

func main() {
	cfg := config.LoadConfig()
	logger, closeLog, err := di.ProvideLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer closeLog()

	mongoClient, closeMongo, err := di.ProvideMongo(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to mongodb", "error", err)
		return
	}
	defer closeMongo()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.MediaPort),
		Handler:           media.NewHTTPServer(dbmongo.NewPictureStorage(mongoClient, cfg), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("media server starting", "addr", srv.Addr, "base_url", cfg.Server.MediaBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("media server failed", "error", err)
			stop()
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("media server forced to shutdown", "error", err)
	}
}
