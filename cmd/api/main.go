package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/yanews/internal/config"
	"github.com/emilythestrangee/yanews/internal/database"
	"github.com/emilythestrangee/yanews/internal/logger"
	"github.com/emilythestrangee/yanews/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg.DB, zlog)
	if err != nil {
		zlog.Fatalw("failed to initialize database", "error", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			zlog.Errorw("closing database", "error", err)
		}
	}()

	srv, err := server.NewServer(cfg, db, zlog)
	if err != nil {
		zlog.Fatalw("failed to initialize server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Errorw("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("forced shutdown", "error", err)
	}
}
