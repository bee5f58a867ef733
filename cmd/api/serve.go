package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/shift-scheduler/internal/db"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/shift-scheduler/internal/logger"
	"github.com/BruksfildServices01/shift-scheduler/internal/routes"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn("unknown shift timezone, using default",
			zap.String("timezone", cfg.Timezone),
			zap.String("default", timezone.DefaultTimezone))
		cfg.Timezone = timezone.DefaultTimezone
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		rdb = cache.NewRedisClient(cfg)
		defer rdb.Close()

		if err := rdb.Ping(cmd.Context()).Err(); err != nil {
			log.Warn("redis unreachable, user cache will fall through", zap.Error(err))
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())

	closeAudit := routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Redis:  rdb,
	})
	defer closeAudit()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
