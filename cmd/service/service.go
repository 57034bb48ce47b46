// @title        Recipe App API
// @version      1.0
// @description  Recipe App 的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Bearer <token> 或 Token <token>
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"recipe-app/internal/cache"
	"recipe-app/internal/config"
	"recipe-app/internal/database"
	"recipe-app/internal/logging"
	"recipe-app/internal/router"
	"recipe-app/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	shutdownSignal  = notifyShutdown
	exitFunc        = os.Exit
)

func notifyShutdown() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log.Logger = logger

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, cfg.WorkerQueue)
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(logging.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, wp, router.Options{
		TokenTTL:          cfg.TokenTTL,
		PrincipalCacheTTL: cfg.PrincipalCacheTTL,
		TokenRateLimit:    cfg.TokenRateLimit,
		TokenRateBurst:    cfg.TokenRateBurst,
	})

	ctx, stop := shutdownSignal()
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server starting")
		errCh <- startServer(e, cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownServer(shutdownCtx, e); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
