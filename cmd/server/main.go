package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/taperlab/taper/internal/engine"
	xredis "github.com/taperlab/taper/internal/redis"
	"github.com/taperlab/taper/internal/server"
	"github.com/taperlab/taper/internal/server/handler"
	servermw "github.com/taperlab/taper/internal/server/middleware"
	"github.com/taperlab/taper/internal/storage"
	"github.com/taperlab/taper/internal/xhttp/middleware"
	"github.com/taperlab/taper/internal/xslog"
)

const (
	keyPort = "port"
	keyEnv  = "env"

	shutdownTimeout = 30 * time.Second
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := server.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	backend, err := initBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close backend", xslog.Error(err))
		}
	}()

	eng := engine.New(cfg.Engine)

	mux := server.NewMux(
		handler.NewAnalysis(eng),
		handler.NewPlan(eng),
		handler.NewProtocol(eng),
		handler.NewHealth(backend),
	)

	wrapped := middleware.Chain(mux,
		middleware.Recovery,
		middleware.Logging,
		middleware.Logger(logger),
		middleware.RequestID(),
		servermw.RateLimitWithBackend(backend),
		middleware.SecurityHeaders,
	)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(context.Background(), "shutdown signal received, shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initBackend(ctx context.Context, cfg server.Config, logger *slog.Logger) (storage.Backend, error) {
	if cfg.Redis.URL == "" {
		if cfg.Env.IsProduction() {
			return nil, errors.New("REDIS_URL is required in production")
		}
		logger.InfoContext(ctx, "using in-memory backend", slog.String(keyEnv, cfg.Env.String()))
		return storage.NewMemoryBackend(cfg.RateLimit.Limit, cfg.RateLimit.Burst), nil
	}

	client, err := xredis.New(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis client: %w", err)
	}

	logger.InfoContext(ctx, "using Redis backend")
	return storage.NewRedisBackend(client, int(cfg.RateLimit.Limit)), nil
}
