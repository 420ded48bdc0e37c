package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	"github.com/BruksfildServices01/customer-service/internal/bootstrap"
	"github.com/BruksfildServices01/customer-service/internal/config"
	dbpkg "github.com/BruksfildServices01/customer-service/internal/db"
	authDomain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	"github.com/BruksfildServices01/customer-service/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/customer-service/internal/infra/repository"
	"github.com/BruksfildServices01/customer-service/internal/observability"
	"github.com/BruksfildServices01/customer-service/internal/routes"
)

const (
	shutdownTimeout = 15 * time.Second
	purgeInterval   = 10 * time.Minute
)

func main() {

	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg, logger)
	metrics := observability.NewMetrics()

	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer dispatcher.Close()

	// ======================================================
	// TOKEN STORE
	// ======================================================
	var (
		tokens     authDomain.TokenStore
		tokenTable *infraRepo.TokenGormStore
	)
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = client.Close() }()

		tokens = cache.NewTokenRedisStore(client)
		logger.Info("token store: redis")
	} else {
		tokenTable = infraRepo.NewTokenGormStore(db)
		tokens = tokenTable
		logger.Info("token store: database")
	}

	// ======================================================
	// ADMIN
	// ======================================================
	bootstrap.EnsureAdmin(
		ctx,
		infraRepo.NewCustomerGormRepository(db, logger),
		cfg.Admin,
		dispatcher,
		logger,
	)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Tokens:  tokens,
		Audit:   dispatcher,
		Metrics: metrics,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if tokenTable != nil {
		g.Go(func() error {
			purgeExpiredTokens(gctx, tokenTable, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

// purgeExpiredTokens removes dead token rows until ctx is cancelled.
func purgeExpiredTokens(ctx context.Context, store *infraRepo.TokenGormStore, logger *zap.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("error purging expired tokens", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Debug("expired tokens purged", zap.Int64("count", n))
			}
		}
	}
}
