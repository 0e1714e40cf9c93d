package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/adapter/media"
	"github.com/tcf245/dabia/internal/adapter/postgres"
	"github.com/tcf245/dabia/internal/adapter/postgres/card"
	"github.com/tcf245/dabia/internal/adapter/postgres/reviewlog"
	"github.com/tcf245/dabia/internal/adapter/postgres/user"
	"github.com/tcf245/dabia/internal/config"
	"github.com/tcf245/dabia/internal/metrics"
	"github.com/tcf245/dabia/internal/service/session"
	"github.com/tcf245/dabia/internal/transport/middleware"
	"github.com/tcf245/dabia/internal/transport/rest"
)

// Run is the application entry point. It wires configuration, the database,
// services and the HTTP server, and blocks until ctx is cancelled and the
// server has shut down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	userRepo := user.New(pool)
	cardRepo := card.New(pool)
	reviewRepo := reviewlog.New(pool)
	txm := postgres.NewTxManager(pool)

	checkSeedData(ctx, logger, cfg, userRepo, cardRepo)

	// Services.
	m := metrics.New()
	sessionService := session.NewService(
		logger, cardRepo, reviewRepo, txm, media.NewResolver(cfg.Storage), m,
		session.Config{DailyGoal: cfg.Session.DailyGoal, Location: cfg.Session.Location},
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.IdleTTL)
		defer limiter.Stop()
	}

	handler := NewRouter(RouterDeps{
		Config: cfg,
		Logger: logger,
		Handlers: Handlers{
			Health:  rest.NewHealthHandler(pool, BuildVersion()),
			Session: rest.NewSessionHandler(sessionService, logger),
		},
		Metrics:     m,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, logger, srv, cfg.Server)
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

type userChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type cardCounter interface {
	Count(ctx context.Context) (int, error)
}

// checkSeedData reports missing seed rows. Neither condition is fatal: the
// session endpoint answers with a null card when the table is empty, and
// review writes fail with 404 until the default user exists.
func checkSeedData(ctx context.Context, logger *slog.Logger, cfg *config.Config, users userChecker, cards cardCounter) {
	userID := cfg.Session.DefaultUser

	exists, err := users.Exists(ctx, userID)
	switch {
	case err != nil:
		logger.Warn("check default user", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
	case !exists:
		logger.Warn("default user is not seeded; run migrations", slog.String("user_id", userID.String()))
	}

	n, err := cards.Count(ctx)
	if err != nil {
		logger.Warn("count cards", slog.String("error", err.Error()))
		return
	}
	if n == 0 {
		logger.Warn("card table is empty; sessions will return no card")
		return
	}
	logger.Info("cards available", slog.Int("count", n))
}
