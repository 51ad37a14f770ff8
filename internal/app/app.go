// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/harviniv9/task-booking-management/internal/adapter/notify"
	"github.com/harviniv9/task-booking-management/internal/adapter/postgres"
	taskrepo "github.com/harviniv9/task-booking-management/internal/adapter/postgres/task"
	userrepo "github.com/harviniv9/task-booking-management/internal/adapter/postgres/user"
	"github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/config"
	authsvc "github.com/harviniv9/task-booking-management/internal/service/auth"
	tasksvc "github.com/harviniv9/task-booking-management/internal/service/task"
	usersvc "github.com/harviniv9/task-booking-management/internal/service/user"
	"github.com/harviniv9/task-booking-management/internal/transport/middleware"
	"github.com/harviniv9/task-booking-management/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled. Shutdown drains in-flight requests up to the
// configured timeout.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	tasks := taskrepo.New(pool)
	users := userrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	sink := notify.NewConsoleSink(logger)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	taskService := tasksvc.NewService(logger, tasks, users, sink, txm)
	userService := usersvc.NewService(logger, users)
	authService := authsvc.NewService(logger, users, jwtMgr)

	mux := rest.NewRouter(
		rest.NewTaskHandler(taskService, logger),
		rest.NewUserHandler(userService, logger),
		rest.NewAuthHandler(authService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		// Rate limiting sits before auth so rejected requests stay cheap.
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	// Auth runs before Logger so request logs can carry the username.
	mws = append(mws,
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
		middleware.Logger(logger),
	)

	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped", slog.String("uptime_ended_at", time.Now().UTC().Format(time.RFC3339)))
	return nil
}
