package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"thermodash/internal/auth"
	"thermodash/internal/httpserver"
	"thermodash/internal/telemetry"
	"thermodash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		return serve(cmd.Context(), a)
	},
}

func serve(parent context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := telemetry.NewProvider(a.cfg.OTLPEndpoint, a.cfg.TraceStdout, a.lg)
	defer shutdownTracing()

	if err := a.st.Migrate(ctx); err != nil {
		return err
	}
	if a.cfg.SeedFile != "" {
		if err := applySeed(ctx, a, a.cfg.SeedFile); err != nil {
			return err
		}
	}

	sessions, closeSessions, err := newSessionStore(ctx, a)
	if err != nil {
		return err
	}
	defer closeSessions()
	sm := auth.NewManager(sessions, a.st, a.cfg.SessionSecret, a.cfg.SessionTTL, a.lg)
	go sm.RunJanitor(ctx, auth.JanitorInterval)

	rd, err := web.NewRenderer(a.lg)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr: ":" + a.cfg.Port,
		Handler: httpserver.NewRouter(a.st, sm, rd, httpserver.Options{
			MaxCount:   a.cfg.MaxCount,
			RequestLog: a.cfg.Development(),
		}, a.lg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		a.lg.Infow("listening", "port", a.cfg.Port, "session_backend", a.cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	a.lg.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionStore(ctx context.Context, a *app) (auth.SessionStore, func(), error) {
	switch a.cfg.SessionBackend {
	case "memory":
		a.lg.Warnw("sessions are kept in memory and are lost on restart")
		return auth.NewMemoryStore(), func() {}, nil
	case "redis":
		opts, err := redis.ParseURL(a.cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return auth.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	default:
		return auth.NewGormStore(a.db, a.cfg.QueryTimeout), func() {}, nil
	}
}

