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

	"github.com/rezkam/todos/internal/application/todo"
	"github.com/rezkam/todos/internal/config"
	apihttp "github.com/rezkam/todos/internal/infrastructure/http"
	"github.com/rezkam/todos/internal/infrastructure/http/handler"
	"github.com/rezkam/todos/pkg/observability"
)

// telemetryFlushTimeout bounds each provider shutdown so an unreachable collector cannot hang exit.
const telemetryFlushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		// slog may not be initialized if config fails
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Root context, cancelled on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	obsCfg := observability.Config{
		Enabled:        cfg.Observability.OTelEnabled,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.App.Version,
		Protocol:       cfg.Observability.Protocol,
		Level:          cfg.Observability.Level(cfg.App.Environment),
	}

	lp, logger, err := observability.InitLogger(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	slog.SetDefault(logger)

	tp, err := observability.InitTracerProvider(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init tracer provider: %w", err)
	}

	mp, err := observability.InitMeterProvider(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init meter provider: %w", err)
	}

	slog.InfoContext(ctx, "starting todos service",
		"environment", cfg.App.Environment,
		"version", cfg.App.Version)

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	slog.InfoContext(ctx, "storage initialized",
		"driver", cfg.Database.Driver,
		"dsn", maskPassword(cfg.Database.DSN))

	// A failed schema init leaves the server up; requests then fail with 500 and /health reports the cause.
	if cfg.Database.AutoMigrate {
		if err := store.InitSchema(ctx); err != nil {
			slog.ErrorContext(ctx, "Database initialization error", "error", err)
		} else {
			slog.InfoContext(ctx, "Database initialized successfully")
		}
	}

	svc := todo.NewService(store, todo.Config{
		Environment:   cfg.App.Environment,
		Version:       cfg.App.Version,
		HealthTimeout: cfg.HealthTimeout,
	})

	server := apihttp.NewAPIServer(handler.NewTodoHandler(svc), apihttp.ServerConfig{
		Host:               cfg.HTTP.Host,
		Port:               cfg.HTTP.Port,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:       cfg.HTTP.MaxBodyBytes,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	})
	slog.InfoContext(ctx, "todos API configured",
		"addr", server.Addr(),
		"environment", svc.Environment(),
		"version", svc.Version(),
	)

	errResult := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errResult <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down")
	case runErr = <-errResult:
	}

	// The root context is already cancelled here, so shutdown gets a fresh deadline.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	cleanup := newCleanup(shutdownCtx, server, store,
		flusher{"meter provider", mp.Shutdown},
		flusher{"tracer provider", tp.Shutdown},
		flusher{"logger provider", lp.Shutdown},
	)
	cleanup()

	return runErr
}
