package main

import (
	"context"
	"io"
	"log/slog"
	"net/url"
)

// shutdowner abstracts the HTTP server so tests can verify cleanup ordering
// without binding a port.
type shutdowner interface {
	Shutdown(context.Context) error
}

// flusher names a telemetry provider's Shutdown for logging.
type flusher struct {
	name     string
	shutdown func(context.Context) error
}

// newCleanup returns the shutdown hook: drain in-flight requests, close the
// store, then flush telemetry so the shutdown logs are exported too.
func newCleanup(ctx context.Context, server shutdowner, store io.Closer, flushers ...flusher) func() {
	return func() {
		if server != nil {
			if err := server.Shutdown(ctx); err != nil {
				slog.ErrorContext(ctx, "failed to shut down HTTP server", "error", err)
			}
		}

		if store != nil {
			if err := store.Close(); err != nil {
				slog.ErrorContext(ctx, "failed to close store", "error", err)
			}
		}

		for _, f := range flushers {
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
			if err := f.shutdown(flushCtx); err != nil {
				slog.ErrorContext(ctx, "failed to shut down "+f.name, "error", err)
			}
			cancel()
		}
	}
}

// maskPassword masks the password in a connection string for logging.
func maskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		// fall back to full redaction
		return "[REDACTED]"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxxx")
		}
	}
	return u.String()
}
