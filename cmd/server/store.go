package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rezkam/todos/internal/application/todo"
	"github.com/rezkam/todos/internal/config"
	"github.com/rezkam/todos/internal/infrastructure/persistence/postgres"
	"github.com/rezkam/todos/internal/infrastructure/persistence/sqlite"
)

// store is what the server needs from a persistence backend.
type store interface {
	todo.Repository
	InitSchema(ctx context.Context) error
	io.Closer
}

var (
	_ store = (*postgres.Store)(nil)
	_ store = (*sqlite.Store)(nil)
)

// openStore builds the backend selected by TODOS_DB_DRIVER. Neither backend
// dials the database here, so an unreachable server does not prevent startup.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		s, err := postgres.NewStoreWithConfig(ctx, postgres.DBConfig{
			DSN:             cfg.DSN,
			MaxConns:        cfg.MaxConns,
			MinConns:        cfg.MinConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.NewStore(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}
}
