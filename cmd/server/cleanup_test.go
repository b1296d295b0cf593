package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/todos/internal/config"
)

func TestNewCleanup_StopsServerBeforeClosingStore(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey("test"), "marker")
	var callOrder []string

	server := &fakeServer{calls: &callOrder}
	store := &fakeStore{calls: &callOrder}
	flush := func(name string) flusher {
		return flusher{name, func(context.Context) error {
			callOrder = append(callOrder, name)
			return nil
		}}
	}

	cleanup := newCleanup(ctx, server, store, flush("meter"), flush("tracer"), flush("logger"))

	cleanup()

	require.Equal(t, []string{"serverShutdown", "storeClose", "meter", "tracer", "logger"}, callOrder)
	require.Equal(t, "marker", server.receivedCtx.Value(ctxKey("test")))
}

func TestNewCleanup_ContinuesAfterFailures(t *testing.T) {
	var callOrder []string

	server := &fakeServer{calls: &callOrder, err: errors.New("deadline exceeded")}
	store := &fakeStore{calls: &callOrder, err: errors.New("already closed")}

	cleanup := newCleanup(context.Background(), server, store, flusher{"tracer", func(context.Context) error {
		callOrder = append(callOrder, "tracer")
		return errors.New("collector unreachable")
	}})

	cleanup()

	assert.Equal(t, []string{"serverShutdown", "storeClose", "tracer"}, callOrder)
}

func TestNewCleanup_NilDependencies(t *testing.T) {
	assert.NotPanics(t, newCleanup(context.Background(), nil, nil))
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"password masked", "postgres://todos:s3cret@db:5432/todos?sslmode=disable", "postgres://todos:xxxxxx@db:5432/todos?sslmode=disable"},
		{"no password", "postgres://todos@db:5432/todos", "postgres://todos@db:5432/todos"},
		{"sqlite path", "/var/lib/todos/todos.db", "/var/lib/todos/todos.db"},
		{"unparseable", "postgres://todos:pw@db:port/x", "[REDACTED]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskPassword(tt.in))
		})
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite", func(t *testing.T) {
		s, err := openStore(ctx, config.DatabaseConfig{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "todos.db"),
		})
		require.NoError(t, err)
		defer s.Close()

		require.NoError(t, s.InitSchema(ctx))
		assert.NoError(t, s.Ping(ctx))
	})

	t.Run("postgres without a reachable server", func(t *testing.T) {
		s, err := openStore(ctx, config.DatabaseConfig{
			Driver: config.DriverPostgres,
			DSN:    "postgres://todos:pw@127.0.0.1:1/todos",
		})
		require.NoError(t, err)
		assert.NoError(t, s.Close())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := openStore(ctx, config.DatabaseConfig{Driver: "mysql", DSN: "x"})
		assert.ErrorIs(t, err, config.ErrUnknownDriver)
	})
}

type ctxKey string

type fakeServer struct {
	calls       *[]string
	receivedCtx context.Context
	err         error
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.receivedCtx = ctx
	*f.calls = append(*f.calls, "serverShutdown")
	return f.err
}

type fakeStore struct {
	calls *[]string
	err   error
}

func (s *fakeStore) Close() error {
	*s.calls = append(*s.calls, "storeClose")
	return s.err
}
