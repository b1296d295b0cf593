package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rezkam/todos/internal/domain"
)

const instrumentationName = "github.com/rezkam/todos/internal/application/todo"

// Default configuration values.
const (
	DefaultEnvironment   = "dev"
	DefaultVersion       = "1.0.0"
	DefaultHealthTimeout = 2 * time.Second
)

// Health status tags.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Config holds configuration for the Service.
type Config struct {
	Environment   string
	Version       string
	HealthTimeout time.Duration
}

// Health is the outcome of a database reachability check.
type Health struct {
	Status      string
	Environment string
	Version     string
	CheckedAt   time.Time
	Err         error
}

// Healthy reports whether the ping succeeded.
func (h Health) Healthy() bool {
	return h.Err == nil
}

// Service provides business logic for todo management.
// It validates input before touching the Repository and holds no state between calls.
type Service struct {
	repo   Repository
	config Config
	now    func() time.Time

	tracer     trace.Tracer
	operations metric.Int64Counter
}

// NewService creates a new todo service.
// Applies defaults for zero config values.
func NewService(repo Repository, config Config) *Service {
	if config.Environment == "" {
		config.Environment = DefaultEnvironment
	}
	if config.Version == "" {
		config.Version = DefaultVersion
	}
	if config.HealthTimeout <= 0 {
		config.HealthTimeout = DefaultHealthTimeout
	}

	// The global meter falls back to a no-op implementation, so the error path
	// only happens with a misconfigured SDK.
	operations, err := otel.Meter(instrumentationName).Int64Counter("todos.operations",
		metric.WithDescription("Todo service operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &Service{
		repo:       repo,
		config:     config,
		now:        func() time.Time { return time.Now().UTC() },
		tracer:     otel.Tracer(instrumentationName),
		operations: operations,
	}
}

// Environment returns the deployment tag echoed in responses.
func (s *Service) Environment() string {
	return s.config.Environment
}

// Version returns the application version reported by health checks.
func (s *Service) Version() string {
	return s.config.Version
}

// ListTodos returns all todos ordered by creation time, newest first.
func (s *Service) ListTodos(ctx context.Context) (todos []domain.Todo, err error) {
	ctx, end := s.begin(ctx, "list")
	defer func() { end(err) }()

	todos, err = s.repo.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	if todos == nil {
		todos = []domain.Todo{}
	}

	return todos, nil
}

// CreateTodo validates the input and stores a new todo.
// Validation failures return before the repository is called.
func (s *Service) CreateTodo(ctx context.Context, params domain.CreateTodoParams) (todo *domain.Todo, err error) {
	ctx, end := s.begin(ctx, "create")
	defer func() { end(err) }()

	title, completed, err := params.Validate()
	if err != nil {
		return nil, err
	}

	todo, err = s.repo.CreateTodo(ctx, title.String(), completed)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update. Fields absent from params keep their stored values.
func (s *Service) UpdateTodo(ctx context.Context, params domain.UpdateTodoParams) (todo *domain.Todo, err error) {
	ctx, end := s.begin(ctx, "update", attribute.Int64("todo.id", params.ID))
	defer func() { end(err) }()

	if err = params.Validate(); err != nil {
		return nil, err
	}

	todo, err = s.repo.UpdateTodo(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo %d: %w", params.ID, err)
	}

	return todo, nil
}

// DeleteTodo removes a todo. Deleting an unknown ID returns domain.ErrTodoNotFound every time.
func (s *Service) DeleteTodo(ctx context.Context, id int64) (err error) {
	ctx, end := s.begin(ctx, "delete", attribute.Int64("todo.id", id))
	defer func() { end(err) }()

	if err = s.repo.DeleteTodo(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}

	return nil
}

// CheckHealth pings the database by acquiring and releasing one connection.
// It never returns an error itself; the ping outcome is carried in Health.
func (s *Service) CheckHealth(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, s.config.HealthTimeout)
	defer cancel()

	ctx, end := s.begin(ctx, "health")

	h := Health{
		Status:      StatusHealthy,
		Environment: s.config.Environment,
		Version:     s.config.Version,
		CheckedAt:   s.now(),
	}

	if err := s.repo.Ping(ctx); err != nil {
		h.Status = StatusUnhealthy
		h.Err = err
	}

	end(h.Err)
	return h
}

// begin starts a span for operation and returns a func that records the outcome.
func (s *Service) begin(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "todo."+operation, trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		outcome := outcomeOf(err)
		if outcome == "error" {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if s.operations != nil {
			s.operations.Add(ctx, 1, metric.WithAttributes(
				attribute.String("operation", operation),
				attribute.String("outcome", outcome),
			))
		}
		span.End()
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsValidation(err):
		return "invalid"
	case errors.Is(err, domain.ErrTodoNotFound):
		return "not_found"
	default:
		return "error"
	}
}
