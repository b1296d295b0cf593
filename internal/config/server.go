package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	"github.com/rezkam/todos/internal/env"
)

// ServerConfig holds all configuration for the server binary.
type ServerConfig struct {
	App             AppConfig
	Database        DatabaseConfig
	HTTP            HTTPConfig
	Observability   ObservabilityConfig
	HealthTimeout   time.Duration `env:"TODOS_HEALTH_TIMEOUT" default:"2s"`
	ShutdownTimeout time.Duration `env:"TODOS_SHUTDOWN_TIMEOUT" default:"10s"`
}

// AppConfig identifies the running deployment. Both values are echoed in API responses.
type AppConfig struct {
	Environment string `env:"ENVIRONMENT" default:"dev"`
	Version     string `env:"APP_VERSION" default:"1.0.0"`
}

// HTTPConfig holds HTTP server configuration.
// Zero durations and sizes fall back to the HTTP server defaults.
type HTTPConfig struct {
	Host               string        `env:"TODOS_HTTP_HOST"`
	Port               string        `env:"TODOS_HTTP_PORT" default:"5000"`
	ReadTimeout        time.Duration `env:"TODOS_HTTP_READ_TIMEOUT"`
	WriteTimeout       time.Duration `env:"TODOS_HTTP_WRITE_TIMEOUT"`
	IdleTimeout        time.Duration `env:"TODOS_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout  time.Duration `env:"TODOS_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes     int           `env:"TODOS_HTTP_MAX_HEADER_BYTES"`
	MaxBodyBytes       int64         `env:"TODOS_HTTP_MAX_BODY_BYTES"`
	CORSAllowedOrigins []string      `env:"TODOS_CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadServerConfig loads and validates server configuration from environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv merges variables from the given files (default ".env") into the process
// environment. Variables that are already set are left alone, and missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return nil
}
