package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// ObservabilityConfig holds logging and OpenTelemetry configuration.
type ObservabilityConfig struct {
	OTelEnabled bool   `env:"TODOS_OTEL_ENABLED" default:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" default:"todos"`
	Protocol    string `env:"OTEL_EXPORTER_OTLP_PROTOCOL" default:"http/protobuf"`

	// LogLevel is one of debug, info, warn, error. Empty derives it from the environment.
	LogLevel string `env:"TODOS_LOG_LEVEL"`
}

// Validate validates the observability configuration.
func (c *ObservabilityConfig) Validate() error {
	switch c.Protocol {
	case "http/protobuf", "grpc":
	default:
		return fmt.Errorf("unsupported OTEL_EXPORTER_OTLP_PROTOCOL: %q", c.Protocol)
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the configured slog level. Without an explicit level, dev
// deployments log at debug and everything else at info.
func (c ObservabilityConfig) Level(environment string) slog.Level {
	if c.LogLevel != "" {
		if level, err := ParseLogLevel(c.LogLevel); err == nil {
			return level
		}
	}
	if environment == "dev" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// ParseLogLevel converts a level name into a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid TODOS_LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
