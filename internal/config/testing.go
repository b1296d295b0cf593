package config

import (
	"fmt"

	"github.com/rezkam/todos/internal/env"
)

// TestConfig holds configuration for integration tests that need a real PostgreSQL.
type TestConfig struct {
	DSN string `env:"TODOS_TEST_DB_DSN"`
}

// Validate validates the test configuration.
func (c *TestConfig) Validate() error {
	if c.DSN == "" {
		return fmt.Errorf("TODOS_TEST_DB_DSN is required")
	}
	return nil
}

// LoadTestConfig loads and validates test configuration from environment.
func LoadTestConfig() (*TestConfig, error) {
	cfg := &TestConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load test config: %w", err)
	}

	return cfg, nil
}
