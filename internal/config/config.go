// Package config loads service settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppPort int `env:"APP_PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// JWTSecret signs access tokens. The service layer reads it from the
	// environment on every call, so it is only validated here.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	// TokenTTL <= 0 issues tokens without exp; they stay valid until revoked.
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"0"`
	PrincipalCacheTTL time.Duration `env:"PRINCIPAL_CACHE_TTL" envDefault:"5m"`

	WorkerCount int `env:"WORKER_COUNT" envDefault:"1"`
	WorkerQueue int `env:"WORKER_QUEUE" envDefault:"64"`

	// token endpoint 的每 IP 限流
	TokenRateLimit float64 `env:"TOKEN_RATE_LIMIT" envDefault:"5"`
	TokenRateBurst int     `env:"TOKEN_RATE_BURST" envDefault:"10"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.AppPort)
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT must be positive, got %d", c.WorkerCount)
	}
	if c.WorkerQueue < 0 {
		return fmt.Errorf("WORKER_QUEUE must not be negative, got %d", c.WorkerQueue)
	}
	if c.TokenRateLimit <= 0 {
		return fmt.Errorf("TOKEN_RATE_LIMIT must be positive, got %v", c.TokenRateLimit)
	}
	if c.PrincipalCacheTTL <= 0 {
		return fmt.Errorf("PRINCIPAL_CACHE_TTL must be positive, got %s", c.PrincipalCacheTTL)
	}
	return nil
}
