package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the root of the remote storefront API (auth + orders).
	APIBaseURL string `env:"API_BASE_URL, default=https://api.udehglobal.shop/api"`

	// SearchLimit caps the autocomplete result list.
	SearchLimit int `env:"SEARCH_LIMIT, default=8"`

	Storage StorageConfig
}

// StorageConfig selects and parameterises the durable key-value backend.
type StorageConfig struct {
	// Backend is one of bolt, redis, memory.
	Backend string `env:"STORAGE_BACKEND, default=bolt"`

	BoltPath string `env:"STORAGE_BOLT_PATH, default=storefront.db"`

	RedisAddr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	RedisDB     int    `env:"REDIS_DB,     default=0"`
	RedisPrefix string `env:"REDIS_PREFIX, default=storefront:"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch cfg.Storage.Backend {
	case "bolt", "redis", "memory":
	default:
		return nil, fmt.Errorf("load config: unknown storage backend %q", cfg.Storage.Backend)
	}

	return &cfg, nil
}
