// Package cache stores JSON-encoded values with a TTL, in process memory or in redis.
package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

type Cache interface {
	// Get decodes the cached value of key into dest. found is false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

type Config struct {
	Provider string        `mapstructure:"provider" default:"memory" validate:"oneof=memory redis"`
	TTL      time.Duration `mapstructure:"ttl" default:"5m"`
	RedisURL string        `mapstructure:"redis_url" validate:"required_if=Provider redis"`
	Prefix   string        `mapstructure:"prefix" default:"workforce:"`
}

func New(cfg Config) (Cache, error) {
	switch cfg.Provider {
	case "", ProviderMemory:
		return NewMemory(cfg.TTL), nil
	case ProviderRedis:
		return NewRedis(cfg.RedisURL, cfg.Prefix, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown cache provider %q", cfg.Provider)
	}
}
