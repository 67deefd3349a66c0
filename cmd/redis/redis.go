package redisclient

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/redis/go-redis/v9"
)

// ErrDisabled is returned by New when REDIS_ENABLED is false.
var ErrDisabled = fmt.Errorf("redis disabled by configuration")

// New builds a Redis client and pings it within the dial timeout. The client
// is closed again when the ping fails.
func New(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}
	if !cfg.Redis.Enabled {
		return nil, ErrDisabled
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Redis.DialTimeout)
	defer cancel()

	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	return c, nil
}
