// Package cache wraps an optional Redis connection. When the cache is
// disabled the system stays inert and Client returns nil.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/JaimeStill/showroom/pkg/lifecycle"
)

// ErrDisabled is returned by Ping when the cache is not configured.
var ErrDisabled = errors.New("cache disabled")

// System exposes the Redis client and its lifecycle.
type System interface {
	Enabled() bool
	Client() *redis.Client
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error
}

type cache struct {
	cfg    *Config
	client *redis.Client
	logger *slog.Logger
}

// New creates the cache system. No connection is attempted until Start.
func New(cfg *Config, logger *slog.Logger) System {
	c := &cache{
		cfg:    cfg,
		logger: logger.With("system", "cache"),
	}
	if cfg.Enabled {
		c.client = redis.NewClient(&redis.Options{
			Addr:        cfg.Addr,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: cfg.DialTimeoutDuration(),
		})
	}
	return c
}

func (c *cache) Enabled() bool {
	return c.client != nil
}

func (c *cache) Client() *redis.Client {
	return c.client
}

func (c *cache) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrDisabled
	}
	return c.client.Ping(ctx).Err()
}

// Start verifies the connection and registers the close hook. A
// disabled cache starts as a no-op.
func (c *cache) Start(lc *lifecycle.Coordinator) error {
	if c.client == nil {
		c.logger.Info("cache disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(lc.Context(), c.cfg.DialTimeoutDuration())
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		return fmt.Errorf("connect redis %s: %w", c.cfg.Addr, err)
	}
	c.logger.Info("cache connected", "addr", c.cfg.Addr, "db", c.cfg.DB)

	lc.OnCleanup(func() {
		if err := c.client.Close(); err != nil {
			c.logger.Error("cache close failed", "error", err)
			return
		}
		c.logger.Info("cache connection closed")
	})
	return nil
}
