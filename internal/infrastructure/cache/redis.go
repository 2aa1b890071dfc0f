package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/logger"
)

const pingTimeout = 2 * time.Second

// RedisClient is the optional shared store behind the rate counters.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         cfg.Host,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     10,
			MinIdleConns: 1,
			MaxRetries:   1,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		}),
	}
}

// Connect checks reachability once so startup can fall back to in-memory counters.
func (r *RedisClient) Connect(ctx context.Context) error {
	if err := r.Ping(ctx); err != nil {
		return err
	}
	logger.Info("[REDIS] connected", map[string]interface{}{"addr": r.Client.Options().Addr})
	return nil
}

// Ping is used by Connect and the health endpoint.
func (r *RedisClient) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Counter returns a rate counter whose keys live under prefix.
func (r *RedisClient) Counter(prefix string) *RedisCounter {
	return NewRedisCounter(r.Client, prefix)
}

func (r *RedisClient) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
