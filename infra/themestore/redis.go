package themestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces keys in a shared Redis.
const DefaultRedisPrefix = "fxconv:"

// Redis stores each key as a plain Redis string without expiry.
type Redis struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedis creates a store from a redis:// URL.
func NewRedis(url, prefix string, logger *slog.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisWithClient(redis.NewClient(opt), prefix, logger), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, prefix string, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{client: client, prefix: prefix, logger: logger}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis theme miss", "key", key)
		return "", theme.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Redis theme get error", "key", key, "error", err)
		return "", err
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.logger.Error("Redis theme set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis theme set", "key", key, "value", value)
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ theme.Store = (*Redis)(nil)
