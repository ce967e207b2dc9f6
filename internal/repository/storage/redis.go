package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = 2 * time.Second
)

var ErrRedisUnavailable = errors.New("redis unavailable")

// RedisStorage holds the connection used to persist view states. A view
// client saves one key per applied snapshot, so a small pool is enough.
type RedisStorage struct {
	Connection *redis.Client
}

func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	storage := &RedisStorage{
		Connection: redis.NewClient(&redis.Options{
			Addr:         addr,
			DialTimeout:  dialTimeout,
			ReadTimeout:  ioTimeout,
			WriteTimeout: ioTimeout,
			PoolSize:     4,
		}),
	}

	if err := storage.Ping(ctx); err != nil {
		_ = storage.Connection.Close()
		return nil, err
	}

	return storage, nil
}

func (that *RedisStorage) Ping(ctx context.Context) error {
	if err := that.Connection.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w at %s: %w", ErrRedisUnavailable, that.Connection.Options().Addr, err)
	}

	return nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	return nil
}
