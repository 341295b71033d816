package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisPrefix namespaces the slots in a shared Redis database.
const redisPrefix = "bank:"

// Redis stores each key in a Redis string, so that a session can be shared
// between machines.
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedis returns a storage on the Redis server at url, e.g.
// "redis://localhost:6379/0".
func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url %q: %w", url, err)
	}
	return &Redis{client: redis.NewClient(opts), timeout: 5 * time.Second}, nil
}

func (r *Redis) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// Get returns the content of key, or an error wrapping fs.ErrNotExist.
func (r *Redis) Get(key string) ([]byte, error) {
	ctx, cancel := r.context()
	defer cancel()
	data, err := r.client.Get(ctx, redisPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("cannot read slot %q: %w", key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read slot %q: %w", key, err)
	}
	return data, nil
}

// Set replaces the content of key, without expiration.
func (r *Redis) Set(key string, value []byte) error {
	ctx, cancel := r.context()
	defer cancel()
	if err := r.client.Set(ctx, redisPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (r *Redis) Remove(key string) error {
	ctx, cancel := r.context()
	defer cancel()
	if err := r.client.Del(ctx, redisPrefix+key).Err(); err != nil {
		return fmt.Errorf("cannot remove slot %q: %w", key, err)
	}
	return nil
}

// Close releases the connections to the server.
func (r *Redis) Close() error { return r.client.Close() }
