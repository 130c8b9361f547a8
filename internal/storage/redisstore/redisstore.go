// Package redisstore provides a Redis-backed implementation of the storage.Store
// interface. The whole state is kept as one exported JSON document.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/storage"
)

// Ensure RedisStore implements storage.Store
var _ storage.Store = (*RedisStore)(nil)

// DefaultKey is the key the snapshot is stored under.
const DefaultKey = "whist:state"

// RedisStore implements storage.Store using a single Redis string key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// New connects to Redis at addr and verifies the connection with PING.
func New(ctx context.Context, addr, password, key string) (*RedisStore, error) {
	if key == "" {
		key = DefaultKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

// Load reads and validates the stored snapshot.
func (s *RedisStore) Load(ctx context.Context) (models.AppState, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewAppState(), nil
	}
	if err != nil {
		return models.NewAppState(), fmt.Errorf("failed to get state: %w", err)
	}

	state, err := storage.Import(data)
	if err != nil {
		return models.NewAppState(), fmt.Errorf("failed to decode state: %w", err)
	}
	return state, nil
}

// Save overwrites the stored snapshot.
func (s *RedisStore) Save(ctx context.Context, state models.AppState) error {
	data, err := storage.Export(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
