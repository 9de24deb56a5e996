package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/fieldops/towtrack/internal/pkg/models"
)

// RedisClient represents a Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.Client
}

// Set stores a key-value pair with an optional expiration
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.Client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Delete removes a key
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// Expire sets a TTL on a key
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.Client.Expire(ctx, key, ttl).Err()
}

// HMSet sets multiple fields of a hash
func (r *RedisClient) HMSet(ctx context.Context, key string, fields map[string]interface{}) error {
	return r.Client.HSet(ctx, key, fields).Err()
}

// HMGet retrieves multiple fields of a hash, returning empty strings for
// missing fields
func (r *RedisClient) HMGet(ctx context.Context, key string, fields ...string) ([]string, error) {
	values, err := r.Client.HMGet(ctx, key, fields...).Result()
	if err != nil {
		return nil, err
	}

	result := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			result[i] = s
		}
	}
	return result, nil
}

// ZAdd inserts a member into a sorted set with the given score
func (r *RedisClient) ZAdd(ctx context.Context, key string, score float64, member string) error {
	return r.Client.ZAdd(ctx, key, &redis.Z{Score: score, Member: member}).Err()
}

// ZRangeByScore returns members with scores inside [min, max], ascending
func (r *RedisClient) ZRangeByScore(ctx context.Context, key, min, max string) ([]string, error) {
	return r.Client.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: min, Max: max}).Result()
}

// ZRemRangeByScore removes members with scores inside [min, max]
func (r *RedisClient) ZRemRangeByScore(ctx context.Context, key, min, max string) error {
	return r.Client.ZRemRangeByScore(ctx, key, min, max).Err()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
