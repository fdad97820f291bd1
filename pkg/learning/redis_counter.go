package learning

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis token counter configuration
type RedisConfig struct {
	// Redis connection
	RedisURL    string `json:"redis_url" yaml:"redis_url"`
	KeyPrefix   string `json:"key_prefix" yaml:"key_prefix"`
	DatabaseNum int    `json:"database_num" yaml:"database_num"`

	// Fields per pipeline flush
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// Expiry for per-run count hashes, in case a run dies before Release
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// DefaultRedisConfig returns default Redis configuration
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		RedisURL:    "redis://localhost:6379",
		KeyPrefix:   "yearclass:vocab",
		DatabaseNum: 0,
		BatchSize:   500,
		TTL:         time.Hour,
	}
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, config *RedisConfig) (*redis.Client, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	opt.DB = config.DatabaseNum
	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("Redis connection failed: %w", err)
	}

	return client, nil
}

// RedisCounter accumulates token counts in a Redis hash owned by one vocabulary build.
// Several processes or workers can add to the same hash.
type RedisCounter struct {
	client *redis.Client
	config *RedisConfig
	key    string
}

// NewRedisCounter creates a counter on a fresh per-run hash
func NewRedisCounter(client *redis.Client, config *RedisConfig) *RedisCounter {
	if config == nil {
		config = DefaultRedisConfig()
	}
	return &RedisCounter{
		client: client,
		config: config,
		key:    fmt.Sprintf("%s:run:%s", config.KeyPrefix, uuid.NewString()),
	}
}

// RedisCounterFactory returns a CounterFactory creating one RedisCounter per build
func RedisCounterFactory(client *redis.Client, config *RedisConfig) CounterFactory {
	return func(ctx context.Context) (TokenCounter, error) {
		return NewRedisCounter(client, config), nil
	}
}

// Key returns the Redis hash holding this run's counts
func (rc *RedisCounter) Key() string {
	return rc.key
}

// Add merges partial counts with pipelined HINCRBY
func (rc *RedisCounter) Add(ctx context.Context, counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}

	batch := rc.config.BatchSize
	if batch < 1 {
		batch = len(counts)
	}

	pipe := rc.client.Pipeline()
	pending := 0

	for token, n := range counts {
		pipe.HIncrBy(ctx, rc.key, token, int64(n))
		pending++

		if pending >= batch {
			if _, err := pipe.Exec(ctx); err != nil {
				return fmt.Errorf("token count update failed: %w", err)
			}
			pipe = rc.client.Pipeline()
			pending = 0
		}
	}

	if rc.config.TTL > 0 {
		pipe.Expire(ctx, rc.key, rc.config.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("token count update failed: %w", err)
	}

	return nil
}

// Counts reads the merged totals back
func (rc *RedisCounter) Counts(ctx context.Context) (map[string]int, error) {
	fields, err := rc.client.HGetAll(ctx, rc.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read token counts: %w", err)
	}

	counts := make(map[string]int, len(fields))
	for token, raw := range fields {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt count for token %q: %w", token, err)
		}
		counts[token] = n
	}

	return counts, nil
}

// Release deletes the per-run hash
func (rc *RedisCounter) Release(ctx context.Context) error {
	return rc.client.Del(ctx, rc.key).Err()
}
