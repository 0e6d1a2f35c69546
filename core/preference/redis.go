package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "site"

// ErrClientIDRequired is returned by NewRedis when no client ID is given.
var ErrClientIDRequired = errors.New("preference: client id is required")

// Redis stores one client's preference in Redis under {prefix}:{clientID}:preferredLang.
type Redis struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// RedisOption configures a Redis store.
type RedisOption func(*redisConfig)

type redisConfig struct {
	prefix string
	ttl    time.Duration
}

// WithPrefix sets the key namespace (default "site").
func WithPrefix(prefix string) RedisOption {
	return func(c *redisConfig) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithTTL expires the stored preference after d. Zero keeps it forever.
func WithTTL(d time.Duration) RedisOption {
	return func(c *redisConfig) {
		c.ttl = d
	}
}

// NewRedis returns a store for clientID.
func NewRedis(client redis.UniversalClient, clientID string, opts ...RedisOption) (*Redis, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}
	cfg := redisConfig{prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Redis{
		client: client,
		key:    fmt.Sprintf("%s:%s:%s", cfg.prefix, clientID, Key),
		ttl:    cfg.ttl,
	}, nil
}

// Key returns the Redis key used by the store.
func (s *Redis) Key() string {
	return s.key
}

// Load implements Store. A missing key is not an error.
func (s *Redis) Load(ctx context.Context) (string, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("preference: load %s: %w", s.key, err)
	}
	return v, nil
}

// Save implements Store.
func (s *Redis) Save(ctx context.Context, code string) error {
	if err := s.client.Set(ctx, s.key, code, s.ttl).Err(); err != nil {
		return fmt.Errorf("preference: save %s: %w", s.key, err)
	}
	return nil
}
