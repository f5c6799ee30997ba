package sink

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	fakeskema "github.com/reoring/fakeskema"
)

// ListPusher is the part of a Redis client the list sink needs.
// *redis.Client and *redis.ClusterClient satisfy it.
type ListPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisConfig configures a Redis list sink.
type RedisConfig struct {
	// Client is required.
	Client ListPusher
	// Key is the list key. Default: "fakeskema:documents".
	Key string
}

// RedisList appends each document, JSON encoded, to a Redis list.
type RedisList struct {
	client ListPusher
	key    string
	closed bool
}

// NewRedisList creates a list sink.
func NewRedisList(cfg RedisConfig) (*RedisList, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("sink: redis client is required")
	}
	if cfg.Key == "" {
		cfg.Key = "fakeskema:documents"
	}
	return &RedisList{client: cfg.Client, key: cfg.Key}, nil
}

// Key returns the list key documents are pushed to.
func (s *RedisList) Key() string { return s.key }

func (s *RedisList) Write(ctx context.Context, doc *fakeskema.Document) error {
	if s.closed {
		return ErrClosed
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("sink: encode json: %w", err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("sink: rpush %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisList) Close() error {
	s.closed = true
	return nil
}

// DialRedis connects to addr and pings the server.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		addr = "localhost:6379"
	}
	cl := redis.NewClient(&redis.Options{Addr: addr})
	if err := cl.Ping(ctx).Err(); err != nil {
		_ = cl.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cl, nil
}
