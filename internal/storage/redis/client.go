// Package redis stores saves as JSON documents in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cory-johannsen/paperdoll/internal/config"
)

// Client wraps redis.UniversalClient so repositories can run against a
// single node, a cluster or a test server alike.
type Client interface {
	redis.UniversalClient
}

// NewClient creates a client for the configured node and verifies it answers.
//
// Postcondition: Returns a connected Client or a non-nil error.
func NewClient(ctx context.Context, cfg config.RedisConfig) (Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: pinging %s: %w", cfg.Addr, err)
	}
	return client, nil
}
