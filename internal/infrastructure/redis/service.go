// Package redis wraps the optional Redis connection. The mock runs fully
// in-process without it; a configured REDIS_URL switches the rate limiter
// to a shared store so several instances enforce one budget.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/config"
)

type Service struct {
	client *redis.Client
}

// NewService connects to Redis when configured. Returns nil when
// REDIS_URL is unset; callers treat a nil service as "not available".
func NewService() *Service {
	url := config.GetRedisURL()
	if url == "" {
		log.Debug().Msg("Redis not configured - rate limiting uses the in-process store")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     url,
		Password: config.GetRedisPassword(),
		DB:       0,
	})

	log.Info().Str("addr", url).Msg("Redis service initialised")
	return &Service{client: client}
}

// Client exposes the underlying client for components that need richer
// commands than this wrapper offers, such as the sorted-set limiter.
func (s *Service) Client() *redis.Client {
	return s.client
}

// Ping checks if Redis is accessible.
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Service) Close() error {
	return s.client.Close()
}
