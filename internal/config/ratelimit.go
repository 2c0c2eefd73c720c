package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

// RateLimitConfig describes one sliding-window budget.
type RateLimitConfig struct {
	Enabled bool
	MaxHits int
	Window  time.Duration
}

// GetRateLimitConfig returns the budget for a named route group.
func GetRateLimitConfig(key string) RateLimitConfig {
	enabled := GetEnvOrDefault("RATELIMIT_ENABLED", "true") == "true"

	configs := map[string]RateLimitConfig{
		"generate": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_GENERATE", 60), // 60 requests per minute
			Window:  time.Minute,
		},
		"oauth_token": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_OAUTH_TOKEN", 30), // 30 requests per minute
			Window:  time.Minute,
		},
		"websocket": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_WEBSOCKET", 10), // 10 upgrades per minute
			Window:  time.Minute,
		},
	}

	if config, exists := configs[key]; exists {
		return config
	}

	log.Warn().Str("key", key).Msg("No rate limit config found for key")
	return RateLimitConfig{Enabled: false}
}
