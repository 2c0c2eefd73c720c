package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/connections"
	redisinfra "github.com/probelab/genmock/internal/infrastructure/redis"
	"github.com/probelab/genmock/internal/services/auth"
	"github.com/probelab/genmock/internal/services/engine"
	"github.com/probelab/genmock/internal/stats"
	"github.com/probelab/genmock/pkg/ratelimit"
)

// Services wires the process-scoped components together.
type Services struct {
	engineService *engine.Implementation
	authService   *auth.Service
	redisService  *redisinfra.Service
	limiters      ratelimit.Factory
	counter       *stats.Counter
	connManager   *connections.Manager
	startedAt     time.Time
}

// InitializeServices constructs all services. Redis is optional; when
// absent the rate limiter falls back to its in-process store.
func InitializeServices() (*Services, error) {
	log.Info().Msg("Initializing core services")

	redisService := redisinfra.NewService()

	limiters := ratelimit.MemoryFactory()
	if redisService != nil {
		limiters = ratelimit.RedisFactory(redisService.Client(), "genmock:ratelimit")
		log.Info().Msg("Rate limiting backed by Redis")
	}

	engineService := engine.NewService()
	authService := auth.NewService()
	connManager := connections.NewManager(connections.DefaultTimeouts)

	log.Info().Msg("All services initialized successfully")

	return &Services{
		engineService: engineService,
		authService:   authService,
		redisService:  redisService,
		limiters:      limiters,
		counter:       stats.NewCounter(),
		connManager:   connManager,
		startedAt:     time.Now(),
	}, nil
}

// GetEngineService returns the mock response engine.
func (s *Services) GetEngineService() engine.Service {
	return s.engineService
}

// GetAuthService returns the token service.
func (s *Services) GetAuthService() *auth.Service {
	return s.authService
}

// GetLimiterFactory returns the rate limiter factory for middleware.
func (s *Services) GetLimiterFactory() ratelimit.Factory {
	return s.limiters
}

// GetCounter returns the process request counter.
func (s *Services) GetCounter() *stats.Counter {
	return s.counter
}

// GetConnectionManager returns the websocket connection manager.
func (s *Services) GetConnectionManager() *connections.Manager {
	return s.connManager
}

// StartedAt returns the process start time for uptime reporting.
func (s *Services) StartedAt() time.Time {
	return s.startedAt
}
