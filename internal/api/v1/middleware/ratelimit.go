package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/config"
	"github.com/probelab/genmock/pkg/httpext"
	"github.com/probelab/genmock/pkg/ratelimit"
)

// RateLimit enforces the sliding-window budget named by limitKey. The
// factory decides the store (in-process, or Redis when configured);
// each route group gets its own limiter with its own budget. Requests
// are bucketed by API key when present, falling back to the client
// address. A limiter store error fails open: the mock should keep
// answering when Redis is down.
func RateLimit(limitKey string, factory ratelimit.Factory) func(http.Handler) http.Handler {
	cfg := config.GetRateLimitConfig(limitKey)
	limiter := factory(cfg.Window, cfg.MaxHits)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			client := ExtractAPIKey(r)
			if client == "" {
				client = r.Header.Get("X-Forwarded-For")
			}
			if client == "" {
				client = r.RemoteAddr
			}

			allowed, err := limiter.Allow(r.Context(), limitKey+":"+client)
			if err != nil {
				log.Error().Err(err).Str("limit_key", limitKey).Msg("Rate limit store error, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				log.Warn().Str("client", client).Str("limit_key", limitKey).Msg("Rate limit exceeded")
				httpext.WriteError(w, http.StatusTooManyRequests, httpext.StatusResourceExhausted,
					"Resource has been exhausted (e.g. check quota).")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
