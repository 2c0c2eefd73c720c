package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/stats"
)

// RequestLog tags every request with an id, bumps the process counter
// and logs the outcome. The response writer is deliberately not wrapped:
// streaming and websocket handlers need the raw Flusher/Hijacker.
func RequestLog(counter *stats.Counter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			seq := counter.Inc()
			w.Header().Set("X-Request-Id", requestID)

			start := time.Now()
			next.ServeHTTP(w, r)

			log.Info().
				Str("request_id", requestID).
				Uint64("seq", seq).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("Request handled")
		})
	}
}
