package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/connections"
	"github.com/probelab/genmock/internal/stats"
)

type healthResponse struct {
	Status           string `json:"status"`
	UptimeSeconds    int64  `json:"uptimeSeconds"`
	RequestsServed   uint64 `json:"requestsServed"`
	ActiveWebsockets int    `json:"activeWebsockets"`
}

// HandleHealth serves GET /healthz. The request counter is diagnostic
// only; it resets with the process.
func HandleHealth(counter *stats.Counter, manager *connections.Manager, startedAt time.Time, w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:           "ok",
		UptimeSeconds:    int64(time.Since(startedAt).Seconds()),
		RequestsServed:   counter.Total(),
		ActiveWebsockets: manager.ActiveCount(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode health response")
	}
}
