package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/config"
	"github.com/probelab/genmock/internal/services/auth"
	"github.com/probelab/genmock/pkg/httpext"
)

const apiKeyHeader = "x-goog-api-key"

// ExtractAPIKey reads the key from the x-goog-api-key header or the
// ?key= query parameter, header taking precedence.
func ExtractAPIKey(r *http.Request) string {
	if key := r.Header.Get(apiKeyHeader); key != "" {
		return key
	}
	return r.URL.Query().Get("key")
}

// RequireAPIKey gates a route on credentials. Any non-empty API key is
// accepted except the configured known-bad literal, which always gets
// UNAUTHENTICATED so collections can test the failure path. A bearer
// token minted by /oauth/token passes as an alternative.
func RequireAPIKey(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ExtractAPIKey(r)
			if key != "" {
				badKey := config.GetInvalidAPIKey()
				if subtle.ConstantTimeCompare([]byte(key), []byte(badKey)) == 1 {
					log.Warn().Str("path", r.URL.Path).Msg("Request presented the known-bad API key")
					httpext.WriteError(w, http.StatusUnauthorized, httpext.StatusUnauthenticated,
						"API key not valid. Please pass a valid API key.")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if token := auth.ExtractBearer(r); token != "" && authService.ValidateToken(token) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn().Str("path", r.URL.Path).Msg("Request missing credentials")
			httpext.WriteError(w, http.StatusUnauthorized, httpext.StatusUnauthenticated,
				"API key not valid. Please pass a valid API key.")
		})
	}
}
