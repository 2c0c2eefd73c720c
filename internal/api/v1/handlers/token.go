package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/services/auth"
	"github.com/probelab/genmock/pkg/httpext"
)

type tokenRequest struct {
	GrantType string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// HandleToken serves POST /oauth/token. The mock only supports the
// anonymous grant; the minted token is accepted by the API surface as a
// bearer alternative to an API key.
func HandleToken(authService *auth.Service, w http.ResponseWriter, r *http.Request) {
	req := tokenRequest{GrantType: auth.GrantAnonymous}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpext.WriteError(w, http.StatusBadRequest, httpext.StatusInvalidArgument,
				"Invalid JSON payload received.")
			return
		}
	}

	if req.GrantType != auth.GrantAnonymous {
		httpext.WriteError(w, http.StatusBadRequest, httpext.StatusInvalidArgument,
			"Unsupported grant_type: "+req.GrantType)
		return
	}

	token, expiresAt, err := authService.IssueToken(req.GrantType)
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue token")
		httpext.WriteError(w, http.StatusInternalServerError, httpext.StatusInternal,
			"Internal error encountered.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to encode token response")
	}
}
