package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Status is the canonical error status enum carried in the error body.
type Status string

const (
	StatusInvalidArgument   Status = "INVALID_ARGUMENT"
	StatusUnauthenticated   Status = "UNAUTHENTICATED"
	StatusResourceExhausted Status = "RESOURCE_EXHAUSTED"
	StatusNotFound          Status = "NOT_FOUND"
	StatusInternal          Status = "INTERNAL"
)

// ErrorBody is the inner error object of a structured error response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// ErrorResponse is the standardised JSON error envelope:
// {"error":{"code":400,"message":"...","status":"INVALID_ARGUMENT"}}.
// The HTTP status code always matches the inner code field.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteError writes a structured JSON error response.
func WriteError(w http.ResponseWriter, code int, status Status, message string) {
	response := ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Status:  status,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode error response")
		http.Error(w, "{\"error\":{\"code\":500,\"message\":\"Internal error\",\"status\":\"INTERNAL\"}}", http.StatusInternalServerError)
		return
	}
}
