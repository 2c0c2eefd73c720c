package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/gemini"
	"github.com/probelab/genmock/internal/services/engine"
	"github.com/probelab/genmock/pkg/httpext"
)

// GenerateHandler serves the model content endpoints. The {model} path
// variable carries the Google-style ":action" suffix (mux cannot split
// on the colon), so one handler dispatches on it.
type GenerateHandler struct {
	engine   engine.Service
	validate *validator.Validate
}

func NewGenerateHandler(engineService engine.Service) *GenerateHandler {
	return &GenerateHandler{
		engine:   engineService,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Dispatch routes POST /v1beta/models/{model}:{action}.
func (h *GenerateHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["model"]
	model, action, found := strings.Cut(raw, ":")
	if !found || model == "" {
		NotFound(w, r)
		return
	}

	switch action {
	case "generateContent":
		h.handleGenerate(w, r, model)
	case "streamGenerateContent":
		h.handleStream(w, r, model)
	case "countTokens":
		h.handleCountTokens(w, r)
	default:
		NotFound(w, r)
	}
}

// decodeRequest parses and validates the payload, writing the
// INVALID_ARGUMENT response itself on failure.
func (h *GenerateHandler) decodeRequest(w http.ResponseWriter, r *http.Request) *gemini.GenerateContentRequest {
	var req gemini.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.WriteError(w, http.StatusBadRequest, httpext.StatusInvalidArgument,
			"Invalid JSON payload received.")
		return nil
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Request validation failed")
		httpext.WriteError(w, http.StatusBadRequest, httpext.StatusInvalidArgument,
			"Invalid value at 'contents': contents is required and must be a non-empty array.")
		return nil
	}

	if err := engine.ValidateRequest(&req); err != nil {
		log.Warn().Err(err).Msg("Request rejected by engine validation")
		httpext.WriteError(w, http.StatusBadRequest, httpext.StatusInvalidArgument,
			"Invalid value at 'contents': contents is required and must be a non-empty array.")
		return nil
	}

	return &req
}

func (h *GenerateHandler) handleGenerate(w http.ResponseWriter, r *http.Request, model string) {
	req := h.decodeRequest(w, r)
	if req == nil {
		return
	}

	log.Info().
		Str("model", model).
		Int("turn_count", len(req.Contents)).
		Msg("Received generateContent request")

	resp, err := h.engine.Generate(r.Context(), model, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error().Err(err).Str("model", model).Msg("Failed to generate response")
		httpext.WriteError(w, http.StatusInternalServerError, httpext.StatusInternal,
			"Internal error encountered.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// handleStream writes one JSON document per emitted word, newline
// separated, flushing after each so clients see the text grow. There is
// no end-of-stream marker; the connection closing after the final word
// is the signal.
func (h *GenerateHandler) handleStream(w http.ResponseWriter, r *http.Request, model string) {
	req := h.decodeRequest(w, r)
	if req == nil {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("Response writer does not support streaming")
		httpext.WriteError(w, http.StatusInternalServerError, httpext.StatusInternal,
			"Internal error encountered.")
		return
	}

	log.Info().
		Str("model", model).
		Int("turn_count", len(req.Contents)).
		Msg("Received streamGenerateContent request")

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	err := h.engine.Stream(r.Context(), model, req, func(snapshot *gemini.GenerateContentResponse) error {
		if err := encoder.Encode(snapshot); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		// Headers are already written; all we can do is log and close.
		log.Error().Err(err).Str("model", model).Msg("Stream ended with error")
	}
}

func (h *GenerateHandler) handleCountTokens(w http.ResponseWriter, r *http.Request) {
	req := h.decodeRequest(w, r)
	if req == nil {
		return
	}

	result := gemini.CountTokensResponse{TotalTokens: h.engine.CountTokens(req)}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Msg("Failed to encode countTokens response")
	}
}

// NotFound writes the structured NOT_FOUND error for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	httpext.WriteError(w, http.StatusNotFound, httpext.StatusNotFound,
		"The requested URL "+r.URL.Path+" was not found on this server.")
}
