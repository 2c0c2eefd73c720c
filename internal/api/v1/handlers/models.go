package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/gemini"
	"github.com/probelab/genmock/pkg/httpext"
)

// HandleListModels serves GET /v1beta/models with the fixed catalog.
func HandleListModels(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(gemini.ModelList{Models: gemini.ModelCatalog()}); err != nil {
		log.Error().Err(err).Msg("Failed to encode model list")
	}
}

// HandleGetModel serves GET /v1beta/models/{model}.
func HandleGetModel(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["model"]

	model, found := gemini.LookupModel(name)
	if !found {
		httpext.WriteError(w, http.StatusNotFound, httpext.StatusNotFound,
			"models/"+name+" is not found for API version v1beta.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(model); err != nil {
		log.Error().Err(err).Msg("Failed to encode model descriptor")
	}
}
