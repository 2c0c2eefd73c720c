package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/probelab/genmock/internal/gemini"
	"github.com/probelab/genmock/pkg/httpext"
)

func modelsRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/v1beta/models", HandleListModels).Methods("GET")
	router.HandleFunc("/v1beta/models/{model}", HandleGetModel).Methods("GET")
	return router
}

func TestHandleListModels(t *testing.T) {
	router := modelsRouter()

	r := httptest.NewRequest(http.MethodGet, "/v1beta/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var list gemini.ModelList
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode model list: %v", err)
	}

	if len(list.Models) != 2 {
		t.Fatalf("Expected 2 models in catalog, got %d", len(list.Models))
	}
	for _, m := range list.Models {
		if m.Name == "" || m.InputTokenLimit == 0 || m.OutputTokenLimit == 0 {
			t.Errorf("Model descriptor incomplete: %+v", m)
		}
		if len(m.SupportedGenerationMethods) == 0 {
			t.Errorf("Model %s missing generation methods", m.Name)
		}
	}
}

func TestHandleGetModel(t *testing.T) {
	router := modelsRouter()

	r := httptest.NewRequest(http.MethodGet, "/v1beta/models/gemini-1.5-flash", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var model gemini.Model
	if err := json.NewDecoder(w.Body).Decode(&model); err != nil {
		t.Fatalf("Failed to decode model: %v", err)
	}
	if model.Name != "models/gemini-1.5-flash" {
		t.Errorf("Expected models/gemini-1.5-flash, got %s", model.Name)
	}
}

func TestHandleGetModelNotFound(t *testing.T) {
	router := modelsRouter()

	r := httptest.NewRequest(http.MethodGet, "/v1beta/models/no-such-model", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var body httpext.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body.Error.Status != httpext.StatusNotFound {
		t.Errorf("Expected NOT_FOUND status, got %s", body.Error.Status)
	}
}
