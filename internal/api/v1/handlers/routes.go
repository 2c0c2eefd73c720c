package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	v1mware "github.com/probelab/genmock/internal/api/v1/middleware"
	"github.com/probelab/genmock/internal/services"
)

// RegisterRoutes wires the full API surface onto the router.
func RegisterRoutes(router *mux.Router, svcs *services.Services) {
	router.Use(v1mware.RequestLog(svcs.GetCounter()))
	router.NotFoundHandler = http.HandlerFunc(NotFound)

	generateHandler := NewGenerateHandler(svcs.GetEngineService())
	limiters := svcs.GetLimiterFactory()

	// Public routes (no auth required)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		HandleHealth(svcs.GetCounter(), svcs.GetConnectionManager(), svcs.StartedAt(), w, r)
	}).Methods("GET")

	router.Handle("/oauth/token", v1mware.RateLimit("oauth_token", limiters)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleToken(svcs.GetAuthService(), w, r)
	}))).Methods("POST")

	// Protected v1beta routes (require an API key or bearer token)
	v1beta := router.PathPrefix("/v1beta").Subrouter()
	v1beta.Use(v1mware.RequireAPIKey(svcs.GetAuthService()))

	v1beta.HandleFunc("/models", HandleListModels).Methods("GET")
	v1beta.HandleFunc("/models/{model}", HandleGetModel).Methods("GET")
	v1beta.Handle("/models/{model}", v1mware.RateLimit("generate", limiters)(http.HandlerFunc(generateHandler.Dispatch))).Methods("POST")

	// Websocket chat loop, same gates as the REST surface
	router.Handle("/ws", v1mware.RequireAPIKey(svcs.GetAuthService())(v1mware.RateLimit("websocket", limiters)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleWebSocket(svcs.GetEngineService(), svcs.GetConnectionManager(), w, r)
	})))).Methods("GET")
}
