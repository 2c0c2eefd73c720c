package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/api/v1/handlers"
	"github.com/probelab/genmock/internal/config"
	"github.com/probelab/genmock/internal/logger"
	"github.com/probelab/genmock/internal/services"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()
	logger.Init()

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	router := setupRouter(svcs)

	addr := ":" + config.GetServerPort()
	log.Info().Str("addr", addr).Msg("Mock server starting")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func setupRouter(svcs *services.Services) *mux.Router {
	router := mux.NewRouter()
	handlers.RegisterRoutes(router, svcs)
	return router
}
