package api

import (
	"fracture-density-service/internal/api/handlers"
	"fracture-density-service/internal/ports"
	"fracture-density-service/internal/services"
	"net/http"
)

// Options carries the simulation defaults and limits exposed over HTTP.
type Options struct {
	Defaults  services.SampleRequest
	Bins      int
	MaxTrials int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.FractureRepository, opts Options) http.Handler {
	mux := http.NewServeMux()

	fractureHandler := &handlers.FractureHandler{Repo: repo}
	simulationHandler := &handlers.SimulationHandler{
		Repo:      repo,
		Defaults:  opts.Defaults,
		Bins:      opts.Bins,
		MaxTrials: opts.MaxTrials,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/fractures", fractureHandler.List)
	mux.HandleFunc("/simulations", simulationHandler.Run)

	return requestMiddleware(mux)
}
