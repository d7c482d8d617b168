package api

import (
	"delivery-time-simulator/internal/api/handlers"
	"delivery-time-simulator/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil, which disables summary caching.
func NewRouter(repo ports.WeatherIndexRepository, cache ports.SummaryCache) http.Handler {
	mux := http.NewServeMux()

	weatherHandler := &handlers.WeatherHandler{Repo: repo}
	simHandler := &handlers.SimulationHandler{
		Repo:  repo,
		Cache: cache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/weather-indices", weatherHandler.List)
	mux.HandleFunc("/simulations", simHandler.Run)

	return loggingMiddleware(mux)
}
