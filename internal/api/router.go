package api

import (
	"net/http"

	"transit-route-service/internal/api/handlers"
	"transit-route-service/internal/ports"
	"transit-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.NetworkDataProvider, resolver *services.StationResolver) http.Handler {
	mux := http.NewServeMux()

	stationHandler := &handlers.StationHandler{Resolver: resolver}
	journeyHandler := &handlers.JourneyHandler{
		Provider: provider,
		Resolver: resolver,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stations", stationHandler.List)
	mux.HandleFunc("/journeys", journeyHandler.Plan)
	mux.HandleFunc("/neighbours", journeyHandler.Neighbours)

	return loggingMiddleware(mux)
}
