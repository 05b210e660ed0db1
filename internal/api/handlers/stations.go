package handlers

import (
	"net/http"

	"transit-route-service/internal/api/dto"
	"transit-route-service/internal/services"
)

// StationHandler exposes the station directory.
type StationHandler struct {
	Resolver *services.StationResolver
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	records := h.Resolver.Stations()
	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Stations = append(res.Stations, dto.StationResponse{
			Index:     rec.Index,
			Name:      rec.Name,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
