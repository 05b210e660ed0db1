package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"transit-route-service/internal/api/dto"
	"transit-route-service/internal/domain"
	"transit-route-service/internal/ports"
	"transit-route-service/internal/services"
)

// JourneyHandler answers day-specific shortest-path queries.
type JourneyHandler struct {
	Provider ports.NetworkDataProvider
	Resolver *services.StationResolver
}

// Plan handles GET /journeys?from=&to=&date=.
func (h *JourneyHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}
	if err := services.ValidateDate(date); err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	req := services.JourneyRequest{From: from, To: to, Date: date}
	journey, err := services.PlanJourney(r.Context(), req, h.Provider, h.Resolver)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if journey == nil {
		writeJSON(w, r, http.StatusOK, dto.JourneyResponse{Found: false, Date: date})
		return
	}

	res := dto.JourneyResponse{
		Found:           true,
		Date:            journey.Date,
		TotalTravelTime: journey.TotalTravelTime,
		Stops:           make([]dto.JourneyStopResponse, 0, len(journey.Stops)),
	}
	for _, stop := range journey.Stops {
		res.Stops = append(res.Stops, dto.JourneyStopResponse{Station: stop.Station, Name: stop.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Neighbours handles GET /neighbours?station=&hops=&date=.
func (h *JourneyHandler) Neighbours(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	station := strings.TrimSpace(r.URL.Query().Get("station"))
	if station == "" {
		writeError(w, r, http.StatusBadRequest, "station is required")
		return
	}

	hops := 1
	if raw := strings.TrimSpace(r.URL.Query().Get("hops")); raw != "" {
		var err error
		hops, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "hops must be an integer")
			return
		}
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if err := services.ValidateDate(date); err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	neighbours, err := services.Neighbourhood(r.Context(), station, hops, date, h.Provider, h.Resolver)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	origin, _ := h.Resolver.Resolve(station)
	res := dto.NeighboursResponse{
		Station:    origin,
		Hops:       hops,
		Neighbours: make([]dto.JourneyStopResponse, 0, len(neighbours)),
	}
	for _, stop := range neighbours {
		res.Neighbours = append(res.Neighbours, dto.JourneyStopResponse{Station: stop.Station, Name: stop.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// writeServiceError maps service failures onto HTTP statuses: caller mistakes
// (unknown stations, bad ranges) are 400s, an unreachable upstream feed is a
// 502, anything else a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrStationRange),
		errors.Is(err, domain.ErrNeighbourDepth),
		errors.Is(err, services.ErrUnknownStation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrUnavailable):
		log.Printf("upstream feed unavailable: %v", err)
		writeError(w, r, http.StatusBadGateway, "transit data service unavailable")
	default:
		log.Printf("journey query failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
