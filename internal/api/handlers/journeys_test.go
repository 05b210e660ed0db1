package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"transit-route-service/internal/adapters/tubedata"
	"transit-route-service/internal/api/dto"
	"transit-route-service/internal/domain"
	"transit-route-service/internal/ports"
	"transit-route-service/internal/services"
)

func newJourneyHandler(t *testing.T) *JourneyHandler {
	t.Helper()

	provider := &tubedata.MockProvider{
		Info: ports.NetworkInfo{
			NStations: 5,
			NLines:    3,
			LineNames: map[int]string{0: "Red", 1: "Green", 2: "Blue"},
		},
		Lines: map[int][]ports.LineConnection{
			0: {{From: 0, To: 1, TravelTime: 10}, {From: 1, To: 2, TravelTime: 20}},
			1: {{From: 3, To: 1, TravelTime: 30}, {From: 1, To: 4, TravelTime: 40}},
			2: {{From: 2, To: 1, TravelTime: 50}},
		},
		Disruptions: map[string][]domain.Disruption{
			"2023-02-02": {{Delay: 0, Stations: []int{1}}},
		},
		Directory: []ports.StationRecord{
			{Index: 0, Name: "Appleton"},
			{Index: 1, Name: "Briar"},
			{Index: 2, Name: "Cedar"},
			{Index: 3, Name: "Dover"},
			{Index: 4, Name: "Elm"},
		},
	}

	resolver, err := services.LoadResolver(context.Background(), nil, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &JourneyHandler{Provider: provider, Resolver: resolver}
}

func TestPlanJourney(t *testing.T) {
	handler := newJourneyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/journeys?from=Appleton&to=Cedar", nil)
	rec := httptest.NewRecorder()
	handler.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.JourneyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !res.Found {
		t.Fatal("expected a route to be found")
	}
	if res.TotalTravelTime != 30 {
		t.Errorf("total travel time = %d, want 30", res.TotalTravelTime)
	}
	wantStops := []string{"Appleton", "Briar", "Cedar"}
	if len(res.Stops) != len(wantStops) {
		t.Fatalf("got %d stops, want %d", len(res.Stops), len(wantStops))
	}
	for i, name := range wantStops {
		if res.Stops[i].Name != name {
			t.Errorf("stop %d = %q, want %q", i, res.Stops[i].Name, name)
		}
	}
}

func TestPlanJourneyNoRoute(t *testing.T) {
	handler := newJourneyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/journeys?from=Appleton&to=Cedar&date=2023-02-02", nil)
	rec := httptest.NewRecorder()
	handler.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.JourneyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Found {
		t.Fatal("expected no route with the interchange closed")
	}
}

func TestPlanJourneyValidation(t *testing.T) {
	handler := newJourneyHandler(t)

	cases := []struct {
		name   string
		target string
		status int
	}{
		{"missing endpoints", "/journeys?from=Appleton", http.StatusBadRequest},
		{"bad date", "/journeys?from=Appleton&to=Cedar&date=02-02-2023", http.StatusBadRequest},
		{"unknown station", "/journeys?from=Atlantis&to=Cedar", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			handler.Plan(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.status, rec.Body.String())
			}
		})
	}
}

func TestPlanJourneyRejectsPost(t *testing.T) {
	handler := newJourneyHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/journeys?from=Appleton&to=Cedar", nil)
	rec := httptest.NewRecorder()
	handler.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestPlanJourneyFeedUnavailable(t *testing.T) {
	handler := newJourneyHandler(t)
	handler.Provider = &tubedata.MockProvider{Err: ports.ErrUnavailable}

	req := httptest.NewRequest(http.MethodGet, "/journeys?from=Appleton&to=Cedar", nil)
	rec := httptest.NewRecorder()
	handler.Plan(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusBadGateway, rec.Body.String())
	}
}

func TestNeighbours(t *testing.T) {
	handler := newJourneyHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/neighbours?station=Briar", nil)
	rec := httptest.NewRecorder()
	handler.Neighbours(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.NeighboursResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if res.Station != 1 {
		t.Errorf("station = %d, want 1", res.Station)
	}
	wantNames := []string{"Appleton", "Cedar", "Dover", "Elm"}
	if len(res.Neighbours) != len(wantNames) {
		t.Fatalf("got %d neighbours, want %d", len(res.Neighbours), len(wantNames))
	}
	for i, name := range wantNames {
		if res.Neighbours[i].Name != name {
			t.Errorf("neighbour %d = %q, want %q", i, res.Neighbours[i].Name, name)
		}
	}
}

func TestNeighboursValidation(t *testing.T) {
	handler := newJourneyHandler(t)

	cases := []struct {
		name   string
		target string
	}{
		{"missing station", "/neighbours"},
		{"non-integer hops", "/neighbours?station=Briar&hops=two"},
		{"zero hops", "/neighbours?station=Briar&hops=0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			handler.Neighbours(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
		})
	}
}
