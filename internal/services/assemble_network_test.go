package services

import (
	"context"
	"errors"
	"testing"

	"transit-route-service/internal/adapters/tubedata"
	"transit-route-service/internal/domain"
	"transit-route-service/internal/ports"
)

func testProvider() *tubedata.MockProvider {
	line0 := 0
	return &tubedata.MockProvider{
		Info: ports.NetworkInfo{
			NStations: 5,
			NLines:    3,
			LineNames: map[int]string{0: "A", 1: "B", 2: "C"},
		},
		Lines: map[int][]ports.LineConnection{
			0: {
				{From: 0, To: 1, TravelTime: 10},
				{From: 1, To: 2, TravelTime: 20},
			},
			1: {
				{From: 3, To: 1, TravelTime: 30},
				{From: 1, To: 4, TravelTime: 40},
			},
			2: {
				{From: 2, To: 1, TravelTime: 50},
			},
		},
		Disruptions: map[string][]domain.Disruption{
			"2023-01-01": {
				{Delay: 0, Line: &line0, Stations: []int{0, 1}},
				{Delay: 10, Line: &line0, Stations: []int{1, 2}},
			},
			"2023-02-02": {
				{Delay: 0, Stations: []int{1}},
			},
		},
		Directory: []ports.StationRecord{
			{Index: 0, Name: "Appleton", Latitude: 51.5, Longitude: -0.1},
			{Index: 1, Name: "Briar", Latitude: 51.6, Longitude: -0.2},
			{Index: 2, Name: "Cedar", Latitude: 51.7, Longitude: -0.3},
			{Index: 3, Name: "Dover", Latitude: 51.8, Longitude: -0.4},
			{Index: 4, Name: "Elm", Latitude: 51.9, Longitude: -0.5},
		},
	}
}

func TestAssembleNetworkMergesLines(t *testing.T) {
	network, err := AssembleNetwork(context.Background(), testProvider(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := network.NStations(); got != 5 {
		t.Fatalf("nStations = %d, want 5", got)
	}
	// Fastest record across lines 0 and 2 for the (1,2) pair.
	if got := network.TravelTime(1, 2); got != 20 {
		t.Fatalf("travel time (1,2) = %d, want 20", got)
	}
	if got := network.TravelTime(1, 3); got != 30 {
		t.Fatalf("travel time (1,3) = %d, want 30", got)
	}
}

func TestAssembleNetworkAppliesDisruptions(t *testing.T) {
	network, err := AssembleNetwork(context.Background(), testProvider(), "2023-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Line 0 closed between 0 and 1, delayed tenfold between 1 and 2, so line
	// 2's slower connection takes over the (1,2) pair.
	if got := network.TravelTime(0, 1); got != 0 {
		t.Fatalf("travel time (0,1) = %d, want 0", got)
	}
	if got := network.TravelTime(1, 2); got != 50 {
		t.Fatalf("travel time (1,2) = %d, want 50", got)
	}
}

func TestAssembleNetworkProviderFailure(t *testing.T) {
	provider := testProvider()
	provider.Err = errors.New("feed down")

	if _, err := AssembleNetwork(context.Background(), provider, ""); err == nil {
		t.Fatal("expected error when the provider is unreachable")
	}
}

func TestAssembleNetworkRejectsBadDate(t *testing.T) {
	if _, err := AssembleNetwork(context.Background(), testProvider(), "01-01-2023"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
