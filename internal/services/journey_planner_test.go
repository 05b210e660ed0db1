package services

import (
	"context"
	"reflect"
	"testing"
)

func testResolver(t *testing.T) *StationResolver {
	t.Helper()
	resolver, err := LoadResolver(context.Background(), nil, testProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resolver
}

func TestResolverNamesAndIndexes(t *testing.T) {
	resolver := testResolver(t)

	index, err := resolver.Resolve("briar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 1 {
		t.Fatalf("Resolve(briar) = %d, want 1", index)
	}

	// Numeric strings pass through as indexes.
	index, err = resolver.Resolve("4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 4 {
		t.Fatalf("Resolve(4) = %d, want 4", index)
	}

	if got := resolver.NameOf(2); got != "Cedar" {
		t.Fatalf("NameOf(2) = %q, want Cedar", got)
	}

	if _, err := resolver.Resolve("Atlantis"); err == nil {
		t.Fatal("expected error for unknown station name")
	}
}

func TestPlanJourney(t *testing.T) {
	journey, err := PlanJourney(
		context.Background(),
		JourneyRequest{From: "Appleton", To: "Cedar"},
		testProvider(),
		testResolver(t),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journey == nil {
		t.Fatal("expected a journey")
	}

	wantNames := []string{"Appleton", "Briar", "Cedar"}
	gotNames := make([]string, 0, len(journey.Stops))
	for _, stop := range journey.Stops {
		gotNames = append(gotNames, stop.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("stops = %v, want %v", gotNames, wantNames)
	}
	if journey.TotalTravelTime != 30 {
		t.Fatalf("total travel time = %d, want 30", journey.TotalTravelTime)
	}
}

func TestPlanJourneyNoRouteOnClosure(t *testing.T) {
	// Station 1 is closed that day, disconnecting Appleton from Cedar.
	journey, err := PlanJourney(
		context.Background(),
		JourneyRequest{From: "Appleton", To: "Cedar", Date: "2023-02-02"},
		testProvider(),
		testResolver(t),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journey != nil {
		t.Fatalf("journey = %+v, want nil for disconnected stations", journey)
	}
}

func TestPlanJourneyUnknownStation(t *testing.T) {
	_, err := PlanJourney(
		context.Background(),
		JourneyRequest{From: "Atlantis", To: "Cedar"},
		testProvider(),
		testResolver(t),
	)
	if err == nil {
		t.Fatal("expected error for unknown start station")
	}
}

func TestNeighbourhood(t *testing.T) {
	stops, err := Neighbourhood(
		context.Background(),
		"Briar",
		1,
		"",
		testProvider(),
		testResolver(t),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantNames := []string{"Appleton", "Cedar", "Dover", "Elm"}
	gotNames := make([]string, 0, len(stops))
	for _, stop := range stops {
		gotNames = append(gotNames, stop.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("neighbours = %v, want %v", gotNames, wantNames)
	}
}
