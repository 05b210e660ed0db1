package services

import (
	"context"
	"fmt"

	"transit-route-service/internal/ports"
)

// JourneyStop is one station along a planned journey.
type JourneyStop struct {
	Station int
	Name    string
}

// Journey is a planned trip for one day: the stations visited in order and the
// total travel time in minutes.
type Journey struct {
	Date            string
	Stops           []JourneyStop
	TotalTravelTime int
}

// JourneyRequest names the endpoints by station name or numeric index.
// An empty date means today.
type JourneyRequest struct {
	From string
	To   string
	Date string
}

// PlanJourney assembles the network for the requested day and runs a shortest
// path query between the resolved endpoints. It returns (nil, nil) when the
// two stations are not connected on that day.
func PlanJourney(
	ctx context.Context,
	req JourneyRequest,
	provider ports.NetworkDataProvider,
	resolver *StationResolver,
) (*Journey, error) {
	start, err := resolver.Resolve(req.From)
	if err != nil {
		return nil, fmt.Errorf("plan journey: %w", err)
	}
	end, err := resolver.Resolve(req.To)
	if err != nil {
		return nil, fmt.Errorf("plan journey: %w", err)
	}

	network, err := AssembleNetwork(ctx, provider, req.Date)
	if err != nil {
		return nil, fmt.Errorf("plan journey: %w", err)
	}

	route, err := network.ShortestPath(start, end)
	if err != nil {
		return nil, fmt.Errorf("plan journey: %w", err)
	}
	if route == nil {
		return nil, nil
	}

	stops := make([]JourneyStop, 0, len(route.Path))
	for _, station := range route.Path {
		stops = append(stops, JourneyStop{Station: station, Name: resolver.NameOf(station)})
	}

	return &Journey{
		Date:            req.Date,
		Stops:           stops,
		TotalTravelTime: route.Cost,
	}, nil
}

// Neighbourhood returns the stations reachable from a station within the given
// number of hops on the requested day's network.
func Neighbourhood(
	ctx context.Context,
	station string,
	hops int,
	date string,
	provider ports.NetworkDataProvider,
	resolver *StationResolver,
) ([]JourneyStop, error) {
	origin, err := resolver.Resolve(station)
	if err != nil {
		return nil, fmt.Errorf("neighbourhood: %w", err)
	}

	network, err := AssembleNetwork(ctx, provider, date)
	if err != nil {
		return nil, fmt.Errorf("neighbourhood: %w", err)
	}

	neighbours, err := network.DistantNeighbours(hops, origin)
	if err != nil {
		return nil, fmt.Errorf("neighbourhood: %w", err)
	}

	stops := make([]JourneyStop, 0, len(neighbours))
	for _, station := range neighbours {
		stops = append(stops, JourneyStop{Station: station, Name: resolver.NameOf(station)})
	}
	return stops, nil
}

// RefreshStationDirectory pulls the remote directory and persists it locally.
func RefreshStationDirectory(
	ctx context.Context,
	provider ports.NetworkDataProvider,
	store interface {
		UpsertStations(ctx context.Context, records []ports.StationRecord) error
	},
) ([]ports.StationRecord, error) {
	records, err := provider.FetchStationDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh station directory: %w", err)
	}

	if store != nil {
		if err := store.UpsertStations(ctx, records); err != nil {
			return nil, fmt.Errorf("refresh station directory: %w", err)
		}
	}

	return records, nil
}
