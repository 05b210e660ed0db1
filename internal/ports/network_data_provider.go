package ports

import (
	"context"
	"errors"
	"transit-route-service/internal/domain"
)

// ErrUnavailable is returned by providers when the remote data service cannot
// be reached. Callers must not attempt network construction in that case.
var ErrUnavailable = errors.New("network data service unavailable")

// NetworkInfo describes the transit system as reported by the data service.
type NetworkInfo struct {
	NStations int
	NLines    int
	LineNames map[int]string
}

// LineConnection is one row of a per-line connectivity feed. The line id is
// implied by the request; callers tag it before inserting into a Network.
type LineConnection struct {
	From       int
	To         int
	TravelTime int
}

// StationRecord is one row of the station directory.
type StationRecord struct {
	Index     int
	Name      string
	Latitude  float64
	Longitude float64
}

// Contract for retrieving transit network data from the remote feed service.
type NetworkDataProvider interface {
	// Return the system-wide station and line counts.
	FetchNetworkInfo(ctx context.Context) (NetworkInfo, error)
	// Return the connectivity rows for one line.
	FetchLineConnectivity(ctx context.Context, line int) ([]LineConnection, error)
	// Return the disruption records for a date (YYYY-MM-DD); empty means today.
	FetchDisruptions(ctx context.Context, date string) ([]domain.Disruption, error)
	// Return the full station directory.
	FetchStationDirectory(ctx context.Context) ([]StationRecord, error)
}
