package ports

import "context"

// Port: a boundary for retrieving station directory entries from local storage.
type StationRepository interface {
	// Retrieve all stations ordered by index.
	ListStations(ctx context.Context) ([]StationRecord, error)
}
