package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"transit-route-service/internal/ports"
)

// ErrUnknownStation indicates a station name absent from the directory.
var ErrUnknownStation = errors.New("unknown station")

// StationResolver translates between station indexes and human-readable names
// using the station directory. Name lookup is case-insensitive.
type StationResolver struct {
	records []ports.StationRecord
	byIndex map[int]ports.StationRecord
	byName  map[string]int
}

func NewStationResolver(records []ports.StationRecord) *StationResolver {
	r := &StationResolver{
		records: records,
		byIndex: make(map[int]ports.StationRecord, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	for _, rec := range records {
		r.byIndex[rec.Index] = rec
		r.byName[strings.ToLower(rec.Name)] = rec.Index
	}
	return r
}

// LoadResolver builds a resolver from local storage when available, falling
// back to the remote directory feed.
func LoadResolver(
	ctx context.Context,
	repo ports.StationRepository,
	provider ports.NetworkDataProvider,
) (*StationResolver, error) {
	if repo != nil {
		records, err := repo.ListStations(ctx)
		if err == nil && len(records) > 0 {
			return NewStationResolver(records), nil
		}
	}

	records, err := provider.FetchStationDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load station resolver: %w", err)
	}
	return NewStationResolver(records), nil
}

// Stations returns the directory records backing this resolver.
func (r *StationResolver) Stations() []ports.StationRecord { return r.records }

// NameOf returns the station name for an index, or the index itself rendered
// as text when the directory has no entry for it.
func (r *StationResolver) NameOf(index int) string {
	if rec, ok := r.byIndex[index]; ok {
		return rec.Name
	}
	return strconv.Itoa(index)
}

// Resolve turns a station given by name or numeric index into its index.
func (r *StationResolver) Resolve(station string) (int, error) {
	station = strings.TrimSpace(station)
	if station == "" {
		return 0, fmt.Errorf("resolve station: empty station")
	}

	if index, err := strconv.Atoi(station); err == nil {
		return index, nil
	}

	if index, ok := r.byName[strings.ToLower(station)]; ok {
		return index, nil
	}
	return 0, fmt.Errorf("resolve station %q: %w", station, ErrUnknownStation)
}
