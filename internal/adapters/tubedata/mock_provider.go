package tubedata

import (
	"context"
	"fmt"

	"transit-route-service/internal/domain"
	"transit-route-service/internal/ports"
)

// MockProvider serves canned feed data for tests.
type MockProvider struct {
	Info        ports.NetworkInfo
	Lines       map[int][]ports.LineConnection
	Disruptions map[string][]domain.Disruption
	Directory   []ports.StationRecord

	// Err, when set, is returned by every fetch.
	Err error
}

func (m *MockProvider) FetchNetworkInfo(ctx context.Context) (ports.NetworkInfo, error) {
	if m.Err != nil {
		return ports.NetworkInfo{}, m.Err
	}
	return m.Info, nil
}

func (m *MockProvider) FetchLineConnectivity(ctx context.Context, line int) ([]ports.LineConnection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	connections, ok := m.Lines[line]
	if !ok {
		return nil, fmt.Errorf("mock provider: no line %d", line)
	}
	return connections, nil
}

func (m *MockProvider) FetchDisruptions(ctx context.Context, date string) ([]domain.Disruption, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Disruptions[date], nil
}

func (m *MockProvider) FetchStationDirectory(ctx context.Context) ([]ports.StationRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Directory, nil
}
