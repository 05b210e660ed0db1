package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"transit-route-service/internal/domain"
	"transit-route-service/internal/platform/obs"
	"transit-route-service/internal/ports"
)

type lineResult struct {
	line    int
	network *domain.Network
	err     error
}

// ValidateDate checks a YYYY-MM-DD journey date. Empty means today.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}
	return nil
}

// AssembleNetwork builds the transit network for one day: every line's
// sub-network is fetched and merged, then the day's disruptions are applied in
// feed order.
//
// Line fetches run concurrently; merge order does not affect the resulting
// fastest-connection matrix, so results are combined as they arrive.
func AssembleNetwork(
	ctx context.Context,
	provider ports.NetworkDataProvider,
	date string,
) (_ *domain.Network, err error) {
	defer obs.Time(ctx, "services.AssembleNetwork")(&err)

	if err := ValidateDate(date); err != nil {
		return nil, fmt.Errorf("assemble network: %w", err)
	}

	info, err := provider.FetchNetworkInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("assemble network: fetch network info: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 4)
	resultsCh := make(chan lineResult, info.NLines)
	var wg sync.WaitGroup

	for line := 0; line < info.NLines; line++ {
		wg.Add(1)
		go func(line int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			connections, err := provider.FetchLineConnectivity(ctx, line)
			if err != nil {
				resultsCh <- lineResult{line: line, err: fmt.Errorf("assemble network: fetch line %d: %w", line, err)}
				cancel()
				return
			}

			network, err := buildLineNetwork(info.NStations, line, connections)
			if err != nil {
				resultsCh <- lineResult{line: line, err: err}
				cancel()
				return
			}

			resultsCh <- lineResult{line: line, network: network}
		}(line)
	}

	wg.Wait()
	close(resultsCh)

	merged, err := domain.NewNetwork(info.NStations, nil)
	if err != nil {
		return nil, fmt.Errorf("assemble network: %w", err)
	}

	var lineErr error
	for res := range resultsCh {
		if res.err != nil {
			if lineErr == nil {
				lineErr = res.err
			}
			continue
		}
		merged, err = merged.Combine(res.network)
		if err != nil {
			return nil, fmt.Errorf("assemble network: merge line %d: %w", res.line, err)
		}
	}
	if lineErr != nil {
		return nil, lineErr
	}

	disruptions, err := provider.FetchDisruptions(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("assemble network: fetch disruptions: %w", err)
	}

	if err := merged.ApplyDisruptions(disruptions); err != nil {
		return nil, fmt.Errorf("assemble network: apply disruptions: %w", err)
	}

	return merged, nil
}

// buildLineNetwork tags each connectivity row with its line before insertion.
func buildLineNetwork(nStations, line int, connections []ports.LineConnection) (*domain.Network, error) {
	edges := make([]domain.Edge, 0, len(connections))
	for _, conn := range connections {
		edges = append(edges, domain.Edge{
			From:       conn.From,
			To:         conn.To,
			TravelTime: conn.TravelTime,
			Line:       line,
		})
	}

	network, err := domain.NewNetwork(nStations, edges)
	if err != nil {
		return nil, fmt.Errorf("assemble network: build line %d: %w", line, err)
	}
	return network, nil
}
