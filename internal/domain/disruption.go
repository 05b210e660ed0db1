package domain

import (
	"fmt"
)

// Disruption is one record from the disruption feed. Delay is a multiplier
// applied to current travel times (0 means closure). Line is nil when the
// disruption affects every line.
type Disruption struct {
	Delay    float64
	Line     *int
	Stations []int
}

// disruptionKind classifies a feed record onto one of the five mutation
// primitives, so dispatch is an exhaustive switch rather than nested
// conditionals.
type disruptionKind int

const (
	disruptionSkip disruptionKind = iota
	disruptionLineAtStation
	disruptionLineBetween
	disruptionStation
	disruptionBetween
	disruptionClosure
)

func classifyDisruption(d Disruption) (disruptionKind, error) {
	if len(d.Stations) == 0 {
		return disruptionSkip, nil
	}

	if d.Line != nil {
		switch len(d.Stations) {
		case 1:
			return disruptionLineAtStation, nil
		case 2:
			return disruptionLineBetween, nil
		}
		return disruptionSkip, fmt.Errorf("line disruption with %d stations: %w", len(d.Stations), ErrDisruptionShape)
	}

	// A zero delay with no line closes every listed station outright.
	if d.Delay == 0 {
		return disruptionClosure, nil
	}

	switch len(d.Stations) {
	case 1:
		return disruptionStation, nil
	case 2:
		return disruptionBetween, nil
	}
	return disruptionSkip, fmt.Errorf("network-wide disruption with %d stations: %w", len(d.Stations), ErrDisruptionShape)
}

// ApplyDisruptions applies feed records strictly in input order; later records
// see the effects of earlier ones. Records with no stations are skipped.
func (n *Network) ApplyDisruptions(disruptions []Disruption) error {
	for i, d := range disruptions {
		kind, err := classifyDisruption(d)
		if err != nil {
			return fmt.Errorf("disruption %d: %w", i, err)
		}

		switch kind {
		case disruptionSkip:
			continue
		case disruptionLineAtStation:
			err = n.DelayLineAtStation(*d.Line, d.Stations[0], d.Delay)
		case disruptionLineBetween:
			err = n.DelayLineBetween(*d.Line, d.Stations[0], d.Stations[1], d.Delay)
		case disruptionStation:
			err = n.DelayStation(d.Stations[0], d.Delay)
		case disruptionBetween:
			err = n.DelayBetween(d.Stations[0], d.Stations[1], d.Delay)
		case disruptionClosure:
			err = n.CloseStations(d.Stations)
		}
		if err != nil {
			return fmt.Errorf("disruption %d: %w", i, err)
		}
	}

	return nil
}

// DelayLineAtStation multiplies the travel time of every record on the given
// line whose pair includes station.
func (n *Network) DelayLineAtStation(line, station int, mult float64) error {
	if err := n.checkDelay(mult); err != nil {
		return err
	}
	if err := n.checkStation(station); err != nil {
		return err
	}

	for other := 0; other < n.nStations; other++ {
		if other == station {
			continue
		}
		n.scalePair(newPairKey(station, other), mult, &line)
	}
	return nil
}

// DelayLineBetween multiplies the travel time of the given line's record on
// one exact station pair.
func (n *Network) DelayLineBetween(line, a, b int, mult float64) error {
	if err := n.checkDelayPair(a, b, mult); err != nil {
		return err
	}

	n.scalePair(newPairKey(a, b), mult, &line)
	return nil
}

// DelayStation multiplies the travel time of every record, on any line,
// touching station.
func (n *Network) DelayStation(station int, mult float64) error {
	if err := n.checkDelay(mult); err != nil {
		return err
	}
	if err := n.checkStation(station); err != nil {
		return err
	}

	for other := 0; other < n.nStations; other++ {
		if other == station {
			continue
		}
		n.scalePair(newPairKey(station, other), mult, nil)
	}
	return nil
}

// DelayBetween multiplies the travel time of every record, on any line, on one
// exact station pair.
func (n *Network) DelayBetween(a, b int, mult float64) error {
	if err := n.checkDelayPair(a, b, mult); err != nil {
		return err
	}

	n.scalePair(newPairKey(a, b), mult, nil)
	return nil
}

// CloseStations removes every record touching any listed station and zeroes
// the corresponding matrix rows and columns.
func (n *Network) CloseStations(stations []int) error {
	for _, s := range stations {
		if err := n.checkStation(s); err != nil {
			return err
		}
	}

	closed := make(map[int]bool, len(stations))
	for _, s := range stations {
		closed[s] = true
	}

	for key := range n.edges {
		if closed[key.A] || closed[key.B] {
			delete(n.edges, key)
		}
	}

	for _, s := range stations {
		for i := 0; i < n.nStations; i++ {
			n.matrix[s][i] = 0
			n.matrix[i][s] = 0
		}
	}
	return nil
}

func (n *Network) checkDelay(mult float64) error {
	if mult < 0 {
		return fmt.Errorf("delay multiplier %v: %w", mult, ErrNegativeDelay)
	}
	return nil
}

func (n *Network) checkDelayPair(a, b int, mult float64) error {
	if err := n.checkDelay(mult); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("stations %d and %d: %w", a, b, ErrSameStation)
	}
	if err := n.checkStation(a); err != nil {
		return err
	}
	return n.checkStation(b)
}

// scalePair multiplies matching records on one pair, drops records whose time
// reaches zero, restores the fastest-first invariant and resynchronizes the
// matrix cells. line == nil matches every line.
//
// Multiplied times are truncated toward zero, so a fractional multiplier
// rounds down.
func (n *Network) scalePair(key pairKey, mult float64, line *int) {
	records := n.edges[key]
	if len(records) == 0 {
		return
	}

	kept := records[:0]
	for _, rec := range records {
		if line == nil || rec.Line == *line {
			rec.TravelTime = int(mult * float64(rec.TravelTime))
		}
		if rec.TravelTime != 0 {
			kept = append(kept, rec)
		}
	}

	if len(kept) == 0 {
		delete(n.edges, key)
		n.matrix[key.A][key.B] = 0
		n.matrix[key.B][key.A] = 0
		return
	}

	// Delaying the fastest line may expose a slower alternative as the new
	// fastest; move it to the front.
	fastest := 0
	for i, rec := range kept {
		if rec.TravelTime < kept[fastest].TravelTime {
			fastest = i
		}
	}
	if fastest != 0 {
		front := kept[fastest]
		copy(kept[1:fastest+1], kept[:fastest])
		kept[0] = front
	}

	n.edges[key] = kept
	n.matrix[key.A][key.B] = kept[0].TravelTime
	n.matrix[key.B][key.A] = kept[0].TravelTime
}
