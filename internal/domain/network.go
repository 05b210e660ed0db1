package domain

import (
	"fmt"
)

// Edge describes one line's connection between two stations, as supplied by
// the per-line connectivity feed.
type Edge struct {
	From       int
	To         int
	TravelTime int
	Line       int
}

// EdgeRecord is one stored (travel time, line) alternative for a station pair.
type EdgeRecord struct {
	TravelTime int
	Line       int
}

// pairKey is an unordered station pair, canonicalized so A < B.
type pairKey struct {
	A int
	B int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{A: a, B: b}
}

// Network models the transit graph for a single day: a fixed number of
// stations, a per-pair record of every known line alternative, and a dense
// symmetric matrix caching the fastest travel time per pair.
//
// Invariant: for every pair with at least one record, the first record is the
// fastest, and the matrix cell equals its travel time. A zero matrix cell
// means "no connection"; real travel times must be positive.
//
// A Network is built fresh per query and is not safe for concurrent mutation.
type Network struct {
	nStations int
	edges     map[pairKey][]EdgeRecord
	matrix    [][]int
}

// NewNetwork builds a network of nStations and inserts the given edges.
// Zero-weight edges are dropped silently; negative weights and out-of-range
// station indexes are rejected.
func NewNetwork(nStations int, edges []Edge) (*Network, error) {
	if nStations < 0 {
		return nil, fmt.Errorf("new network: nStations must be non-negative, got %d", nStations)
	}

	for _, e := range edges {
		if e.TravelTime < 0 {
			return nil, fmt.Errorf("new network: edge (%d,%d) travel time %d: %w",
				e.From, e.To, e.TravelTime, ErrNegativeWeight)
		}
		if e.From < 0 || e.From >= nStations || e.To < 0 || e.To >= nStations {
			return nil, fmt.Errorf("new network: edge (%d,%d) must satisfy 0 <= station < %d: %w",
				e.From, e.To, nStations, ErrStationRange)
		}
	}

	matrix := make([][]int, nStations)
	for i := range matrix {
		matrix[i] = make([]int, nStations)
	}

	n := &Network{
		nStations: nStations,
		edges:     make(map[pairKey][]EdgeRecord),
		matrix:    matrix,
	}

	for _, e := range edges {
		n.AddEdge(e.From, e.To, e.TravelTime, e.Line)
	}

	return n, nil
}

// NStations returns the fixed station count.
func (n *Network) NStations() int { return n.nStations }

// TravelTime returns the fastest known travel time between two stations,
// or 0 if they are not directly connected.
func (n *Network) TravelTime(a, b int) int { return n.matrix[a][b] }

// Records returns the stored line alternatives for a station pair, fastest first.
func (n *Network) Records(a, b int) []EdgeRecord { return n.edges[newPairKey(a, b)] }

// AddEdge inserts one line's connection between two stations.
//
// A zero travel time is a no-op. If the same line already serves the pair, the
// existing record is replaced only when the new time is strictly faster. The
// fastest record for the pair stays at the front of the sequence and its time
// is mirrored into both matrix cells; slower alternatives are appended and kept
// for fallback after disruptions.
func (n *Network) AddEdge(a, b, travelTime, line int) {
	if travelTime == 0 {
		return
	}

	key := newPairKey(a, b)
	records := n.edges[key]

	for i, rec := range records {
		if rec.Line != line {
			continue
		}
		if travelTime >= rec.TravelTime {
			// Existing record for this line is at least as fast; reject.
			return
		}
		records = append(records[:i], records[i+1:]...)
		break
	}

	if len(records) == 0 || travelTime < records[0].TravelTime {
		records = append([]EdgeRecord{{TravelTime: travelTime, Line: line}}, records...)
		n.matrix[key.A][key.B] = travelTime
		n.matrix[key.B][key.A] = travelTime
	} else {
		records = append(records, EdgeRecord{TravelTime: travelTime, Line: line})
	}

	n.edges[key] = records
}

// Combine merges two equal-sized networks into a new one, keeping the fastest
// record per pair and per line. The resulting matrix is independent of operand
// order; only the ordering of the slower alternatives may differ.
func (n *Network) Combine(other *Network) (*Network, error) {
	if n.nStations != other.nStations {
		return nil, fmt.Errorf("combine networks with %d and %d stations: %w",
			n.nStations, other.nStations, ErrSizeMismatch)
	}

	merged := &Network{
		nStations: n.nStations,
		edges:     make(map[pairKey][]EdgeRecord, len(n.edges)),
		matrix:    make([][]int, n.nStations),
	}
	for i := range merged.matrix {
		merged.matrix[i] = make([]int, n.nStations)
		copy(merged.matrix[i], n.matrix[i])
	}
	for key, records := range n.edges {
		merged.edges[key] = append([]EdgeRecord(nil), records...)
	}

	for key, records := range other.edges {
		for _, rec := range records {
			merged.AddEdge(key.A, key.B, rec.TravelTime, rec.Line)
		}
	}

	return merged, nil
}

// checkStation validates a station index against the network size.
func (n *Network) checkStation(v int) error {
	if v < 0 || v >= n.nStations {
		return fmt.Errorf("station %d must satisfy 0 <= station < %d: %w", v, n.nStations, ErrStationRange)
	}
	return nil
}
