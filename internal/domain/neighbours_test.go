package domain

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// twoComponentNetwork has a connected component 0-1-2-3-4, a separate
// component 5-6-7, and an isolated station 8.
func twoComponentNetwork(t *testing.T) *Network {
	t.Helper()
	return mustNetwork(t, 9, []Edge{
		{From: 0, To: 1, TravelTime: 1, Line: 0},
		{From: 1, To: 2, TravelTime: 2, Line: 0},
		{From: 1, To: 4, TravelTime: 4, Line: 0},
		{From: 2, To: 3, TravelTime: 8, Line: 0},
		{From: 3, To: 4, TravelTime: 1, Line: 0},
		{From: 5, To: 6, TravelTime: 5, Line: 1},
		{From: 5, To: 7, TravelTime: 9, Line: 1},
		{From: 6, To: 7, TravelTime: 2, Line: 1},
	})
}

func TestDistantNeighbours(t *testing.T) {
	n := twoComponentNetwork(t)

	tests := []struct {
		name  string
		depth int
		v     int
		want  []int
	}{
		{name: "one hop from 0", depth: 1, v: 0, want: []int{1}},
		{name: "one hop from 1", depth: 1, v: 1, want: []int{0, 2, 4}},
		{name: "two hops from 0", depth: 2, v: 0, want: []int{1, 2, 4}},
		{name: "entire component", depth: 4, v: 0, want: []int{1, 2, 3, 4}},
		{name: "isolated station", depth: 1, v: 8, want: []int{}},
		{name: "separate component", depth: 1, v: 5, want: []int{6, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.DistantNeighbours(tc.depth, tc.v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DistantNeighbours(%d, %d) = %v, want %v", tc.depth, tc.v, got, tc.want)
			}
		})
	}
}

func TestDistantNeighboursExcludesOrigin(t *testing.T) {
	n := twoComponentNetwork(t)

	got, err := n.DistantNeighbours(10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range got {
		if v == 1 {
			t.Fatalf("origin included in neighbours %v", got)
		}
	}
}

func TestDistantNeighboursValidation(t *testing.T) {
	n := twoComponentNetwork(t)

	if _, err := n.DistantNeighbours(0, 1); !errors.Is(err, ErrNeighbourDepth) {
		t.Fatalf("error = %v, want %v", err, ErrNeighbourDepth)
	}
	if _, err := n.DistantNeighbours(-1, 1); !errors.Is(err, ErrNeighbourDepth) {
		t.Fatalf("error = %v, want %v", err, ErrNeighbourDepth)
	}

	_, err := n.DistantNeighbours(1, 10)
	if !errors.Is(err, ErrStationRange) {
		t.Fatalf("error = %v, want %v", err, ErrStationRange)
	}
	// The message names the station count so callers can report it.
	if !strings.Contains(err.Error(), "9") {
		t.Fatalf("error %q does not name the station count", err)
	}
}
