package domain

import "errors"

var (
	// ErrStationRange indicates a station index outside [0, nStations).
	ErrStationRange = errors.New("network: station index out of range")
	// ErrSameStation indicates two station arguments that must differ were equal.
	ErrSameStation = errors.New("network: station indexes must differ")
	// ErrSizeMismatch indicates an attempt to combine networks of different sizes.
	ErrSizeMismatch = errors.New("network: station counts differ")
	// ErrNegativeWeight indicates an edge with a negative travel time.
	ErrNegativeWeight = errors.New("network: travel time must be non-negative")
	// ErrNegativeDelay indicates a delay multiplier below zero.
	ErrNegativeDelay = errors.New("network: delay multiplier must be non-negative")
	// ErrNeighbourDepth indicates a non-positive neighbourhood depth.
	ErrNeighbourDepth = errors.New("network: neighbour depth must be > 0")
	// ErrDisruptionShape indicates a disruption record that matches no known form.
	ErrDisruptionShape = errors.New("network: unrecognized disruption shape")
)
