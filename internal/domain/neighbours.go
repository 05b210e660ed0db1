package domain

import (
	"fmt"
	"sort"
)

// DistantNeighbours returns every station reachable from v in at most n hops,
// sorted and excluding v itself. Any non-zero matrix cell counts as one hop;
// travel times are ignored.
func (n *Network) DistantNeighbours(depth, v int) ([]int, error) {
	if err := n.checkStation(v); err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrNeighbourDepth)
	}

	type visit struct {
		station int
		depth   int
	}

	visited := make([]bool, n.nStations)
	visited[v] = true
	queue := []visit{{station: v, depth: 0}}
	neighbours := []int{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth > 0 {
			neighbours = append(neighbours, current.station)
		}
		if current.depth == depth {
			continue
		}

		for i := 0; i < n.nStations; i++ {
			if n.matrix[current.station][i] != 0 && !visited[i] {
				visited[i] = true
				queue = append(queue, visit{station: i, depth: current.depth + 1})
			}
		}
	}

	sort.Ints(neighbours)
	return neighbours, nil
}
