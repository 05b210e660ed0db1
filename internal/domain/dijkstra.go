package domain

import (
	"container/heap"
)

// Route is the result of a shortest-path query: the visited station indexes in
// order and the total travel time.
type Route struct {
	Path []int
	Cost int
}

// queueItem is one entry in the Dijkstra priority queue.
type queueItem struct {
	station int
	cost    int
}

// costQueue is a min-heap of tentative costs.
type costQueue []queueItem

func (q costQueue) Len() int           { return len(q) }
func (q costQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q costQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *costQueue) Push(x any)        { *q = append(*q, x.(queueItem)) }

func (q *costQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}

// ShortestPath runs Dijkstra's algorithm between two stations over the
// fastest-connection matrix. Non-zero cells are edges; ties are broken by heap
// order. It returns (nil, nil) when no route exists.
func (n *Network) ShortestPath(start, end int) (*Route, error) {
	if err := n.checkStation(start); err != nil {
		return nil, err
	}
	if err := n.checkStation(end); err != nil {
		return nil, err
	}

	const unreached = -1

	settled := make([]bool, n.nStations)
	costs := make([]int, n.nStations)
	predecessor := make([]int, n.nStations)
	for i := range costs {
		costs[i] = unreached
		predecessor[i] = unreached
	}
	costs[start] = 0

	queue := &costQueue{{station: start, cost: 0}}
	heap.Init(queue)

	for queue.Len() > 0 {
		item := heap.Pop(queue).(queueItem)
		if settled[item.station] {
			continue
		}
		settled[item.station] = true

		// The destination's cost is final once it is settled.
		if item.station == end {
			break
		}

		for next, travelTime := range n.matrix[item.station] {
			if travelTime == 0 || settled[next] {
				continue
			}
			total := item.cost + travelTime
			if costs[next] == unreached || total < costs[next] {
				costs[next] = total
				predecessor[next] = item.station
				heap.Push(queue, queueItem{station: next, cost: total})
			}
		}
	}

	if costs[end] == unreached {
		return nil, nil
	}

	path := constructPath(predecessor, start, end)
	return &Route{Path: path, Cost: costs[end]}, nil
}

// constructPath walks predecessor links from end back to start and reverses.
// An empty slice is returned if the walk does not terminate at start, which
// indicates broken predecessor bookkeeping.
func constructPath(predecessor []int, start, end int) []int {
	path := []int{}
	for at := end; at != -1; at = predecessor[at] {
		path = append(path, at)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != start {
		return []int{}
	}
	return path
}
