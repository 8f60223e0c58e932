package routing

import (
	"container/heap"

	"github.com/codepictor/metro/models"
)

// ShortestSimplePath returns the fastest sequence of stations from one
// station to another, both included. Neighbours are expanded in id
// order and ties in the queue are broken by id, so the result is stable
// for a given graph.
func (g *Graph) ShortestSimplePath(from, to models.StationID) ([]models.StationID, error) {
	for _, id := range []models.StationID{from, to} {
		if !g.Has(id) {
			id := id
			return nil, &models.StationError{Kind: models.ErrNotFound, ID: &id}
		}
	}
	if from == to {
		return []models.StationID{from}, nil
	}

	dist := map[models.StationID]float64{from: 0}
	prev := make(map[models.StationID]models.StationID)
	done := make(map[models.StationID]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: from, dist: 0})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pqItem)
		if done[current.node] {
			continue
		}
		done[current.node] = true
		if current.node == to {
			return reconstructPath(prev, from, to), nil
		}

		for _, a := range g.adj[current.node] {
			if done[a.to] {
				continue
			}
			tentative := current.dist + a.time
			if old, ok := dist[a.to]; !ok || tentative < old {
				dist[a.to] = tentative
				prev[a.to] = current.node
				heap.Push(pq, &pqItem{node: a.to, dist: tentative})
			}
		}
	}

	return nil, &models.RouteError{Kind: models.ErrNoRoute, From: from, To: to}
}

func reconstructPath(prev map[models.StationID]models.StationID, from, to models.StationID) []models.StationID {
	var path []models.StationID
	for current := to; ; current = prev[current] {
		path = append(path, current)
		if current == from {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// pqItem is a queue entry. A station may be queued several times;
// entries for stations already settled are skipped when popped.
type pqItem struct {
	node models.StationID
	dist float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}
