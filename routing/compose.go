package routing

import "github.com/codepictor/metro/models"

// ComposeRoute returns the fastest path from start to finish that visits
// the waypoints in the given order. Each leg is an independent shortest
// path; the order of waypoints is never changed. Consecutive duplicate
// stations are collapsed, so repeated or coinciding waypoints produce no
// zero-length hops. The waypoints slice is not modified.
func (g *Graph) ComposeRoute(start, finish models.StationID, waypoints []models.StationID) ([]models.StationID, error) {
	stops := make([]models.StationID, 0, len(waypoints)+2)
	stops = append(stops, start)
	stops = append(stops, waypoints...)
	stops = append(stops, finish)

	var path []models.StationID
	for i := 1; i < len(stops); i++ {
		leg, err := g.ShortestSimplePath(stops[i-1], stops[i])
		if err != nil {
			return nil, err
		}
		path = appendCollapsed(path, leg...)
	}
	return path, nil
}

func appendCollapsed(path []models.StationID, ids ...models.StationID) []models.StationID {
	for _, id := range ids {
		if n := len(path); n > 0 && path[n-1] == id {
			continue
		}
		path = append(path, id)
	}
	return path
}
