package routing

import (
	"testing"

	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/preprocessing"
	"github.com/codepictor/metro/stations"
)

// newTestRouter builds a router over stations 1..n on line 1.
func newTestRouter(t *testing.T, n int, links []models.Link, opts ...Option) *Router {
	t.Helper()
	net := &models.Network{Name: "test"}
	for i := 1; i <= n; i++ {
		net.Stations = append(net.Stations, models.StationRecord{
			ID:   models.StationID(i),
			Name: string(rune('A' + i - 1)),
			Line: 1,
		})
	}
	net.Links = links
	r, err := NewRouter(net, opts...)
	if err != nil {
		t.Fatalf("NewRouter returned error: %v", err)
	}
	return r
}

var moscowRouter *Router

func defaultRouter(t *testing.T) *Router {
	t.Helper()
	if moscowRouter != nil {
		return moscowRouter
	}
	net, err := preprocessing.DefaultNetwork()
	if err != nil {
		t.Fatalf("DefaultNetwork returned error: %v", err)
	}
	r, err := NewRouter(net)
	if err != nil {
		t.Fatalf("NewRouter returned error: %v", err)
	}
	moscowRouter = r
	return r
}

func resolve(t *testing.T, r *Router, q stations.Query) stations.Station {
	t.Helper()
	s, err := r.Resolve(q)
	if err != nil {
		t.Fatalf("Resolve(%v) returned error: %v", q, err)
	}
	return s
}

// equalPath compares two slices of station ids for equality.
func equalPath(a, b []models.StationID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pathTime(t *testing.T, g *Graph, path []models.StationID) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			t.Fatalf("path %v uses missing link %d -> %d", path, path[i-1], path[i])
		}
		total += w
	}
	return total
}
