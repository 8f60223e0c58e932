package routing

import (
	"errors"
	"testing"

	"github.com/codepictor/metro/models"
)

// line is 1-2-3-4-5 with a slow shortcut 1-5.
func lineRouter(t *testing.T) *Router {
	return newTestRouter(t, 6, []models.Link{
		{From: 1, To: 2, Time: 10},
		{From: 2, To: 3, Time: 10},
		{From: 3, To: 4, Time: 10},
		{From: 4, To: 5, Time: 10},
		{From: 1, To: 5, Time: 100},
		{From: 5, To: 6, Time: 10},
	})
}

func TestComposeRouteWithoutWaypoints(t *testing.T) {
	g := lineRouter(t).Graph()
	direct, err := g.ShortestSimplePath(1, 6)
	if err != nil {
		t.Fatal(err)
	}
	composed, err := g.ComposeRoute(1, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !equalPath(direct, composed) {
		t.Errorf("ComposeRoute = %v, ShortestSimplePath = %v", composed, direct)
	}
}

func TestComposeRouteWaypoints(t *testing.T) {
	g := lineRouter(t).Graph()

	tests := []struct {
		name      string
		start     models.StationID
		finish    models.StationID
		waypoints []models.StationID
		want      []models.StationID
	}{
		{name: "waypoint on the way", start: 1, finish: 5, waypoints: []models.StationID{3}, want: []models.StationID{1, 2, 3, 4, 5}},
		{name: "detour", start: 2, finish: 3, waypoints: []models.StationID{6}, want: []models.StationID{2, 3, 4, 5, 6, 5, 4, 3}},
		{name: "order is kept", start: 1, finish: 1, waypoints: []models.StationID{4, 2}, want: []models.StationID{1, 2, 3, 4, 3, 2, 1}},
		{name: "waypoint equals start", start: 1, finish: 3, waypoints: []models.StationID{1}, want: []models.StationID{1, 2, 3}},
		{name: "waypoint equals finish", start: 1, finish: 3, waypoints: []models.StationID{3}, want: []models.StationID{1, 2, 3}},
		{name: "repeated waypoints", start: 1, finish: 4, waypoints: []models.StationID{2, 2, 2}, want: []models.StationID{1, 2, 3, 4}},
		{name: "all the same", start: 2, finish: 2, waypoints: []models.StationID{2}, want: []models.StationID{2}},
		{name: "start equals finish", start: 4, finish: 4, want: []models.StationID{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ComposeRoute(tt.start, tt.finish, tt.waypoints)
			if err != nil {
				t.Fatalf("ComposeRoute returned error: %v", err)
			}
			if !equalPath(got, tt.want) {
				t.Errorf("ComposeRoute = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposeRouteDetourIsNeverFaster(t *testing.T) {
	r := defaultRouter(t)
	g := r.Graph()
	direct, err := g.ShortestSimplePath(907, 1006)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range r.Directory().Records() {
		composed, err := g.ComposeRoute(907, 1006, []models.StationID{rec.ID})
		if err != nil {
			t.Fatal(err)
		}
		if pathTime(t, g, composed) < pathTime(t, g, direct) {
			t.Errorf("via %d: %v is faster than the direct route", rec.ID, composed)
		}
	}
}

func TestComposeRouteDoesNotModifyWaypoints(t *testing.T) {
	g := lineRouter(t).Graph()
	backing := make([]models.StationID, 4)
	backing[0] = 3
	waypoints := backing[:1]

	if _, err := g.ComposeRoute(1, 6, waypoints); err != nil {
		t.Fatal(err)
	}
	if len(waypoints) != 1 || waypoints[0] != 3 {
		t.Errorf("waypoints changed to %v", waypoints)
	}
	if backing[1] != 0 || backing[2] != 0 {
		t.Errorf("ComposeRoute wrote past the waypoints: %v", backing)
	}
}

func TestComposeRouteErrors(t *testing.T) {
	r := newTestRouter(t, 4, []models.Link{{From: 1, To: 2, Time: 1}, {From: 3, To: 4, Time: 1}})
	g := r.Graph()
	if _, err := g.ComposeRoute(1, 2, []models.StationID{3}); !errors.Is(err, models.ErrNoRoute) {
		t.Errorf("unreachable waypoint: error = %v, want %v", err, models.ErrNoRoute)
	}
	if _, err := g.ComposeRoute(1, 2, []models.StationID{7}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown waypoint: error = %v, want %v", err, models.ErrNotFound)
	}
}
