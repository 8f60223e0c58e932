package routing

import (
	"fmt"

	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/stations"
)

// Router answers route queries over one network. Build it once with
// NewRouter and pass it to whoever needs routes.
type Router struct {
	name     string
	resolver *stations.Resolver
	graph    *Graph
}

type options struct {
	linkPolicy LinkPolicy
}

type Option func(*options)

func WithLinkPolicy(p LinkPolicy) Option {
	return func(o *options) { o.linkPolicy = p }
}

func NewRouter(net *models.Network, opts ...Option) (*Router, error) {
	o := options{linkPolicy: LinkPolicyReject}
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := stations.NewDirectory(net.Stations, net.Lines)
	if err != nil {
		return nil, fmt.Errorf("could not build station directory: %w", err)
	}
	graph, err := NewGraph(dir, net.Links, o.linkPolicy)
	if err != nil {
		return nil, fmt.Errorf("could not build metro graph: %w", err)
	}

	return &Router{
		name:     net.Name,
		resolver: stations.NewResolver(dir),
		graph:    graph,
	}, nil
}

func (r *Router) Name() string { return r.name }

func (r *Router) Directory() *stations.Directory { return r.resolver.Directory() }

func (r *Router) Graph() *Graph { return r.graph }

// Network returns the data the router was built from after validation:
// records ordered by id and every link once with its resolved travel
// time. Loading it again succeeds under any link policy.
func (r *Router) Network() *models.Network {
	return &models.Network{
		Name:     r.name,
		Lines:    r.Directory().Lines(),
		Stations: r.Directory().Records(),
		Links:    r.graph.Links(),
	}
}

func (r *Router) Resolve(q stations.Query) (stations.Station, error) {
	return r.resolver.Resolve(q)
}

// MakeShortestRoute returns the fastest route from start to finish
// through the waypoints, visited in order.
func (r *Router) MakeShortestRoute(start, finish stations.Station, waypoints ...stations.Station) (Route, error) {
	if start.IsZero() || finish.IsZero() {
		return Route{}, fmt.Errorf("%w: unresolved start or finish station", models.ErrInvalidQuery)
	}
	ids := make([]models.StationID, len(waypoints))
	for i, w := range waypoints {
		if w.IsZero() {
			return Route{}, fmt.Errorf("%w: unresolved waypoint %d", models.ErrInvalidQuery, i)
		}
		ids[i] = w.ID()
	}

	path, err := r.graph.ComposeRoute(start.ID(), finish.ID(), ids)
	if err != nil {
		return Route{}, err
	}
	return r.BuildRoute(path)
}

// BuildRoute turns a path of station ids into a route, looking up the
// travel time of every hop. Repeated consecutive ids are skipped. Any
// other pair of consecutive ids must be linked.
func (r *Router) BuildRoute(path []models.StationID) (Route, error) {
	if len(path) == 0 {
		return Route{}, models.ErrEmptyPath
	}

	start, err := r.resolver.Resolve(stations.ByID(path[0]))
	if err != nil {
		return Route{}, err
	}

	route := Route{Start: start}
	prev := start
	for _, id := range path[1:] {
		if id == prev.ID() {
			continue
		}
		next, err := r.resolver.Resolve(stations.ByID(id))
		if err != nil {
			return Route{}, err
		}
		time, ok := r.graph.Weight(prev.ID(), id)
		if !ok {
			return Route{}, &models.RouteError{Kind: models.ErrMissingEdgeWeight, From: prev.ID(), To: id}
		}
		route.Segments = append(route.Segments, RouteSegment{From: prev, To: next, Time: time})
		prev = next
	}
	route.Finish = prev
	return route, nil
}
