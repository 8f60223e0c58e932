// Package routing builds the metro graph and computes routes on it.
//
// The graph, the directory it was built from and the Router wrapping
// both are immutable after construction. Queries only allocate local
// state, so a single Router can serve concurrent callers.
package routing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/stations"
)

// LinkPolicy decides what happens when the same pair of stations is
// linked more than once.
type LinkPolicy int

const (
	// LinkPolicyReject collapses identical duplicates and rejects
	// duplicates with a different travel time.
	LinkPolicyReject LinkPolicy = iota
	// LinkPolicyLastWins keeps the travel time of the last duplicate.
	LinkPolicyLastWins
)

func (p LinkPolicy) String() string {
	switch p {
	case LinkPolicyLastWins:
		return "last-wins"
	default:
		return "reject"
	}
}

func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return LinkPolicyReject, nil
	case "last-wins", "lastwins", "last":
		return LinkPolicyLastWins, nil
	default:
		return LinkPolicyReject, fmt.Errorf("unknown link policy %q", s)
	}
}

// arc is one direction of an undirected link.
type arc struct {
	to   models.StationID
	time float64
}

// Graph is an undirected weighted graph of stations.
type Graph struct {
	g   *simple.WeightedUndirectedGraph
	adj map[models.StationID][]arc // sorted by arc.to
}

// NewGraph adds every station of dir as a node and every link as an
// undirected edge weighted by its travel time.
func NewGraph(dir *stations.Directory, links []models.Link, policy LinkPolicy) (*Graph, error) {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, r := range dir.Records() {
		g.AddNode(simple.Node(r.ID))
	}

	for i, l := range links {
		if l.From == l.To {
			return nil, fmt.Errorf("%w: link %d is a self loop on station %d", models.ErrInvalidNetwork, i, l.From)
		}
		if _, ok := dir.RecordByID(l.From); !ok {
			return nil, fmt.Errorf("%w: link %d references unknown station %d", models.ErrInvalidNetwork, i, l.From)
		}
		if _, ok := dir.RecordByID(l.To); !ok {
			return nil, fmt.Errorf("%w: link %d references unknown station %d", models.ErrInvalidNetwork, i, l.To)
		}
		if !(l.Time > 0) || math.IsInf(l.Time, 1) {
			return nil, fmt.Errorf("%w: link %d -> %d has travel time %v", models.ErrInvalidNetwork, l.From, l.To, l.Time)
		}

		if old, ok := g.Weight(int64(l.From), int64(l.To)); ok {
			if old == l.Time {
				continue
			}
			if policy == LinkPolicyReject {
				return nil, fmt.Errorf("%w: %d -> %d has times %v and %v", models.ErrConflictingLink, l.From, l.To, old, l.Time)
			}
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(l.From), simple.Node(l.To), l.Time))
	}

	out := &Graph{g: g, adj: make(map[models.StationID][]arc, g.Nodes().Len())}
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		from, to := models.StationID(e.From().ID()), models.StationID(e.To().ID())
		w, _ := g.Weight(int64(from), int64(to))
		out.adj[from] = append(out.adj[from], arc{to: to, time: w})
		out.adj[to] = append(out.adj[to], arc{to: from, time: w})
	}
	for _, arcs := range out.adj {
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].to < arcs[j].to })
	}
	return out, nil
}

func (g *Graph) Has(id models.StationID) bool {
	return g.g.Node(int64(id)) != nil
}

func (g *Graph) Len() int { return g.g.Nodes().Len() }

// Weight returns the travel time of the link between a and b in either
// direction.
func (g *Graph) Weight(a, b models.StationID) (float64, bool) {
	if a == b {
		return 0, false
	}
	return g.g.Weight(int64(a), int64(b))
}

// Neighbors returns the stations linked to id in ascending id order.
func (g *Graph) Neighbors(id models.StationID) []models.StationID {
	arcs := g.adj[id]
	out := make([]models.StationID, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}
	return out
}

// Links returns every link once with From < To, ordered by (From, To).
func (g *Graph) Links() []models.Link {
	var out []models.Link
	for from, arcs := range g.adj {
		for _, a := range arcs {
			if from < a.to {
				out = append(out, models.Link{From: from, To: a.to, Time: a.time})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Components returns the connected components of the graph. Ids inside
// a component are ascending and components are ordered by their
// smallest id.
func (g *Graph) Components() [][]models.StationID {
	cc := topo.ConnectedComponents(g.g)
	out := make([][]models.StationID, 0, len(cc))
	for _, nodes := range cc {
		ids := make([]models.StationID, len(nodes))
		for i, n := range nodes {
			ids[i] = models.StationID(n.ID())
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
