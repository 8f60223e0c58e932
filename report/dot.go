// Package report exports a metro network, optionally with a highlighted
// route, for external renderers.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/routing"
)

const (
	routeColor   = "red"
	defaultColor = "gray"
)

// WriteDOT writes the network of router as an undirected Graphviz graph.
// Nodes are filled with their line colour. When route is not nil its
// segments are drawn thick and red.
func WriteDOT(w io.Writer, router *routing.Router, route *routing.Route) error {
	onRoute := make(map[[2]models.StationID]bool)
	visited := make(map[models.StationID]bool)
	if route != nil {
		visited[route.Start.ID()] = true
		for _, s := range route.Segments {
			onRoute[pairKey(s.From.ID(), s.To.ID())] = true
			visited[s.To.ID()] = true
		}
	}

	dir := router.Directory()
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	nodes := make(map[models.StationID]dotNode, dir.Len())
	for _, r := range dir.Records() {
		n := dotNode{
			id:      int64(r.ID),
			label:   fmt.Sprintf("%s (%d)", r.Name, r.Line),
			color:   defaultColor,
			onRoute: visited[r.ID],
		}
		if l, ok := dir.Line(r.Line); ok && l.Color != "" {
			n.color = l.Color
		}
		nodes[r.ID] = n
		g.AddNode(n)
	}
	for _, l := range router.Graph().Links() {
		g.SetWeightedEdge(dotEdge{
			f:       nodes[l.From],
			t:       nodes[l.To],
			w:       l.Time,
			onRoute: onRoute[pairKey(l.From, l.To)],
		})
	}

	b, err := dot.Marshal(g, "metro", "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode network as DOT: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not write DOT: %w", err)
	}
	return nil
}

func pairKey(a, b models.StationID) [2]models.StationID {
	if a > b {
		a, b = b, a
	}
	return [2]models.StationID{a, b}
}

type dotNode struct {
	id      int64
	label   string
	color   string
	onRoute bool
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "label", Value: n.label},
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: n.color},
	}
	if n.onRoute {
		attrs = append(attrs, encoding.Attribute{Key: "penwidth", Value: "3"})
	}
	return attrs
}

type dotEdge struct {
	f, t    dotNode
	w       float64
	onRoute bool
}

func (e dotEdge) From() graph.Node { return e.f }

func (e dotEdge) To() graph.Node { return e.t }

func (e dotEdge) ReversedEdge() graph.Edge { e.f, e.t = e.t, e.f; return e }

func (e dotEdge) Weight() float64 { return e.w }

func (e dotEdge) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "label", Value: strconv.FormatFloat(e.w, 'f', -1, 64)},
	}
	if e.onRoute {
		attrs = append(attrs,
			encoding.Attribute{Key: "color", Value: routeColor},
			encoding.Attribute{Key: "penwidth", Value: "4"})
	}
	return attrs
}
