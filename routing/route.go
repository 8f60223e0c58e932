package routing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/codepictor/metro/stations"
)

// RouteSegment is one traversed link. Time is in seconds.
type RouteSegment struct {
	From stations.Station
	To   stations.Station
	Time float64
}

// Route is an ordered list of segments from Start to Finish. A route
// from a station to itself has no segments.
type Route struct {
	Start    stations.Station
	Finish   stations.Station
	Segments []RouteSegment
}

// TotalTime is the sum of the segment times in seconds.
func (r Route) TotalTime() float64 {
	total := 0.0
	for _, s := range r.Segments {
		total += s.Time
	}
	return total
}

func (r Route) Duration() time.Duration {
	return time.Duration(r.TotalTime() * float64(time.Second))
}

// Stations lists every visited station, Start first.
func (r Route) Stations() []stations.Station {
	out := make([]stations.Station, 0, len(r.Segments)+1)
	out = append(out, r.Start)
	for _, s := range r.Segments {
		out = append(out, s.To)
	}
	return out
}

func (r Route) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Route: from '%s' to '%s':\n", r.Start, r.Finish)
	for _, s := range r.Segments {
		fmt.Fprintf(&b, "  %s -> %s: %ss\n", s.From, s.To, formatSeconds(s.Time))
	}
	fmt.Fprintf(&b, "Total time: %ss", formatSeconds(r.TotalTime()))
	return b.String()
}

func formatSeconds(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
