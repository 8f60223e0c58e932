package services

import (
	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/stations"
)

func (rs *RoutingService) StationView(s stations.Station) models.StationView {
	return rs.recordView(s.Record())
}

func (rs *RoutingService) recordView(r models.StationRecord) models.StationView {
	v := models.StationView{ID: r.ID, Name: r.Name, Line: r.Line}
	if l, ok := rs.router.Directory().Line(r.Line); ok {
		v.LineName = l.Name
		v.LineColor = l.Color
	}
	return v
}

// PrepareResponse flattens a route result into the API representation.
func (rs *RoutingService) PrepareResponse(res RouteResult) models.RouteResponse {
	resp := models.RouteResponse{
		From:      rs.StationView(res.From),
		To:        rs.StationView(res.To),
		Segments:  make([]models.SegmentView, 0, len(res.Route.Segments)),
		TotalTime: res.Route.TotalTime(),
	}
	for _, v := range res.Via {
		resp.Via = append(resp.Via, rs.StationView(v))
	}
	for _, s := range res.Route.Stations() {
		resp.Stations = append(resp.Stations, rs.StationView(s))
	}
	for _, seg := range res.Route.Segments {
		resp.Segments = append(resp.Segments, models.SegmentView{
			From: rs.StationView(seg.From),
			To:   rs.StationView(seg.To),
			Time: seg.Time,
		})
	}
	return resp
}
