package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/report"
	"github.com/codepictor/metro/routing"
	"github.com/codepictor/metro/stations"
	"github.com/codepictor/metro/utils"
)

type RoutingService struct {
	router *routing.Router
	logger *slog.Logger
}

func NewRoutingService(router *routing.Router, logger *slog.Logger) *RoutingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoutingService{
		router: router,
		logger: logger,
	}
}

func (rs *RoutingService) Router() *routing.Router { return rs.router }

// RouteResult is a computed route together with the resolved endpoints
// and waypoints of the request.
type RouteResult struct {
	From  stations.Station
	To    stations.Station
	Via   []stations.Station
	Route routing.Route
}

// QueryFromRef converts a station reference into a resolver query.
func QueryFromRef(ref models.StationRef) (stations.Query, error) {
	name := strings.TrimSpace(ref.Name)
	switch {
	case ref.ID != nil && (name != "" || ref.Line != nil):
		return nil, fmt.Errorf("%w: reference has both an id and a name or line", models.ErrInvalidQuery)
	case ref.ID != nil:
		return stations.ByID(*ref.ID), nil
	case name == "":
		return nil, fmt.Errorf("%w: reference has neither an id nor a name", models.ErrInvalidQuery)
	case ref.Line != nil:
		return stations.ByNameOnLine{Name: name, Line: *ref.Line}, nil
	default:
		return stations.ByName(name), nil
	}
}

func (rs *RoutingService) Resolve(ref models.StationRef) (stations.Station, error) {
	q, err := QueryFromRef(ref)
	if err != nil {
		return stations.Station{}, err
	}
	return rs.router.Resolve(q)
}

// CalculateRoute resolves every reference of req and computes the
// fastest route visiting the waypoints in order.
func (rs *RoutingService) CalculateRoute(ctx context.Context, req models.RouteRequest) (RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return RouteResult{}, err
	}
	started := time.Now()

	var res RouteResult
	var err error
	if res.From, err = rs.resolveLogged("from", req.From); err != nil {
		return RouteResult{}, err
	}
	if res.To, err = rs.resolveLogged("to", req.To); err != nil {
		return RouteResult{}, err
	}
	for i, ref := range req.Via {
		s, err := rs.resolveLogged(fmt.Sprintf("via[%d]", i), ref)
		if err != nil {
			return RouteResult{}, err
		}
		res.Via = append(res.Via, s)
	}

	res.Route, err = rs.router.MakeShortestRoute(res.From, res.To, res.Via...)
	if err != nil {
		rs.logger.Warn("route calculation failed",
			slog.String("from", res.From.String()),
			slog.String("to", res.To.String()),
			slog.Int("via", len(res.Via)),
			slog.Any("error", err))
		return RouteResult{}, err
	}

	rs.logger.Debug("route calculated",
		slog.Int64("from", int64(res.From.ID())),
		slog.Int64("to", int64(res.To.ID())),
		slog.Int("via", len(res.Via)),
		slog.Int("segments", len(res.Route.Segments)),
		slog.Float64("total_time_s", res.Route.TotalTime()),
		slog.Duration("took", time.Since(started)))
	return res, nil
}

func (rs *RoutingService) resolveLogged(field string, ref models.StationRef) (stations.Station, error) {
	s, err := rs.Resolve(ref)
	if err != nil {
		level := slog.LevelDebug
		if !errors.Is(err, models.ErrNotFound) && !errors.Is(err, models.ErrAmbiguousName) {
			level = slog.LevelWarn
		}
		rs.logger.Log(context.Background(), level, "station lookup failed",
			slog.String("field", field),
			slog.String("ref", utils.FormatStationRef(ref)),
			slog.Any("error", err))
		return stations.Station{}, fmt.Errorf("%s: %w", field, err)
	}
	return s, nil
}

// FindStations lists stations named name, or every station when name
// is empty.
func (rs *RoutingService) FindStations(name string) []models.StationView {
	dir := rs.router.Directory()
	var records []models.StationRecord
	if strings.TrimSpace(name) == "" {
		records = dir.Records()
	} else {
		records = dir.RecordsByName(name)
	}

	views := make([]models.StationView, len(records))
	for i, r := range records {
		views[i] = rs.recordView(r)
	}
	return views
}

func (rs *RoutingService) Station(id models.StationID) (models.StationView, error) {
	s, err := rs.router.Resolve(stations.ByID(id))
	if err != nil {
		return models.StationView{}, err
	}
	return rs.StationView(s), nil
}

// Network describes the whole graph for renderers: stations with line
// metadata and every link once.
func (rs *RoutingService) Network() models.NetworkResponse {
	return models.NetworkResponse{
		Name:     rs.router.Name(),
		Lines:    rs.router.Directory().Lines(),
		Stations: rs.FindStations(""),
		Links:    rs.router.Graph().Links(),
	}
}

// WriteDOT renders the network in Graphviz format, highlighting route
// when it is not nil.
func (rs *RoutingService) WriteDOT(w io.Writer, route *routing.Route) error {
	return report.WriteDOT(w, rs.router, route)
}
