package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codepictor/metro/models"
	"github.com/codepictor/metro/routing"
	"github.com/codepictor/metro/services"
	"github.com/codepictor/metro/utils"
)

const apiVersion = "v1"

type RoutingHandler struct {
	routingService *services.RoutingService
}

func NewRoutingHandler(routingService *services.RoutingService) *RoutingHandler {
	return &RoutingHandler{
		routingService: routingService,
	}
}

func (h *RoutingHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/routes", h.CalculateRoute)
	router.GET("/routes", h.GetRoute)
	router.GET("/stations", h.FindStations)
	router.GET("/stations/:id", h.GetStation)
	router.GET("/network", h.GetNetwork)
	router.GET("/network.dot", h.GetNetworkDOT)
}

func (h *RoutingHandler) CalculateRoute(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidQuery, err))
		return
	}
	h.respondRoute(c, req)
}

// GetRoute is the query string form of CalculateRoute:
// /routes?from=Дмитровская&to=Бутырская&via=1004
func (h *RoutingHandler) GetRoute(c *gin.Context) {
	req, err := routeRequestFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRoute(c, req)
}

func (h *RoutingHandler) respondRoute(c *gin.Context, req models.RouteRequest) {
	res, err := h.routingService.CalculateRoute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	total := res.Route.TotalTime()
	respond(c, http.StatusOK, h.routingService.PrepareResponse(res), &models.MetaData{TotalTime: &total})
}

func (h *RoutingHandler) FindStations(c *gin.Context) {
	views := h.routingService.FindStations(c.Query("name"))
	if line := c.Query("line"); line != "" {
		n, err := strconv.Atoi(line)
		if err != nil {
			respondError(c, fmt.Errorf("%w: bad line %q", models.ErrInvalidQuery, line))
			return
		}
		filtered := views[:0]
		for _, v := range views {
			if v.Line == n {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}
	count := len(views)
	respond(c, http.StatusOK, views, &models.MetaData{ResultCount: &count})
}

func (h *RoutingHandler) GetStation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, fmt.Errorf("%w: bad station id %q", models.ErrInvalidQuery, c.Param("id")))
		return
	}
	view, err := h.routingService.Station(models.StationID(id))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, view, nil)
}

func (h *RoutingHandler) GetNetwork(c *gin.Context) {
	net := h.routingService.Network()
	count := len(net.Stations)
	respond(c, http.StatusOK, net, &models.MetaData{ResultCount: &count})
}

// GetNetworkDOT returns the network in Graphviz format. When from and
// to are given the route between them is highlighted.
func (h *RoutingHandler) GetNetworkDOT(c *gin.Context) {
	var route *routing.Route
	if c.Query("from") != "" || c.Query("to") != "" {
		req, err := routeRequestFromQuery(c)
		if err != nil {
			respondError(c, err)
			return
		}
		res, err := h.routingService.CalculateRoute(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		route = &res.Route
	}

	var buf bytes.Buffer
	if err := h.routingService.WriteDOT(&buf, route); err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", buf.Bytes())
}

func routeRequestFromQuery(c *gin.Context) (models.RouteRequest, error) {
	return utils.ParseRouteRequest(c.Query("from"), c.Query("to"), c.QueryArray("via"))
}

func respond(c *gin.Context, status int, data interface{}, meta *models.MetaData) {
	if meta == nil {
		meta = &models.MetaData{}
	}
	meta.ApiVersion = apiVersion
	meta.ProcessTime = processTime(c)
	c.JSON(status, models.ApiResponse{
		Success:   true,
		Data:      data,
		Meta:      meta,
		RequestID: requestID(c),
	})
}

func respondError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	c.JSON(status, models.ApiResponse{
		Success: false,
		Error: &models.ApiError{
			Code:    code,
			Message: err.Error(),
		},
		Meta:      &models.MetaData{ApiVersion: apiVersion, ProcessTime: processTime(c)},
		RequestID: requestID(c),
	})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidQuery):
		return http.StatusBadRequest, "INVALID_QUERY"
	case errors.Is(err, models.ErrAmbiguousName):
		return http.StatusConflict, "AMBIGUOUS_NAME"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, models.ErrNoRoute):
		return http.StatusUnprocessableEntity, "NO_ROUTE"
	case errors.Is(err, models.ErrMissingEdgeWeight):
		return http.StatusInternalServerError, "MISSING_EDGE_WEIGHT"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "CANCELLED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func requestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}

func processTime(c *gin.Context) string {
	start, ok := c.Get(requestStartKey)
	if !ok {
		return "0"
	}
	return strconv.FormatInt(time.Since(start.(time.Time)).Milliseconds(), 10)
}
