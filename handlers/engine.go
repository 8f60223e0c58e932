package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/codepictor/metro/services"
)

// NewEngine wires the routing API under /api plus a /health probe.
// origins lists allowed CORS origins; "*" allows every origin.
func NewEngine(routingService *services.RoutingService, logger *slog.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
	config.ExposeHeaders = []string{requestIDHeader}
	if allowAll(origins) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	r.Use(cors.New(config))

	NewRoutingHandler(routingService).RegisterRoutes(r.Group("/api"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"network":  routingService.Router().Name(),
			"stations": routingService.Router().Directory().Len(),
		})
	})
	return r
}

func allowAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
