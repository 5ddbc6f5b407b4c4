package handlers

import (
	"uav-simulator/internal/logger"
	"uav-simulator/internal/models"
	"uav-simulator/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to the telemetry service and logging.
// The simulator is an explicit dependency injected at construction,
// never a package-level singleton.
type Handler struct {
	services *service.Service
	identity models.VehicleIdentity
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, identity models.VehicleIdentity, log *logger.Logger) *Handler {
	return &Handler{services: services, identity: identity, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Access logging policy: disabled — the middleware chain carries recovery
// only, no gin.Logger().
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// No trailing-slash redirects: anything but the two exact paths is a 404.
	router.RedirectTrailingSlash = false

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Everything else gets a bare 404: no body, no content-type.
	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/state", h.state)
	}
}
