package handlers

import (
	"net/http"

	"uav-simulator/internal/models"

	"github.com/gin-gonic/gin"
)

// Response status constants to avoid magic strings and typos.
const (
	statusHealthy = "healthy"
	statusSuccess = "success"
)

// health reports liveness and the configured vehicle ID. Constant over the
// process lifetime regardless of elapsed time.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: statusHealthy,
		UAVID:  h.identity.UAVID,
	})
}

// state returns a telemetry snapshot computed fresh for this request;
// nothing is cached across requests.
func (h *Handler) state(c *gin.Context) {
	c.JSON(http.StatusOK, models.StateResponse{
		Status: statusSuccess,
		Data:   h.services.Telemetry.Snapshot(),
	})
}

// notFound answers unrecognized paths and methods with an empty 404.
func (h *Handler) notFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}
