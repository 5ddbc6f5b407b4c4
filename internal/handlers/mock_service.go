package handlers

import (
	"uav-simulator/internal/models"
	"uav-simulator/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTelemetry struct {
	snap  models.TelemetrySnapshot
	calls int
}

func (m *mockTelemetry) Snapshot() models.TelemetrySnapshot {
	m.calls++
	return m.snap
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, identity models.VehicleIdentity) *gin.Engine {
	h := NewHandler(s, identity, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
