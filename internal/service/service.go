package service

import (
	"uav-simulator/internal/config"
	"uav-simulator/internal/models"
)

// Telemetry computes the current vehicle snapshot on demand.
// Implementations must be safe for concurrent readers.
type Telemetry interface {
	Snapshot() models.TelemetrySnapshot
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Telemetry
}

// NewService wires the loaded baseline into concrete services.
func NewService(baseline config.Baseline) *Service {
	return &Service{
		Telemetry: NewSimulatorService(baseline),
	}
}
