package service

import (
	"math"
	"time"

	"uav-simulator/internal/config"
	"uav-simulator/internal/models"
)

// ----------- Motion and battery model constants -----------
// Placeholders, not simulated dynamics: position traces a small closed
// ellipse around the origin and the battery drains linearly to a floor.
const (
	PosAmplitudeDeg  = 0.0001 // lat/lon oscillation amplitude (degrees)
	PosAngularRate   = 0.1    // oscillation rate (radians per elapsed second)
	DrainPerSec      = 0.001  // percentage points lost per elapsed second
	BatteryFloorPct  = 20.0   // drain never takes the battery below this
	WarnThresholdPct = 30.0   // at or below → WARNING
)

// System statuses
const (
	StatusOK      = "OK"
	StatusWarning = "WARNING"
)

// systemTimeLayout keeps microsecond precision. The trailing Z is appended
// literally so the string shape stays YYYY-MM-DDTHH:MM:SS.ffffffZ.
const systemTimeLayout = "2006-01-02T15:04:05.000000"

// SimulatorService derives telemetry snapshots from an immutable baseline
// and the wall clock. It holds no mutable state: every dynamic field is a
// pure function of now - start, so concurrent readers cannot race.
type SimulatorService struct {
	baseline config.Baseline
	start    time.Time
	now      func() time.Time // stubbed in tests
}

// NewSimulatorService captures the reference start time and returns a
// simulator for the given baseline.
func NewSimulatorService(baseline config.Baseline) *SimulatorService {
	return &SimulatorService{
		baseline: baseline,
		start:    time.Now(),
		now:      time.Now,
	}
}

// Snapshot computes the vehicle state at the moment of the call.
// Total over all reachable states; there are no error conditions.
func (s *SimulatorService) Snapshot() models.TelemetrySnapshot {
	now := s.now()
	elapsed := now.Sub(s.start).Seconds()

	latOffset := PosAmplitudeDeg * math.Sin(elapsed*PosAngularRate)
	lonOffset := PosAmplitudeDeg * math.Cos(elapsed*PosAngularRate)

	remaining := s.baseline.Battery.InitialPercent - elapsed*DrainPerSec
	if remaining < BatteryFloorPct {
		remaining = BatteryFloorPct
	}

	// Status is derived from the clamped value before output rounding,
	// strictly-above-threshold for OK.
	status := StatusOK
	if remaining <= WarnThresholdPct {
		status = StatusWarning
	}

	return models.TelemetrySnapshot{
		UAVID:      s.baseline.Identity.UAVID,
		NodeName:   s.baseline.Identity.NodeName,
		SystemTime: formatSystemTime(now),
		GPS: models.GPSStatus{
			Latitude:       s.baseline.GPS.Latitude + latOffset,
			Longitude:      s.baseline.GPS.Longitude + lonOffset,
			Altitude:       s.baseline.GPS.Altitude,
			SatelliteCount: s.baseline.GPS.SatelliteCount,
			FixType:        s.baseline.GPS.FixType,
		},
		Battery: models.BatteryStatus{
			Voltage:          s.baseline.Battery.Voltage,
			RemainingPercent: roundToTenth(remaining),
			Temperature:      s.baseline.Battery.Temperature,
		},
		Flight: models.FlightStatus{
			Mode:        s.baseline.Flight.Mode,
			Armed:       s.baseline.Flight.Armed,
			GroundSpeed: s.baseline.Flight.GroundSpeed,
		},
		Health: models.HealthStatus{
			SystemStatus: status,
		},
	}
}

// formatSystemTime renders t as ISO-8601 UTC with a literal Z suffix.
func formatSystemTime(t time.Time) string {
	return t.UTC().Format(systemTimeLayout) + "Z"
}

// roundToTenth rounds to one decimal place for output.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
