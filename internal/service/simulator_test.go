package service

import (
	"math"
	"reflect"
	"regexp"
	"testing"
	"time"

	"uav-simulator/internal/config"
	"uav-simulator/internal/models"
)

func defaultBaseline() config.Baseline {
	return config.Baseline{
		Identity: models.VehicleIdentity{UAVID: "UAV-UNKNOWN", NodeName: "unknown-node"},
		GPS: models.GPSOrigin{
			Latitude:       39.9042,
			Longitude:      116.4074,
			Altitude:       50.0,
			SatelliteCount: 12,
			FixType:        3,
		},
		Battery: models.BatteryBaseline{Voltage: 22.2, InitialPercent: 85.0, Temperature: 28.0},
		Flight:  models.FlightBaseline{Mode: "AUTO", Armed: true, GroundSpeed: 5.0},
	}
}

// newFixedSimulator pins both the start time and the clock so elapsed time
// is exactly now-start.
func newFixedSimulator(b config.Baseline, start, now time.Time) *SimulatorService {
	return &SimulatorService{
		baseline: b,
		start:    start,
		now:      func() time.Time { return now },
	}
}

func TestSnapshot_DefaultsAtZeroElapsed(t *testing.T) {
	t.Parallel()

	b := defaultBaseline()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := newFixedSimulator(b, start, start).Snapshot()

	// sin(0)=0, cos(0)=1 → latitude unchanged, longitude at +amplitude.
	if snap.GPS.Latitude != b.GPS.Latitude {
		t.Errorf("latitude at t=0: want %v, got %v", b.GPS.Latitude, snap.GPS.Latitude)
	}
	if want := b.GPS.Longitude + PosAmplitudeDeg; snap.GPS.Longitude != want {
		t.Errorf("longitude at t=0: want %v, got %v", want, snap.GPS.Longitude)
	}
	if snap.Battery.RemainingPercent != 85.0 {
		t.Errorf("remaining_percent at t=0: want 85.0, got %v", snap.Battery.RemainingPercent)
	}
	if snap.Health.SystemStatus != StatusOK {
		t.Errorf("system_status at t=0: want %s, got %s", StatusOK, snap.Health.SystemStatus)
	}
}

func TestSnapshot_BatteryDrainScenario(t *testing.T) {
	t.Parallel()

	// 60000 s elapsed → drain 60.0 → 85.0-60.0 = 25.0, above the floor,
	// below the warning threshold.
	b := defaultBaseline()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start.Add(60000 * time.Second)
	snap := newFixedSimulator(b, start, now).Snapshot()

	if snap.Battery.RemainingPercent != 25.0 {
		t.Errorf("remaining_percent: want 25.0, got %v", snap.Battery.RemainingPercent)
	}
	if snap.Health.SystemStatus != StatusWarning {
		t.Errorf("system_status: want %s, got %s", StatusWarning, snap.Health.SystemStatus)
	}
}

func TestSnapshot_BatteryFloor(t *testing.T) {
	t.Parallel()

	b := defaultBaseline()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// The floor holds even for arbitrarily large elapsed times.
	for _, elapsed := range []time.Duration{
		65000 * time.Second,
		1000000 * time.Second,
		1000000 * time.Hour,
	} {
		snap := newFixedSimulator(b, start, start.Add(elapsed)).Snapshot()
		if snap.Battery.RemainingPercent != BatteryFloorPct {
			t.Errorf("elapsed %v: want %v, got %v", elapsed, BatteryFloorPct, snap.Battery.RemainingPercent)
		}
		if snap.Health.SystemStatus != StatusWarning {
			t.Errorf("elapsed %v: want %s, got %s", elapsed, StatusWarning, snap.Health.SystemStatus)
		}
	}
}

func TestSnapshot_WarningBoundary(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Exactly 30.0 is WARNING: OK requires strictly above the threshold.
	b := defaultBaseline()
	b.Battery.InitialPercent = WarnThresholdPct
	snap := newFixedSimulator(b, start, start).Snapshot()
	if snap.Health.SystemStatus != StatusWarning {
		t.Errorf("at exactly %v: want %s, got %s", WarnThresholdPct, StatusWarning, snap.Health.SystemStatus)
	}

	b.Battery.InitialPercent = 30.1
	snap = newFixedSimulator(b, start, start).Snapshot()
	if snap.Health.SystemStatus != StatusOK {
		t.Errorf("just above threshold: want %s, got %s", StatusOK, snap.Health.SystemStatus)
	}
}

func TestSnapshot_PositionBounded(t *testing.T) {
	t.Parallel()

	b := defaultBaseline()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for elapsed := 0; elapsed <= 1000; elapsed += 7 {
		snap := newFixedSimulator(b, start, start.Add(time.Duration(elapsed)*time.Second)).Snapshot()

		latOff := snap.GPS.Latitude - b.GPS.Latitude
		lonOff := snap.GPS.Longitude - b.GPS.Longitude
		if math.Abs(latOff) > PosAmplitudeDeg+1e-12 {
			t.Fatalf("elapsed %ds: latitude offset %v outside ±%v", elapsed, latOff, PosAmplitudeDeg)
		}
		if math.Abs(lonOff) > PosAmplitudeDeg+1e-12 {
			t.Fatalf("elapsed %ds: longitude offset %v outside ±%v", elapsed, lonOff, PosAmplitudeDeg)
		}
	}
}

func TestSnapshot_BaselineFieldsEchoed(t *testing.T) {
	t.Parallel()

	b := defaultBaseline()
	b.Identity = models.VehicleIdentity{UAVID: "UAV-9", NodeName: "node-9"}
	b.Flight = models.FlightBaseline{Mode: "RTL", Armed: false, GroundSpeed: 7.5}
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := newFixedSimulator(b, start, start.Add(321*time.Second)).Snapshot()

	if snap.UAVID != "UAV-9" || snap.NodeName != "node-9" {
		t.Errorf("identity not echoed: %+v", snap)
	}
	if snap.GPS.Altitude != b.GPS.Altitude ||
		snap.GPS.SatelliteCount != b.GPS.SatelliteCount ||
		snap.GPS.FixType != b.GPS.FixType {
		t.Errorf("gps baseline fields not echoed: %+v", snap.GPS)
	}
	if snap.Battery.Voltage != b.Battery.Voltage || snap.Battery.Temperature != b.Battery.Temperature {
		t.Errorf("battery baseline fields not echoed: %+v", snap.Battery)
	}
	if snap.Flight.Mode != "RTL" || snap.Flight.Armed || snap.Flight.GroundSpeed != 7.5 {
		t.Errorf("flight baseline fields not echoed: %+v", snap.Flight)
	}
}

func TestSnapshot_IdempotentAtFixedInstant(t *testing.T) {
	t.Parallel()

	b := defaultBaseline()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sim := newFixedSimulator(b, start, start.Add(42*time.Second))

	first := sim.Snapshot()
	second := sim.Snapshot()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("snapshots at the same instant differ:\n%+v\n%+v", first, second)
	}
}

func TestSnapshot_SystemTimeShape(t *testing.T) {
	t.Parallel()

	b := defaultBaseline()
	start := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	now := start.Add(90 * time.Second)
	snap := newFixedSimulator(b, start, now).Snapshot()

	shape := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`)
	if !shape.MatchString(snap.SystemTime) {
		t.Fatalf("system_time %q does not match ISO-8601 microsecond shape", snap.SystemTime)
	}
	if want := "2026-03-01T12:01:30.123456Z"; snap.SystemTime != want {
		t.Errorf("system_time: want %q, got %q", want, snap.SystemTime)
	}
}
