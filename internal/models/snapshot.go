package models

// GPSStatus is the per-request position: origin plus a small oscillating
// offset on latitude/longitude.
type GPSStatus struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Altitude       float64 `json:"altitude"`
	SatelliteCount int     `json:"satellite_count"`
	FixType        int     `json:"fix_type"`
}

// BatteryStatus is the per-request battery reading.
type BatteryStatus struct {
	Voltage          float64 `json:"voltage"`
	RemainingPercent float64 `json:"remaining_percent"` // rounded to one decimal
	Temperature      float64 `json:"temperature"`
}

// FlightStatus mirrors the flight baseline; no time dependency in this version.
type FlightStatus struct {
	Mode        string  `json:"mode"`
	Armed       bool    `json:"armed"`
	GroundSpeed float64 `json:"ground_speed"`
}

// HealthStatus carries the derived system status.
type HealthStatus struct {
	SystemStatus string `json:"system_status"` // OK | WARNING
}

// TelemetrySnapshot is one full vehicle state, computed fresh per request
// and never stored.
type TelemetrySnapshot struct {
	UAVID      string        `json:"uav_id"`
	NodeName   string        `json:"node_name"`
	SystemTime string        `json:"system_time"` // ISO-8601 UTC with trailing Z
	GPS        GPSStatus     `json:"gps"`
	Battery    BatteryStatus `json:"battery"`
	Flight     FlightStatus  `json:"flight"`
	Health     HealthStatus  `json:"health"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	UAVID  string `json:"uav_id"`
}

// StateResponse is the body of GET /api/v1/state.
type StateResponse struct {
	Status string            `json:"status"`
	Data   TelemetrySnapshot `json:"data"`
}
